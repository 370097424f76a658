package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Event struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	NameEvents    string          `gorm:"not null" json:"nameEvents"`
	Value         decimal.Decimal `gorm:"type:decimal(10,2)" json:"value"`
	Date          time.Time       `gorm:"type:date" json:"date"`
	Time          string          `gorm:"type:time" json:"time"`
	Accessibility *bool           `json:"accessibility"`
	LocationID    uuid.UUID       `gorm:"type:uuid" json:"locationId"`

	Location *Location `gorm:"foreignKey:LocationID" json:"-"`
	Tickets  []Ticket  `gorm:"foreignKey:EventID;constraint:OnDelete:SET NULL" json:"-"`
	Ratings  []Rating  `gorm:"foreignKey:EventID" json:"-"`
}

// EventDTO é a representação exposta na API. Date e Time trafegam como
// string ("2006-01-02" e "15:04:05") e são convertidos no service.
type EventDTO struct {
	ID            uuid.UUID       `json:"id"`
	NameEvents    string          `json:"nameEvents" validate:"required"`
	Value         decimal.Decimal `json:"value"`
	Date          string          `json:"date" validate:"required,datetime=2006-01-02"`
	Time          string          `json:"time" validate:"required,datetime=15:04:05"`
	Accessibility *bool           `json:"accessibility"`
	LocationID    uuid.UUID       `json:"locationId"`
}
