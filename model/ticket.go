package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ticket referencia order/user/event por FKs anuláveis: excluir o pai
// seta a FK para null em vez de excluir o ingresso em cascata.
type Ticket struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID       *uuid.UUID      `gorm:"type:uuid" json:"orderId"`
	UserID        *uuid.UUID      `gorm:"type:uuid" json:"userId"`
	EventID       *uuid.UUID      `gorm:"type:uuid" json:"eventId"`
	Quantity      int             `json:"quantity"`
	Value         decimal.Decimal `gorm:"type:decimal(10,2)" json:"value"`
	Date          time.Time       `gorm:"type:date" json:"date"`
	Time          string          `gorm:"type:time" json:"time"`
	TicketType    *string         `json:"ticketType"`
	Accessibility *bool           `json:"accessibility"`

	Order *Order `gorm:"foreignKey:OrderID;constraint:OnDelete:SET NULL" json:"-"`
	User  *User  `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
	Event *Event `gorm:"foreignKey:EventID;constraint:OnDelete:SET NULL" json:"-"`
}

type TicketDTO struct {
	ID            uuid.UUID       `json:"id"`
	OrderID       *uuid.UUID      `json:"orderId"`
	UserID        *uuid.UUID      `json:"userId"`
	EventID       *uuid.UUID      `json:"eventId"`
	Quantity      int             `json:"quantity"`
	Value         decimal.Decimal `json:"value"`
	Date          string          `json:"date" validate:"required,datetime=2006-01-02"`
	Time          string          `json:"time" validate:"required,datetime=15:04:05"`
	TicketType    *string         `json:"ticketType"`
	Accessibility *bool           `json:"accessibility"`
}
