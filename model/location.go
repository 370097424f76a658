package model

import "github.com/google/uuid"

type Location struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Address  string    `gorm:"not null" json:"address"`
	Capacity int       `json:"capacity"`

	Events []Event `gorm:"foreignKey:LocationID" json:"-"`
}

type LocationDTO struct {
	ID       uuid.UUID `json:"id"`
	Address  string    `json:"address" validate:"required"`
	Capacity int       `json:"capacity"`
}
