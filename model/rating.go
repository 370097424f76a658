package model

import (
	"time"

	"github.com/google/uuid"
)

type Rating struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid" json:"userId"`
	EventID   uuid.UUID  `gorm:"type:uuid" json:"eventId"`
	OrderID   *uuid.UUID `gorm:"type:uuid" json:"orderId,omitempty"`
	Score     int        `json:"score"`
	Comment   string     `json:"comment"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"createdAt"`

	User  *User  `gorm:"foreignKey:UserID" json:"-"`
	Event *Event `gorm:"foreignKey:EventID" json:"-"`
}

type RatingCreateRequest struct {
	UserID  uuid.UUID `json:"userId"`
	EventID uuid.UUID `json:"eventId"`
	Score   int       `json:"score"`
	Comment string    `json:"comment"`
}

type RatingResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	EventID   uuid.UUID `json:"eventId"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}
