package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string     `gorm:"not null" json:"name"`
	Email     string     `gorm:"uniqueIndex;not null" json:"email"`
	Password  string     `gorm:"not null" json:"-"` // hash bcrypt, nunca exposto
	Phone     *string    `json:"phone,omitempty"`
	BirthDate *time.Time `gorm:"type:date" json:"birthDate,omitempty"`
	IsActive  *bool      `json:"isActive,omitempty"`

	Orders  []Order  `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
	Ratings []Rating `gorm:"foreignKey:UserID" json:"-"`
	Tickets []Ticket `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
}

type UserCreateRequest struct {
	Name      string  `json:"name" validate:"required"`
	Email     string  `json:"email" validate:"required"`
	Password  string  `json:"password" validate:"required"`
	Phone     *string `json:"phone"`
	BirthDate *string `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	IsActive  *bool   `json:"isActive"`
}

// UserUpdateRequest tem os mesmos campos do create: o update substitui
// todos os campos do DTO, não é um patch parcial.
type UserUpdateRequest struct {
	Name      string  `json:"name" validate:"required"`
	Email     string  `json:"email" validate:"required"`
	Password  string  `json:"password" validate:"required"`
	Phone     *string `json:"phone"`
	BirthDate *string `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	IsActive  *bool   `json:"isActive"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	BirthDate *string   `json:"birthDate,omitempty"`
	IsActive  *bool     `json:"isActive,omitempty"`
}
