package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const OrderStatusCreated = "Created"

// Formas de pagamento aceitas.
const (
	PaymentCreditCard = "CreditCard"
	PaymentDebitCard  = "DebitCard"
	PaymentPix        = "Pix"
)

type Order struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      *uuid.UUID      `gorm:"type:uuid" json:"userId"`
	Created     *time.Time      `json:"created"`
	PaymentType string          `json:"paymentType"`
	Status      string          `json:"status"`
	Value       decimal.Decimal `gorm:"type:decimal(10,2)" json:"value"`

	User    *User    `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
	Tickets []Ticket `gorm:"foreignKey:OrderID;constraint:OnDelete:SET NULL" json:"-"`
	Ratings []Rating `gorm:"foreignKey:OrderID;constraint:OnDelete:SET NULL" json:"-"`
}

type OrderCreateRequest struct {
	UserID      uuid.UUID       `json:"userId"`
	Value       decimal.Decimal `json:"value"`
	PaymentType string          `json:"paymentType"`
}

type OrderResponse struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"userId"`
	CreatedAt   time.Time       `json:"createdAt"`
	PaymentType string          `json:"paymentType"`
	Status      string          `json:"status"`
	Value       decimal.Decimal `json:"value"`
}
