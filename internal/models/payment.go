package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Payment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	BookingID string `gorm:"size:36;index" json:"booking_id"`
	UserID    string `gorm:"size:36" json:"user_id"`

	Amount   float64 `json:"amount"`
	Currency string  `gorm:"size:10;default:'BRL'" json:"currency"`
	Method   string  `gorm:"size:30;default:'mercadopago'" json:"method"`

	// Gateway-side identifiers.
	OrderID          string `gorm:"size:64" json:"order_id"`
	GatewayPaymentID string `gorm:"size:64" json:"gateway_payment_id"`
	Status           string `gorm:"size:20;default:'pending'" json:"status"`
	FailureReason    string `gorm:"size:255" json:"failure_reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
