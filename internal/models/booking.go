package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ShopID string `gorm:"size:36;index" json:"shop_id"`
	Shop   Shop   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"shop"`

	StaffID string `gorm:"size:36;index" json:"staff_id"`
	Staff   Staff  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"staff"`

	UserID string `gorm:"size:36;index" json:"user_id"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	ServiceID string  `gorm:"size:36" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	AppointmentAt time.Time `gorm:"index;not null" json:"appointment_at"`

	// Snapshotted from the service at creation; conflict checks must always
	// use this value, never the service's current duration.
	DurationMinutes int `gorm:"not null" json:"duration_minutes"`

	Status        string `gorm:"size:20;default:'pending';index" json:"status"`
	PaymentStatus string `gorm:"size:20;default:'pending'" json:"payment_status"`

	TotalAmount   float64 `json:"total_amount"`
	AdvanceAmount float64 `json:"advance_amount"`
	PaymentID     string  `gorm:"size:36" json:"payment_id"`

	Notes string `gorm:"size:255" json:"notes"`

	NotificationSent   bool       `gorm:"default:false" json:"notification_sent"`
	NotificationSentAt *time.Time `json:"notification_sent_at"`

	CancellationReason string     `gorm:"size:255" json:"cancellation_reason"`
	CancelledAt        *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}

// EndsAt returns the exclusive end of the booking's occupied interval,
// derived from the snapshotted duration.
func (b *Booking) EndsAt() time.Time {
	return b.AppointmentAt.Add(time.Duration(b.DurationMinutes) * time.Minute)
}
