package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Notification struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	UserID    string `gorm:"size:36;index" json:"user_id"`
	BookingID string `gorm:"size:36" json:"booking_id"`

	Type    string `gorm:"size:30" json:"type"`
	Channel string `gorm:"size:20;default:'email'" json:"channel"`
	Message string `gorm:"size:500" json:"message"`

	Sent   bool       `gorm:"default:false" json:"sent"`
	SentAt *time.Time `json:"sent_at"`
	Read   bool       `gorm:"default:false" json:"read"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return nil
}
