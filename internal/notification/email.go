package notification

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/barberease/scheduler/internal/models"
)

// EmailNotifier records a notification row per event and logs the email it
// would hand to the mail relay. Delivery is at-most-once.
type EmailNotifier struct {
	db     *gorm.DB
	logger *zap.Logger
	from   string
}

func NewEmailNotifier(db *gorm.DB, logger *zap.Logger, from string) *EmailNotifier {
	return &EmailNotifier{db: db, logger: logger, from: from}
}

func (n *EmailNotifier) NotifyBookingCreated(b models.Booking) error {
	msg := fmt.Sprintf("Your booking has been received for %s",
		b.AppointmentAt.Format("2006-01-02 15:04"))
	return n.record(b, EventBookingCreated, msg)
}

func (n *EmailNotifier) NotifyBookingCancelled(b models.Booking) error {
	msg := fmt.Sprintf("Your booking for %s has been cancelled",
		b.AppointmentAt.Format("2006-01-02 15:04"))
	if b.CancellationReason != "" {
		msg += ": " + b.CancellationReason
	}
	return n.record(b, EventBookingCancelled, msg)
}

func (n *EmailNotifier) record(b models.Booking, ev EventType, msg string) error {
	now := time.Now()

	row := models.Notification{
		UserID:    b.UserID,
		BookingID: b.ID,
		Type:      string(ev),
		Channel:   "email",
		Message:   msg,
		Sent:      true,
		SentAt:    &now,
	}

	if err := n.db.Create(&row).Error; err != nil {
		return err
	}

	n.logger.Info("notification sent",
		zap.String("type", string(ev)),
		zap.String("booking_id", b.ID),
		zap.String("user_id", b.UserID),
		zap.String("from", n.from),
	)
	return nil
}
