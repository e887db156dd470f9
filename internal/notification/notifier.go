package notification

import "github.com/barberease/scheduler/internal/models"

type EventType string

const (
	EventBookingCreated   EventType = "booking_created"
	EventBookingCancelled EventType = "booking_cancelled"
)

type Event struct {
	Type    EventType
	Booking models.Booking
}

// Notifier delivers a single event. One attempt only; a returned error is
// logged by the dispatcher and goes no further.
type Notifier interface {
	NotifyBookingCreated(b models.Booking) error
	NotifyBookingCancelled(b models.Booking) error
}
