package notification

import "go.uber.org/zap"

// Dispatcher decouples booking writes from notification delivery: events are
// handed to a buffered channel consumed by a single worker goroutine.
// Delivery failures are logged and swallowed, and a full queue drops the
// event instead of blocking the booking path.
type Dispatcher struct {
	notifier Notifier
	logger   *zap.Logger
	queue    chan Event
}

func NewDispatcher(notifier Notifier, logger *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		notifier: notifier,
		logger:   logger,
		queue:    make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		var err error
		switch ev.Type {
		case EventBookingCreated:
			err = d.notifier.NotifyBookingCreated(ev.Booking)
		case EventBookingCancelled:
			err = d.notifier.NotifyBookingCancelled(ev.Booking)
		}
		if err != nil {
			d.logger.Warn("notification delivery failed",
				zap.String("event", string(ev.Type)),
				zap.String("booking_id", ev.Booking.ID),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// queue full, drop rather than block the booking path
		d.logger.Warn("notification queue full, dropping event",
			zap.String("event", string(ev.Type)),
			zap.String("booking_id", ev.Booking.ID),
		)
	}
}

// Close stops the worker after draining queued events. Test helper and
// shutdown hook.
func (d *Dispatcher) Close() {
	close(d.queue)
}
