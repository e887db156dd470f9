package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "github.com/barberease/scheduler/internal/domain/booking"
	"github.com/barberease/scheduler/internal/models"
	"github.com/barberease/scheduler/internal/notification"
)

type Cancel struct {
	bookings domain.BookingStore
	events   *notification.Dispatcher
	cache    SlotCache
	logger   *zap.Logger
	timeout  time.Duration
	now      func() time.Time
}

func NewCancel(
	bookings domain.BookingStore,
	events *notification.Dispatcher,
	cache SlotCache,
	logger *zap.Logger,
	timeout time.Duration,
) *Cancel {
	return &Cancel{
		bookings: bookings,
		events:   events,
		cache:    cache,
		logger:   logger,
		timeout:  timeout,
		now:      time.Now,
	}
}

func (uc *Cancel) Execute(ctx context.Context, id, reason string) (*models.Booking, error) {
	ctx, cancel := boundCtx(ctx, uc.timeout)
	defer cancel()

	b, err := uc.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	if domain.IsTerminal(domain.Status(b.Status)) {
		return nil, domain.ErrAlreadyTerminal
	}

	now := uc.now()
	b.Status = string(domain.StatusCancelled)
	b.CancellationReason = reason
	b.CancelledAt = &now

	if err := uc.bookings.Save(ctx, b); err != nil {
		return nil, mapStoreErr(err)
	}

	if uc.cache != nil {
		uc.cache.InvalidateStaffDay(ctx, b.StaffID, b.AppointmentAt)
	}

	uc.events.Dispatch(notification.Event{
		Type:    notification.EventBookingCancelled,
		Booking: *b,
	})

	uc.logger.Info("booking cancelled",
		zap.String("booking_id", b.ID),
		zap.String("reason", reason),
	)

	return b, nil
}
