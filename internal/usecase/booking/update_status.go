package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "github.com/barberease/scheduler/internal/domain/booking"
	"github.com/barberease/scheduler/internal/models"
)

// UpdateStatus is the privileged staff-facing status overwrite. Deliberately
// permissive: any known status may be set as long as the booking is not
// already terminal. No transition table.
type UpdateStatus struct {
	bookings domain.BookingStore
	cache    SlotCache
	logger   *zap.Logger
	timeout  time.Duration
}

func NewUpdateStatus(
	bookings domain.BookingStore,
	cache SlotCache,
	logger *zap.Logger,
	timeout time.Duration,
) *UpdateStatus {
	return &UpdateStatus{
		bookings: bookings,
		cache:    cache,
		logger:   logger,
		timeout:  timeout,
	}
}

func (uc *UpdateStatus) Execute(ctx context.Context, id string, newStatus domain.Status) (*models.Booking, error) {
	if !domain.ValidStatus(newStatus) {
		return nil, domain.ErrInvalidRequest
	}

	ctx, cancel := boundCtx(ctx, uc.timeout)
	defer cancel()

	b, err := uc.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	if err := domain.CanTransition(domain.Status(b.Status)); err != nil {
		return nil, err
	}

	b.Status = string(newStatus)

	if err := uc.bookings.Save(ctx, b); err != nil {
		return nil, mapStoreErr(err)
	}

	// Cancelling or no-showing through this path frees the slot.
	if uc.cache != nil && !domain.IsActive(newStatus) {
		uc.cache.InvalidateStaffDay(ctx, b.StaffID, b.AppointmentAt)
	}

	uc.logger.Info("booking status updated",
		zap.String("booking_id", b.ID),
		zap.String("status", string(newStatus)),
	)

	return b, nil
}
