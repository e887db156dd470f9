package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "github.com/barberease/scheduler/internal/domain/booking"
	"github.com/barberease/scheduler/internal/lock"
	"github.com/barberease/scheduler/internal/models"
	"github.com/barberease/scheduler/internal/notification"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	ShopID        string
	StaffID       string
	ServiceID     string
	AppointmentAt time.Time
	Notes         string
}

// ======================================================
// USE CASE
// ======================================================

type Create struct {
	services domain.ServiceStore
	bookings domain.BookingStore
	locks    *lock.KeyedMutex
	events   *notification.Dispatcher
	cache    SlotCache
	logger   *zap.Logger
	timeout  time.Duration
}

func NewCreate(
	services domain.ServiceStore,
	bookings domain.BookingStore,
	locks *lock.KeyedMutex,
	events *notification.Dispatcher,
	cache SlotCache,
	logger *zap.Logger,
	timeout time.Duration,
) *Create {
	return &Create{
		services: services,
		bookings: bookings,
		locks:    locks,
		events:   events,
		cache:    cache,
		logger:   logger,
		timeout:  timeout,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Create) Execute(ctx context.Context, in CreateInput, customerID string) (*models.Booking, error) {
	if in.StaffID == "" || in.ServiceID == "" || in.AppointmentAt.IsZero() {
		return nil, domain.ErrInvalidRequest
	}

	ctx, cancel := boundCtx(ctx, uc.timeout)
	defer cancel()

	svc, err := uc.services.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if svc.DurationMinutes <= 0 || svc.BufferTimeMinutes < 0 {
		return nil, domain.ErrInvalidRequest
	}

	// The occupied span blocks duration plus buffer on the staff member's
	// schedule; it is snapshotted so later service edits cannot shift
	// committed intervals.
	occupiedMinutes := svc.DurationMinutes + svc.BufferTimeMinutes

	start := in.AppointmentAt
	end := start.Add(time.Duration(occupiedMinutes) * time.Minute)

	// Serialize the check-then-insert sequence per staff member. Requests
	// for different staff proceed in parallel.
	uc.locks.Lock(in.StaffID)
	defer uc.locks.Unlock(in.StaffID)

	existing, err := uc.bookings.FindActiveByStaffInRange(
		ctx,
		in.StaffID,
		start.Add(-24*time.Hour),
		end,
	)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	if domain.HasConflict(start, end, existing) {
		return nil, domain.ErrSlotUnavailable
	}

	b := &models.Booking{
		ShopID:          in.ShopID,
		StaffID:         in.StaffID,
		UserID:          customerID,
		ServiceID:       in.ServiceID,
		AppointmentAt:   start,
		DurationMinutes: occupiedMinutes,
		Status:          string(domain.InitialStatus()),
		PaymentStatus:   string(domain.PaymentPending),
		TotalAmount:     svc.Price,
		Notes:           in.Notes,
	}

	if err := uc.bookings.CreateWithConflictGuard(ctx, b, start, end); err != nil {
		return nil, mapStoreErr(err)
	}

	if uc.cache != nil {
		uc.cache.InvalidateStaffDay(ctx, in.StaffID, start)
	}

	uc.events.Dispatch(notification.Event{
		Type:    notification.EventBookingCreated,
		Booking: *b,
	})

	uc.logger.Info("booking created",
		zap.String("booking_id", b.ID),
		zap.String("staff_id", b.StaffID),
		zap.Time("appointment_at", b.AppointmentAt),
	)

	return b, nil
}
