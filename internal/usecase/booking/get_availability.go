package booking

import (
	"context"
	"time"

	domain "github.com/barberease/scheduler/internal/domain/booking"
)

// GetAvailability answers "which start times are bookable for this staff,
// service and date". Read-only; tolerates slightly stale results, so no
// locking. A slot shown here can still be lost to a concurrent booking,
// surfaced only at creation time as ErrSlotUnavailable.
type GetAvailability struct {
	services domain.ServiceStore
	bookings domain.BookingStore
	cache    SlotCache
	slotCfg  domain.SlotConfig
	timeout  time.Duration
	now      func() time.Time
}

func NewGetAvailability(
	services domain.ServiceStore,
	bookings domain.BookingStore,
	cache SlotCache,
	slotCfg domain.SlotConfig,
	timeout time.Duration,
) *GetAvailability {
	return &GetAvailability{
		services: services,
		bookings: bookings,
		cache:    cache,
		slotCfg:  slotCfg,
		timeout:  timeout,
		now:      time.Now,
	}
}

func (uc *GetAvailability) Execute(ctx context.Context, in domain.AvailabilityInput) ([]time.Time, error) {
	ctx, cancel := boundCtx(ctx, uc.timeout)
	defer cancel()

	if uc.cache != nil {
		if slots, ok := uc.cache.GetSlots(ctx, in.StaffID, in.ServiceID, in.Date); ok {
			return slots, nil
		}
	}

	// Live service lookup: slot generation always reflects the service's
	// current duration and buffer, unlike committed bookings which keep
	// their snapshot.
	svc, err := uc.services.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if svc.DurationMinutes <= 0 {
		return nil, domain.ErrInvalidRequest
	}

	loc := in.Date.Location()
	dayStart := time.Date(in.Date.Year(), in.Date.Month(), in.Date.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	existing, err := uc.bookings.FindActiveByStaffInRange(ctx, in.StaffID, dayStart, dayEnd)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	slots := domain.GenerateSlots(
		uc.slotCfg,
		time.Duration(svc.DurationMinutes)*time.Minute,
		time.Duration(svc.BufferTimeMinutes)*time.Minute,
		in.Date,
		existing,
		uc.now(),
	)

	if uc.cache != nil {
		uc.cache.SetSlots(ctx, in.StaffID, in.ServiceID, in.Date, slots)
	}

	return slots, nil
}
