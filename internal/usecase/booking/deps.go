package booking

import (
	"context"
	"errors"
	"time"

	domain "github.com/barberease/scheduler/internal/domain/booking"
)

// SlotCache is the optional availability cache. Implementations must be
// safe for concurrent use; a nil cache disables caching.
type SlotCache interface {
	GetSlots(ctx context.Context, staffID, serviceID string, date time.Time) ([]time.Time, bool)
	SetSlots(ctx context.Context, staffID, serviceID string, date time.Time, slots []time.Time)
	InvalidateStaffDay(ctx context.Context, staffID string, date time.Time)
}

// boundCtx derives the store-call context. The caller's deadline always
// applies; timeout adds the configured default bound on top.
func boundCtx(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// mapStoreErr turns an exceeded store deadline into the retryable timeout
// error so callers can tell it apart from a genuine conflict.
func mapStoreErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.ErrTimeout
	}
	return err
}
