package booking

import (
	"context"
	"time"

	domain "github.com/barberease/scheduler/internal/domain/booking"
	"github.com/barberease/scheduler/internal/models"
)

// Pure read projections; no side effects.

type ListByStaff struct {
	bookings domain.BookingStore
	timeout  time.Duration
}

func NewListByStaff(bookings domain.BookingStore, timeout time.Duration) *ListByStaff {
	return &ListByStaff{bookings: bookings, timeout: timeout}
}

func (uc *ListByStaff) Execute(ctx context.Context, staffID string, from, to time.Time) ([]models.Booking, error) {
	ctx, cancel := boundCtx(ctx, uc.timeout)
	defer cancel()

	out, err := uc.bookings.FindByStaff(ctx, staffID, from, to)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return out, nil
}

type ListByShop struct {
	bookings domain.BookingStore
	timeout  time.Duration
}

func NewListByShop(bookings domain.BookingStore, timeout time.Duration) *ListByShop {
	return &ListByShop{bookings: bookings, timeout: timeout}
}

func (uc *ListByShop) Execute(ctx context.Context, shopID string, from, to time.Time) ([]models.Booking, error) {
	ctx, cancel := boundCtx(ctx, uc.timeout)
	defer cancel()

	out, err := uc.bookings.FindByShop(ctx, shopID, from, to)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return out, nil
}

type ListByUser struct {
	bookings domain.BookingStore
	timeout  time.Duration
}

func NewListByUser(bookings domain.BookingStore, timeout time.Duration) *ListByUser {
	return &ListByUser{bookings: bookings, timeout: timeout}
}

func (uc *ListByUser) Execute(ctx context.Context, userID string) ([]models.Booking, error) {
	ctx, cancel := boundCtx(ctx, uc.timeout)
	defer cancel()

	out, err := uc.bookings.FindByUser(ctx, userID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return out, nil
}
