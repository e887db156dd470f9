package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/barberease/scheduler/internal/domain/booking"
	"github.com/barberease/scheduler/internal/models"
)

func TestListByStaffRange(t *testing.T) {
	store := newFakeBookingStore()
	store.put(models.Booking{ID: "b1", StaffID: "S1", ShopID: "shop-1",
		AppointmentAt: parseT(t, "2024-06-01T10:00:00Z"), Status: string(domain.StatusPending)})
	store.put(models.Booking{ID: "b2", StaffID: "S1", ShopID: "shop-1",
		AppointmentAt: parseT(t, "2024-06-02T10:00:00Z"), Status: string(domain.StatusCancelled)})
	store.put(models.Booking{ID: "b3", StaffID: "S2", ShopID: "shop-1",
		AppointmentAt: parseT(t, "2024-06-01T10:00:00Z"), Status: string(domain.StatusPending)})

	uc := NewListByStaff(store, 0)

	// Unbounded: both of S1's bookings, cancelled included.
	all, err := uc.Execute(context.Background(), "S1", time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Bounded to June 1st only.
	day, err := uc.Execute(context.Background(), "S1",
		parseT(t, "2024-06-01T00:00:00Z"), parseT(t, "2024-06-02T00:00:00Z"))
	require.NoError(t, err)
	require.Len(t, day, 1)
	assert.Equal(t, "b1", day[0].ID)
}

func TestListByShopRange(t *testing.T) {
	store := newFakeBookingStore()
	store.put(models.Booking{ID: "b1", ShopID: "shop-1",
		AppointmentAt: parseT(t, "2024-06-01T10:00:00Z")})
	store.put(models.Booking{ID: "b2", ShopID: "shop-2",
		AppointmentAt: parseT(t, "2024-06-01T11:00:00Z")})

	uc := NewListByShop(store, 0)

	out, err := uc.Execute(context.Background(), "shop-1",
		parseT(t, "2024-06-01T00:00:00Z"), parseT(t, "2024-06-02T00:00:00Z"))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "b1", out[0].ID)
}
