package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "github.com/barberease/scheduler/internal/domain/booking"
	"github.com/barberease/scheduler/internal/lock"
	"github.com/barberease/scheduler/internal/models"
	"github.com/barberease/scheduler/internal/notification"
)

type nopNotifier struct{}

func (nopNotifier) NotifyBookingCreated(models.Booking) error   { return nil }
func (nopNotifier) NotifyBookingCancelled(models.Booking) error { return nil }

type failingNotifier struct{}

func (failingNotifier) NotifyBookingCreated(models.Booking) error {
	return errors.New("mail relay unreachable")
}
func (failingNotifier) NotifyBookingCancelled(models.Booking) error {
	return errors.New("mail relay unreachable")
}

func testService() *models.Service {
	return &models.Service{
		ID:                "svc-1",
		ShopID:            "shop-1",
		Name:              "Haircut",
		DurationMinutes:   30,
		BufferTimeMinutes: 0,
		Price:             40,
	}
}

func newCreateUC(store *fakeBookingStore, svc *models.Service, n notification.Notifier) *Create {
	services := &fakeServiceStore{services: map[string]*models.Service{svc.ID: svc}}
	return NewCreate(
		services,
		store,
		lock.NewKeyedMutex(),
		notification.NewDispatcher(n, zap.NewNop()),
		nil,
		zap.NewNop(),
		0,
	)
}

func parseT(t *testing.T, v string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, v)
	require.NoError(t, err)
	return ts
}

func TestCreateBooking(t *testing.T) {
	store := newFakeBookingStore()
	uc := newCreateUC(store, testService(), nopNotifier{})

	b, err := uc.Execute(context.Background(), CreateInput{
		ShopID:        "shop-1",
		StaffID:       "S1",
		ServiceID:     "svc-1",
		AppointmentAt: parseT(t, "2024-06-01T10:00:00Z"),
		Notes:         "first visit",
	}, "user-1")

	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, string(domain.StatusPending), b.Status)
	assert.Equal(t, string(domain.PaymentPending), b.PaymentStatus)
	assert.Equal(t, 30, b.DurationMinutes)
	assert.Equal(t, 40.0, b.TotalAmount)
	assert.Equal(t, "user-1", b.UserID)
}

func TestCreateBookingSnapshotsBuffer(t *testing.T) {
	svc := testService()
	svc.BufferTimeMinutes = 15

	store := newFakeBookingStore()
	uc := newCreateUC(store, svc, nopNotifier{})

	b, err := uc.Execute(context.Background(), CreateInput{
		StaffID:       "S1",
		ServiceID:     "svc-1",
		AppointmentAt: parseT(t, "2024-06-01T10:00:00Z"),
	}, "user-1")

	require.NoError(t, err)
	assert.Equal(t, 45, b.DurationMinutes)
	assert.Equal(t, parseT(t, "2024-06-01T10:45:00Z"), b.EndsAt())
}

func TestCreateBookingServiceNotFound(t *testing.T) {
	store := newFakeBookingStore()
	uc := newCreateUC(store, testService(), nopNotifier{})

	_, err := uc.Execute(context.Background(), CreateInput{
		StaffID:       "S1",
		ServiceID:     "svc-missing",
		AppointmentAt: parseT(t, "2024-06-01T10:00:00Z"),
	}, "user-1")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateBookingInvalidRequest(t *testing.T) {
	store := newFakeBookingStore()
	uc := newCreateUC(store, testService(), nopNotifier{})

	_, err := uc.Execute(context.Background(), CreateInput{
		StaffID:   "S1",
		ServiceID: "svc-1",
	}, "user-1")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	broken := testService()
	broken.DurationMinutes = 0
	uc = newCreateUC(newFakeBookingStore(), broken, nopNotifier{})

	_, err = uc.Execute(context.Background(), CreateInput{
		StaffID:       "S1",
		ServiceID:     "svc-1",
		AppointmentAt: parseT(t, "2024-06-01T10:00:00Z"),
	}, "user-1")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

// Spec scenario: S1 holds [10:00, 10:30); an overlapping request fails, the
// back-to-back one succeeds.
func TestCreateBookingOverlapScenario(t *testing.T) {
	store := newFakeBookingStore()
	store.put(models.Booking{
		ID:              "existing",
		StaffID:         "S1",
		AppointmentAt:   parseT(t, "2024-06-01T10:00:00Z"),
		DurationMinutes: 30,
		Status:          string(domain.StatusConfirmed),
	})

	uc := newCreateUC(store, testService(), nopNotifier{})

	_, err := uc.Execute(context.Background(), CreateInput{
		StaffID:       "S1",
		ServiceID:     "svc-1",
		AppointmentAt: parseT(t, "2024-06-01T10:15:00Z"),
	}, "user-1")
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)

	b, err := uc.Execute(context.Background(), CreateInput{
		StaffID:       "S1",
		ServiceID:     "svc-1",
		AppointmentAt: parseT(t, "2024-06-01T10:30:00Z"),
	}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, parseT(t, "2024-06-01T10:30:00Z"), b.AppointmentAt)
}

func TestCreateBookingSequentialDoubleBook(t *testing.T) {
	store := newFakeBookingStore()
	uc := newCreateUC(store, testService(), nopNotifier{})

	in := CreateInput{
		StaffID:       "S1",
		ServiceID:     "svc-1",
		AppointmentAt: parseT(t, "2024-06-01T14:00:00Z"),
	}

	_, err := uc.Execute(context.Background(), in, "user-1")
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), in, "user-2")
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
}

func TestCreateBookingCancelledSlotReusable(t *testing.T) {
	store := newFakeBookingStore()
	store.put(models.Booking{
		ID:              "cancelled",
		StaffID:         "S1",
		AppointmentAt:   parseT(t, "2024-06-01T10:00:00Z"),
		DurationMinutes: 30,
		Status:          string(domain.StatusCancelled),
	})

	uc := newCreateUC(store, testService(), nopNotifier{})

	_, err := uc.Execute(context.Background(), CreateInput{
		StaffID:       "S1",
		ServiceID:     "svc-1",
		AppointmentAt: parseT(t, "2024-06-01T10:00:00Z"),
	}, "user-1")
	assert.NoError(t, err)
}

// N concurrent creations for the same staff and interval: exactly one
// success, the rest ErrSlotUnavailable.
func TestCreateBookingConcurrentSameSlot(t *testing.T) {
	const n = 20

	store := newFakeBookingStore()
	uc := newCreateUC(store, testService(), nopNotifier{})

	in := CreateInput{
		StaffID:       "S1",
		ServiceID:     "svc-1",
		AppointmentAt: parseT(t, "2024-06-01T11:00:00Z"),
	}

	var wg sync.WaitGroup
	results := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), in, "user")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var ok, unavailable int
	for err := range results {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrSlotUnavailable):
			unavailable++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, unavailable)
}

func TestCreateBookingDifferentStaffInParallel(t *testing.T) {
	const n = 10

	store := newFakeBookingStore()
	uc := newCreateUC(store, testService(), nopNotifier{})

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), CreateInput{
				StaffID:       fmt.Sprintf("staff-%d", i),
				ServiceID:     "svc-1",
				AppointmentAt: parseT(t, "2024-06-01T11:00:00Z"),
			}, "user")
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestCreateBookingNotificationFailureDoesNotAffectResult(t *testing.T) {
	store := newFakeBookingStore()
	uc := newCreateUC(store, testService(), failingNotifier{})

	b, err := uc.Execute(context.Background(), CreateInput{
		StaffID:       "S1",
		ServiceID:     "svc-1",
		AppointmentAt: parseT(t, "2024-06-01T10:00:00Z"),
	}, "user-1")

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), b.Status)

	stored, err := store.FindByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.AppointmentAt, stored.AppointmentAt)
}

func TestCreateBookingStoreTimeout(t *testing.T) {
	store := newFakeBookingStore()
	store.failWith = context.DeadlineExceeded

	uc := newCreateUC(store, testService(), nopNotifier{})

	_, err := uc.Execute(context.Background(), CreateInput{
		StaffID:       "S1",
		ServiceID:     "svc-1",
		AppointmentAt: parseT(t, "2024-06-01T10:00:00Z"),
	}, "user-1")

	assert.ErrorIs(t, err, domain.ErrTimeout)
	assert.NotErrorIs(t, err, domain.ErrSlotUnavailable)
}
