package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	domain "github.com/barberease/scheduler/internal/domain/booking"
	"github.com/barberease/scheduler/internal/models"
	"github.com/barberease/scheduler/internal/timeutil"
)

type fakeServiceStore struct {
	services map[string]*models.Service
}

func (f *fakeServiceStore) GetService(ctx context.Context, id string) (*models.Service, error) {
	if svc, ok := f.services[id]; ok {
		cp := *svc
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

// fakeBookingStore is an in-memory BookingStore. CreateWithConflictGuard
// re-checks overlap under its own mutex, mirroring the transactional guard
// of the real store.
type fakeBookingStore struct {
	mu       sync.Mutex
	rows     map[string]*models.Booking
	seq      int
	failWith error
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{rows: make(map[string]*models.Booking)}
}

func (f *fakeBookingStore) put(b models.Booking) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[b.ID] = &b
}

func (f *fakeBookingStore) FindActiveByStaffInRange(ctx context.Context, staffID string, start, end time.Time) ([]models.Booking, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Booking
	for _, b := range f.rows {
		if b.StaffID != staffID || !domain.IsActive(domain.Status(b.Status)) {
			continue
		}
		if b.AppointmentAt.Before(start) || !b.AppointmentAt.Before(end) {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBookingStore) FindByID(ctx context.Context, id string) (*models.Booking, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if b, ok := f.rows[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeBookingStore) Save(ctx context.Context, b *models.Booking) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	f.assignID(b)
	cp := *b
	f.rows[b.ID] = &cp
	return nil
}

func (f *fakeBookingStore) CreateWithConflictGuard(ctx context.Context, b *models.Booking, start, end time.Time) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.rows {
		if existing.StaffID != b.StaffID || !domain.IsActive(domain.Status(existing.Status)) {
			continue
		}
		if timeutil.Overlaps(start, end, existing.AppointmentAt, existing.EndsAt()) {
			return domain.ErrSlotUnavailable
		}
	}

	f.assignID(b)
	cp := *b
	f.rows[b.ID] = &cp
	return nil
}

func (f *fakeBookingStore) FindByStaff(ctx context.Context, staffID string, from, to time.Time) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Booking
	for _, b := range f.rows {
		if b.StaffID == staffID && inRange(b.AppointmentAt, from, to) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) FindByShop(ctx context.Context, shopID string, from, to time.Time) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Booking
	for _, b := range f.rows {
		if b.ShopID == shopID && inRange(b.AppointmentAt, from, to) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) FindByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Booking
	for _, b := range f.rows {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) assignID(b *models.Booking) {
	if b.ID == "" {
		f.seq++
		b.ID = fmt.Sprintf("bk-%d", f.seq)
	}
}

func inRange(t, from, to time.Time) bool {
	if !from.IsZero() && t.Before(from) {
		return false
	}
	if !to.IsZero() && !t.Before(to) {
		return false
	}
	return true
}

var _ domain.BookingStore = (*fakeBookingStore)(nil)
var _ domain.ServiceStore = (*fakeServiceStore)(nil)
