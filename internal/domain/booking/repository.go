package booking

import (
	"context"
	"time"

	"github.com/barberease/scheduler/internal/models"
)

// ServiceStore is the read-only service collaborator. GetService returns
// ErrNotFound when the id is unknown.
type ServiceStore interface {
	GetService(ctx context.Context, id string) (*models.Service, error)
}

// BookingStore is the persistence collaborator for bookings. Implementations
// must honour ctx deadlines on every call.
type BookingStore interface {
	// FindActiveByStaffInRange returns the staff member's bookings whose
	// start falls in [start, end), excluding cancelled and no-show.
	FindActiveByStaffInRange(ctx context.Context, staffID string, start, end time.Time) ([]models.Booking, error)

	FindByID(ctx context.Context, id string) (*models.Booking, error)

	// Save inserts or updates.
	Save(ctx context.Context, b *models.Booking) error

	// CreateWithConflictGuard re-runs the overlap check against committed
	// rows and inserts b as one atomically observed unit, so two racing
	// creations for the same staff cannot both commit. A conflict at commit
	// time is reported as ErrSlotUnavailable.
	CreateWithConflictGuard(ctx context.Context, b *models.Booking, start, end time.Time) error

	// Read projections; zero-valued bounds mean unbounded.
	FindByStaff(ctx context.Context, staffID string, from, to time.Time) ([]models.Booking, error)
	FindByShop(ctx context.Context, shopID string, from, to time.Time) ([]models.Booking, error)
	FindByUser(ctx context.Context, userID string) ([]models.Booking, error)
}
