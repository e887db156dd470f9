package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/barberease/scheduler/internal/domain/booking"
	"github.com/barberease/scheduler/internal/models"
)

// Postgres overlap predicate over the snapshotted duration. Half-open
// intervals: a booking ending exactly at the proposed start is no conflict.
const overlapWhere = "staff_id = ? AND status NOT IN ('cancelled', 'no_show') " +
	"AND appointment_at < ? AND appointment_at + (duration_minutes * interval '1 minute') > ?"

type BookingGormStore struct {
	db *gorm.DB
}

func NewBookingGormStore(db *gorm.DB) *BookingGormStore {
	return &BookingGormStore{db: db}
}

func (r *BookingGormStore) FindActiveByStaffInRange(
	ctx context.Context,
	staffID string,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var out []models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"staff_id = ? AND status NOT IN ('cancelled', 'no_show') AND appointment_at >= ? AND appointment_at < ?",
			staffID, start, end,
		).
		Order("appointment_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BookingGormStore) FindByID(ctx context.Context, id string) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormStore) Save(ctx context.Context, b *models.Booking) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// CreateWithConflictGuard re-checks the overlap against committed rows under
// a FOR UPDATE lock and inserts in the same transaction, so two racing
// creations for the same staff member cannot both commit.
func (r *BookingGormStore) CreateWithConflictGuard(
	ctx context.Context,
	b *models.Booking,
	start time.Time,
	end time.Time,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Booking{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(overlapWhere, b.StaffID, end, start).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return domain.ErrSlotUnavailable
		}

		return tx.Create(b).Error
	})
}

func (r *BookingGormStore) FindByStaff(
	ctx context.Context,
	staffID string,
	from time.Time,
	to time.Time,
) ([]models.Booking, error) {
	return r.findInRange(ctx, "staff_id = ?", staffID, from, to)
}

func (r *BookingGormStore) FindByShop(
	ctx context.Context,
	shopID string,
	from time.Time,
	to time.Time,
) ([]models.Booking, error) {
	return r.findInRange(ctx, "shop_id = ?", shopID, from, to)
}

func (r *BookingGormStore) FindByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	var out []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Staff").
		Where("user_id = ?", userID).
		Order("appointment_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BookingGormStore) findInRange(
	ctx context.Context,
	cond string,
	id string,
	from time.Time,
	to time.Time,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Preload("Service").
		Preload("User").
		Where(cond, id)

	if !from.IsZero() {
		q = q.Where("appointment_at >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("appointment_at < ?", to)
	}

	var out []models.Booking
	if err := q.Order("appointment_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Compile-time check
var _ domain.BookingStore = (*BookingGormStore)(nil)
