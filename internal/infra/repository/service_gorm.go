package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/barberease/scheduler/internal/domain/booking"
	"github.com/barberease/scheduler/internal/models"
)

type ServiceGormStore struct {
	db *gorm.DB
}

func NewServiceGormStore(db *gorm.DB) *ServiceGormStore {
	return &ServiceGormStore{db: db}
}

func (r *ServiceGormStore) GetService(ctx context.Context, id string) (*models.Service, error) {
	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &svc, nil
}

func (r *ServiceGormStore) ListByShop(ctx context.Context, shopID string) ([]models.Service, error) {
	var out []models.Service
	if err := r.db.WithContext(ctx).
		Where("shop_id = ? AND active = true", shopID).
		Order("name ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Compile-time check
var _ domain.ServiceStore = (*ServiceGormStore)(nil)
