package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitsphere/internal/domain"
)

type VenueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

// Get returns the singleton venue record, or gorm.ErrRecordNotFound when the
// venue has never been configured.
func (r *VenueRepository) Get(ctx context.Context) (*domain.VenueSettings, error) {
	var v domain.VenueSettings
	tx := r.db.WithContext(ctx).First(&v)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &v, nil
}

func (r *VenueRepository) Upsert(ctx context.Context, v *domain.VenueSettings) error {
	existing, err := r.Get(ctx)
	if err == nil {
		v.ID = existing.ID
		v.UpdatedAt = time.Now().UTC()
		return r.db.WithContext(ctx).Save(v).Error
	}

	v.ID = uuid.NewString()
	v.UpdatedAt = time.Now().UTC()
	return r.db.WithContext(ctx).Create(v).Error
}
