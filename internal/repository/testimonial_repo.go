package repository

import (
	"context"

	"gorm.io/gorm"

	"fitsphere/internal/domain"
)

type TestimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

func (r *TestimonialRepository) Create(ctx context.Context, t *domain.Testimonial) error {
	return r.db.WithContext(ctx).Create(t).Error
}

type TestimonialFilter struct {
	ApprovedOnly bool
	ServiceType  string
	Skip         int
	Limit        int
}

func (r *TestimonialRepository) List(ctx context.Context, f TestimonialFilter) ([]domain.Testimonial, error) {
	q := r.db.WithContext(ctx).Model(&domain.Testimonial{})
	if f.ApprovedOnly {
		q = q.Where("is_approved = ?", true)
	}
	if f.ServiceType != "" {
		q = q.Where("service_type = ?", f.ServiceType)
	}
	if f.Limit <= 0 {
		f.Limit = 20
	}

	var out []domain.Testimonial
	err := q.Order("created_at DESC").Offset(f.Skip).Limit(f.Limit).Find(&out).Error
	return out, err
}

func (r *TestimonialRepository) Approve(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Testimonial{}).
		Where("id = ?", id).
		UpdateColumn("is_approved", true)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TestimonialRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Testimonial{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
