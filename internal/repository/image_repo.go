package repository

import (
	"context"

	"gorm.io/gorm"

	"fitsphere/internal/domain"
)

type ImageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

func (r *ImageRepository) Create(ctx context.Context, img *domain.Image) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *ImageRepository) GetByID(ctx context.Context, id string) (*domain.Image, error) {
	var img domain.Image
	tx := r.db.WithContext(ctx).First(&img, "id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &img, nil
}

func (r *ImageRepository) List(ctx context.Context, imageType string, skip, limit int) ([]domain.Image, error) {
	q := r.db.WithContext(ctx).Model(&domain.Image{})
	if imageType != "" {
		q = q.Where("image_type = ?", imageType)
	}
	if limit <= 0 {
		limit = 50
	}

	var out []domain.Image
	tx := q.Offset(skip).Limit(limit).Find(&out)
	return out, tx.Error
}

func (r *ImageRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Image{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
