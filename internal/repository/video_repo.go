package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"fitsphere/internal/domain"
)

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

func (r *VideoRepository) Create(ctx context.Context, v *domain.Video) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VideoRepository) GetByID(ctx context.Context, id string) (*domain.Video, error) {
	var v domain.Video
	tx := r.db.WithContext(ctx).First(&v, "id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &v, nil
}

func (r *VideoRepository) List(ctx context.Context, category, difficulty, search string, skip, limit int) ([]domain.Video, error) {
	q := r.db.WithContext(ctx).Model(&domain.Video{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if difficulty != "" {
		q = q.Where("difficulty = ?", difficulty)
	}
	if search != "" {
		q = q.Where("title LIKE ?", "%"+search+"%")
	}
	if limit <= 0 {
		limit = 50
	}

	var out []domain.Video
	tx := q.Offset(skip).Limit(limit).Find(&out)
	return out, tx.Error
}

func (r *VideoRepository) Update(ctx context.Context, id string, fields map[string]any) (*domain.Video, error) {
	fields["updated_at"] = time.Now().UTC()
	tx := r.db.WithContext(ctx).Model(&domain.Video{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *VideoRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Video{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *VideoRepository) IncrementViews(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&domain.Video{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}

func (r *VideoRepository) MostWatched(ctx context.Context, limit int) ([]domain.Video, error) {
	if limit <= 0 {
		limit = 5
	}
	var out []domain.Video
	tx := r.db.WithContext(ctx).Order("view_count DESC").Limit(limit).Find(&out)
	return out, tx.Error
}
