package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"fitsphere/internal/domain"
)

type TrainerRepository struct {
	db *gorm.DB
}

func NewTrainerRepository(db *gorm.DB) *TrainerRepository {
	return &TrainerRepository{db: db}
}

func (r *TrainerRepository) Create(ctx context.Context, t *domain.Trainer) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TrainerRepository) GetByID(ctx context.Context, id string) (*domain.Trainer, error) {
	var t domain.Trainer
	tx := r.db.WithContext(ctx).First(&t, "id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &t, nil
}

func (r *TrainerRepository) List(ctx context.Context, skip, limit int) ([]domain.Trainer, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []domain.Trainer
	tx := r.db.WithContext(ctx).Offset(skip).Limit(limit).Find(&out)
	return out, tx.Error
}

func (r *TrainerRepository) Update(ctx context.Context, id string, fields map[string]any) (*domain.Trainer, error) {
	fields["updated_at"] = time.Now().UTC()
	tx := r.db.WithContext(ctx).Model(&domain.Trainer{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *TrainerRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Trainer{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementSessions bumps total_sessions atomically.
func (r *TrainerRepository) IncrementSessions(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Trainer{}).
		Where("id = ?", id).
		UpdateColumn("total_sessions", gorm.Expr("total_sessions + ?", 1))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
