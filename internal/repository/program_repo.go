package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"fitsphere/internal/domain"
)

type ProgramRepository struct {
	db *gorm.DB
}

func NewProgramRepository(db *gorm.DB) *ProgramRepository {
	return &ProgramRepository{db: db}
}

func (r *ProgramRepository) Create(ctx context.Context, p *domain.Program) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProgramRepository) GetByID(ctx context.Context, id string) (*domain.Program, error) {
	var p domain.Program
	tx := r.db.WithContext(ctx).First(&p, "id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

func (r *ProgramRepository) List(ctx context.Context, category string, skip, limit int) ([]domain.Program, error) {
	q := r.db.WithContext(ctx).Model(&domain.Program{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if limit <= 0 {
		limit = 50
	}

	var out []domain.Program
	tx := q.Offset(skip).Limit(limit).Find(&out)
	return out, tx.Error
}

func (r *ProgramRepository) Update(ctx context.Context, id string, fields map[string]any) (*domain.Program, error) {
	fields["updated_at"] = time.Now().UTC()
	tx := r.db.WithContext(ctx).Model(&domain.Program{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *ProgramRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Program{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementEnrolled bumps enrolled_count atomically.
func (r *ProgramRepository) IncrementEnrolled(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Program{}).
		Where("id = ?", id).
		UpdateColumn("enrolled_count", gorm.Expr("enrolled_count + ?", 1))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
