package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"fitsphere/internal/domain"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	tx := r.db.WithContext(ctx).First(&p, "id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

func (r *ProductRepository) List(ctx context.Context, category, search string, skip, limit int) ([]domain.Product, error) {
	q := r.db.WithContext(ctx).Model(&domain.Product{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if search != "" {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}
	if limit <= 0 {
		limit = 50
	}

	var out []domain.Product
	tx := q.Offset(skip).Limit(limit).Find(&out)
	return out, tx.Error
}

func (r *ProductRepository) Update(ctx context.Context, id string, fields map[string]any) (*domain.Product, error) {
	fields["updated_at"] = time.Now().UTC()
	tx := r.db.WithContext(ctx).Model(&domain.Product{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Product{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DecrementStock applies an atomic stock decrement at the storage layer;
// application code never does read-modify-write on counters. The stock floor
// lives in the WHERE clause, so a decrement that would go negative affects
// zero rows and reports gorm.ErrRecordNotFound instead.
func (r *ProductRepository) DecrementStock(ctx context.Context, id string, quantity int) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("id = ? AND stock >= ?", id, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ProductRepository) CountAll(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Product{}).Count(&n).Error
	return n, err
}
