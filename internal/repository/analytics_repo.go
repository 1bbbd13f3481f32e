package repository

import (
	"context"

	"gorm.io/gorm"

	"fitsphere/internal/domain"
)

// AnalyticsRepository runs the dashboard aggregates. Everything here is
// read-only.
type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) CountBookingsByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		N      int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Table("bookings").
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, rw := range rows {
		out[rw.Status] = rw.N
	}
	return out, nil
}

func (r *AnalyticsRepository) CountOrdersByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		N      int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Table("orders").
		Select("order_status AS status, COUNT(*) AS n").
		Group("order_status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, rw := range rows {
		out[rw.Status] = rw.N
	}
	return out, nil
}

// Revenue sums settled payment amounts, split by source.
func (r *AnalyticsRepository) Revenue(ctx context.Context) (bookings, orders float64, err error) {
	err = r.db.WithContext(ctx).Model(&domain.Payment{}).
		Where("status = ? AND booking_id <> ''", "success").
		Select("COALESCE(SUM(amount), 0)").Scan(&bookings).Error
	if err != nil {
		return 0, 0, err
	}
	err = r.db.WithContext(ctx).Model(&domain.Payment{}).
		Where("status = ? AND order_id <> ''", "success").
		Select("COALESCE(SUM(amount), 0)").Scan(&orders).Error
	return bookings, orders, err
}

func (r *AnalyticsRepository) CountReconciliation(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Payment{}).
		Where("needs_reconciliation = ?", true).Count(&n).Error
	return n, err
}

func (r *AnalyticsRepository) LowStockProducts(ctx context.Context, threshold int) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.WithContext(ctx).
		Where("stock < ?", threshold).
		Order("stock ASC").
		Find(&out).Error
	return out, err
}
