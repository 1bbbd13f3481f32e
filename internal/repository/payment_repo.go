package repository

import (
	"context"

	"gorm.io/gorm"

	"fitsphere/internal/domain"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create writes the audit row. The unique index on razorpay_order_id makes a
// second row for the same gateway order impossible.
func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) GetByRazorpayOrderID(ctx context.Context, razorpayOrderID string) (*domain.Payment, error) {
	var p domain.Payment
	tx := r.db.WithContext(ctx).First(&p, "razorpay_order_id = ?", razorpayOrderID)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

// FlagReconciliation marks a payment whose post-audit counter mutation
// failed. This is the only mutation ever applied to a payment row.
func (r *PaymentRepository) FlagReconciliation(ctx context.Context, paymentID string) error {
	return r.db.WithContext(ctx).
		Model(&domain.Payment{}).
		Where("id = ?", paymentID).
		UpdateColumn("needs_reconciliation", true).Error
}

func (r *PaymentRepository) CountByStatus(ctx context.Context) (total, successful int64, err error) {
	if err = r.db.WithContext(ctx).Model(&domain.Payment{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	err = r.db.WithContext(ctx).Model(&domain.Payment{}).
		Where("status = ?", "success").Count(&successful).Error
	return total, successful, err
}
