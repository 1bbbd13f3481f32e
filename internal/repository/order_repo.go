package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"fitsphere/internal/domain"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	tx := r.db.WithContext(ctx).First(&o, "id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &o, nil
}

func (r *OrderRepository) GetByRazorpayOrderID(ctx context.Context, razorpayOrderID string) (*domain.Order, error) {
	var o domain.Order
	tx := r.db.WithContext(ctx).First(&o, "razorpay_order_id = ?", razorpayOrderID)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &o, nil
}

type OrderFilter struct {
	Status        string
	PaymentStatus string
	UserID        string
	Skip          int
	Limit         int
}

func (r *OrderRepository) List(ctx context.Context, f OrderFilter) ([]domain.Order, error) {
	q := r.db.WithContext(ctx).Model(&domain.Order{})
	if f.Status != "" {
		q = q.Where("order_status = ?", f.Status)
	}
	if f.PaymentStatus != "" {
		q = q.Where("payment_status = ?", f.PaymentStatus)
	}
	if f.UserID != "" {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.Limit <= 0 {
		f.Limit = 50
	}

	var out []domain.Order
	tx := q.Order("created_at DESC").Offset(f.Skip).Limit(f.Limit).Find(&out)
	return out, tx.Error
}

func (r *OrderRepository) All(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	tx := r.db.WithContext(ctx).Order("created_at ASC").Find(&out)
	return out, tx.Error
}

// UpdateStatus is the legacy free-form admin edit; orders intentionally have
// a weaker status contract than bookings.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]any{
			"order_status": string(status),
			"updated_at":   time.Now().UTC(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MarkPaid flips the order to paid/processing exactly once; a replayed
// verification affects zero rows.
func (r *OrderRepository) MarkPaid(ctx context.Context, orderID, paymentID string) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("id = ? AND payment_status = ?", orderID, "pending").
		Updates(map[string]any{
			"payment_status": "success",
			"order_status":   "processing",
			"payment_id":     paymentID,
			"updated_at":     time.Now().UTC(),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
