package order

import (
	"context"

	"fitsphere/internal/domain"
	"fitsphere/internal/repository"
)

type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	GetByRazorpayOrderID(ctx context.Context, razorpayOrderID string) (*domain.Order, error)
	List(ctx context.Context, f repository.OrderFilter) ([]domain.Order, error)
	All(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error
	MarkPaid(ctx context.Context, orderID, paymentID string) (bool, error)
}

type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	DecrementStock(ctx context.Context, id string, quantity int) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	FlagReconciliation(ctx context.Context, paymentID string) error
}

type Notifier interface {
	Notify(ctx context.Context, t domain.NotificationType, message string)
}
