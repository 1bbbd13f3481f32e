package order

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"fitsphere/internal/domain"
	"fitsphere/internal/gateway"
	"fitsphere/internal/repository"
)

const lowStockThreshold = 5

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type Service struct {
	orders   OrderRepository
	products ProductRepository
	payments PaymentRepository
	gw       gateway.Client
	notifier Notifier
}

func NewService(orders OrderRepository, products ProductRepository, payments PaymentRepository, gw gateway.Client, notifier Notifier) *Service {
	return &Service{orders: orders, products: products, payments: payments, gw: gw, notifier: notifier}
}

// CreateOrder prices the cart from the catalog, opens a gateway order for the
// total and persists the order as pending. Unit prices are captured onto the
// order items so later catalog edits never reprice an existing order. Stock is
// only checked here; it is not decremented until payment verifies.
func (s *Service) CreateOrder(ctx context.Context, userID string, req CreateOrderRequest) (*CreateOrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", ErrValidation)
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	var total float64
	for _, it := range req.Items {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive", ErrValidation)
		}
		p, err := s.products.GetByID(ctx, it.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrProductNotFound, it.ProductID)
			}
			return nil, err
		}
		if p.Stock < it.Quantity {
			return nil, fmt.Errorf("%w: %s has %d left", ErrOutOfStock, p.Name, p.Stock)
		}

		unit := p.Price - p.Discount
		if unit < 0 {
			unit = 0
		}
		items = append(items, domain.OrderItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    it.Quantity,
			Price:       unit,
		})
		total += unit * float64(it.Quantity)
	}

	o := &domain.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		Items:           items,
		TotalAmount:     total,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		OrderStatus:     domain.OrderPending,
		PaymentStatus:   domain.PaymentPending,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}

	amountMinor := int64(math.Round(total * 100))
	gwOrderID, err := s.gw.CreateOrder(ctx, amountMinor, o.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	o.RazorpayOrderID = gwOrderID

	if err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}

	return &CreateOrderResponse{
		OrderID:         o.ID,
		RazorpayOrderID: gwOrderID,
		Amount:          amountMinor,
		Currency:        s.gw.Currency(),
		RazorpayKeyID:   s.gw.KeyID(),
		AmountRupees:    total,
	}, nil
}

// VerifyPayment settles an order: signature check, one-shot MarkPaid, audit
// row, then per-item atomic stock decrements. Decrements happen exactly once
// because only the verification that flipped the payment status reaches them;
// a replayed valid callback answers with the settled order and skips them.
func (s *Service) VerifyPayment(ctx context.Context, req VerifyPaymentRequest) (*domain.Order, error) {
	if !s.gw.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		s.notifier.Notify(ctx, domain.NotifFailedPayment,
			fmt.Sprintf("Signature verification failed for order %s", req.RazorpayOrderID))
		return nil, ErrInvalidSignature
	}

	o, err := s.orders.GetByRazorpayOrderID(ctx, req.RazorpayOrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	changed, err := s.orders.MarkPaid(ctx, o.ID, req.RazorpayPaymentID)
	if err != nil {
		return nil, err
	}
	if !changed {
		// Replayed verification; the order settled already.
		return s.orders.GetByID(ctx, o.ID)
	}

	p := &domain.Payment{
		ID:                uuid.NewString(),
		OrderID:           o.ID,
		RazorpayOrderID:   req.RazorpayOrderID,
		RazorpayPaymentID: req.RazorpayPaymentID,
		RazorpaySignature: req.RazorpaySignature,
		Amount:            o.TotalAmount,
		Status:            domain.PaymentSuccess,
		CreatedAt:         time.Now().UTC(),
	}
	auditMissing := false
	if err := s.payments.Create(ctx, p); err != nil && !isDuplicateKey(err) {
		log.Printf("order: payment audit insert failed for order %s: %v", req.RazorpayOrderID, err)
		auditMissing = true
		s.notifier.Notify(ctx, domain.NotifSystem,
			fmt.Sprintf("Reconciliation needed: audit row missing for order %s (gateway order %s)", o.ID, req.RazorpayOrderID))
	}

	// Flagging goes through the audit row; when that row never landed the
	// flag would silently no-op, so fall back to a persisted notification.
	flagReconciliation := func(reason string) {
		if auditMissing {
			s.notifier.Notify(ctx, domain.NotifSystem,
				fmt.Sprintf("Reconciliation needed for order %s: %s", o.ID, reason))
			return
		}
		if err := s.payments.FlagReconciliation(ctx, p.ID); err != nil {
			log.Printf("order: reconciliation flag failed for payment %s: %v", p.ID, err)
		}
	}

	for _, it := range o.Items {
		if err := s.products.DecrementStock(ctx, it.ProductID, it.Quantity); err != nil {
			log.Printf("order: stock decrement failed for product %s: %v", it.ProductID, err)
			flagReconciliation(fmt.Sprintf("stock decrement not applied for product %s", it.ProductID))
			continue
		}
		if prod, err := s.products.GetByID(ctx, it.ProductID); err == nil && prod.Stock < lowStockThreshold {
			s.notifier.Notify(ctx, domain.NotifLowStock,
				fmt.Sprintf("Low stock: %s has %d left", prod.Name, prod.Stock))
		}
	}

	s.notifier.Notify(ctx, domain.NotifNewOrder,
		fmt.Sprintf("Order %s paid by %s (%.2f)", o.ID, o.CustomerName, o.TotalAmount))

	return s.orders.GetByID(ctx, o.ID)
}

func (s *Service) GetOrder(ctx context.Context, orderID, callerID, callerRole string) (*domain.Order, error) {
	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if o.UserID != callerID && callerRole != string(domain.RoleAdmin) {
		return nil, ErrForbidden
	}
	return o, nil
}

func (s *Service) ListOrders(ctx context.Context, f repository.OrderFilter) ([]domain.Order, error) {
	return s.orders.List(ctx, f)
}

func (s *Service) MyOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orders.List(ctx, repository.OrderFilter{UserID: userID, Limit: 100})
}

func (s *Service) AllOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.All(ctx)
}

// UpdateStatus is a free-form admin edit; unlike bookings there is no state
// machine on order statuses, only membership in the known set.
func (s *Service) UpdateStatus(ctx context.Context, orderID string, status string) (*domain.Order, error) {
	switch domain.OrderStatus(status) {
	case domain.OrderPending, domain.OrderProcessing, domain.OrderShipped, domain.OrderDelivered, domain.OrderCancelled:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	if err := s.orders.UpdateStatus(ctx, orderID, domain.OrderStatus(status)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.orders.GetByID(ctx, orderID)
}
