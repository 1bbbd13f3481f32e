package order

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"fitsphere/internal/domain"
	"fitsphere/internal/repository"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, o *domain.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByRazorpayOrderID(ctx context.Context, razorpayOrderID string) (*domain.Order, error) {
	args := m.Called(ctx, razorpayOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, f repository.OrderFilter) ([]domain.Order, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) All(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *MockOrderRepository) MarkPaid(ctx context.Context, orderID, paymentID string) (bool, error) {
	args := m.Called(ctx, orderID, paymentID)
	return args.Bool(0), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) DecrementStock(ctx context.Context, id string, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) FlagReconciliation(ctx context.Context, paymentID string) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateOrder(ctx context.Context, amountMinor int64, receipt string) (string, error) {
	args := m.Called(ctx, amountMinor, receipt)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) VerifySignature(orderID, paymentID, signature string) bool {
	args := m.Called(orderID, paymentID, signature)
	return args.Bool(0)
}

func (m *MockGateway) KeyID() string    { return "rzp_test_key" }
func (m *MockGateway) Currency() string { return "INR" }

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, t domain.NotificationType, message string) {
	m.Called(ctx, t, message)
}

type fixtures struct {
	orders   *MockOrderRepository
	products *MockProductRepository
	payments *MockPaymentRepository
	gw       *MockGateway
	notifier *MockNotifier
	service  *Service
}

func newFixtures() *fixtures {
	f := &fixtures{
		orders:   new(MockOrderRepository),
		products: new(MockProductRepository),
		payments: new(MockPaymentRepository),
		gw:       new(MockGateway),
		notifier: new(MockNotifier),
	}
	f.service = NewService(f.orders, f.products, f.payments, f.gw, f.notifier)
	return f
}

func TestCreateOrder_PricesFromCatalog(t *testing.T) {
	f := newFixtures()

	f.products.On("GetByID", mock.Anything, "prod1").Return(&domain.Product{
		ID: "prod1", Name: "Yoga Mat - Premium", Price: 1499, Discount: 10, Stock: 50,
	}, nil)
	f.products.On("GetByID", mock.Anything, "prod2").Return(&domain.Product{
		ID: "prod2", Name: "Yoga Block Set", Price: 699, Stock: 60,
	}, nil)
	// 2*(1499-10) + 1*699 = 3677.00 -> 367700 paise
	f.gw.On("CreateOrder", mock.Anything, int64(367700), mock.Anything).Return("order_abc", nil)
	f.orders.On("Create", mock.Anything, mock.MatchedBy(func(o *domain.Order) bool {
		return o.TotalAmount == 3677 && len(o.Items) == 2 && o.RazorpayOrderID == "order_abc"
	})).Return(nil)

	resp, err := f.service.CreateOrder(context.Background(), "u1", CreateOrderRequest{
		Items: []ItemRequest{
			{ProductID: "prod1", Quantity: 2},
			{ProductID: "prod2", Quantity: 1},
		},
		CustomerName:    "Sarah Johnson",
		CustomerEmail:   "sarah@example.com",
		ShippingAddress: "42 Residency Rd",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(367700), resp.Amount)
	assert.Equal(t, "order_abc", resp.RazorpayOrderID)
}

func TestCreateOrder_InsufficientStock(t *testing.T) {
	f := newFixtures()

	f.products.On("GetByID", mock.Anything, "prod1").Return(&domain.Product{
		ID: "prod1", Name: "Fitness Tracker Watch", Price: 3999, Stock: 1,
	}, nil)

	_, err := f.service.CreateOrder(context.Background(), "u1", CreateOrderRequest{
		Items:           []ItemRequest{{ProductID: "prod1", Quantity: 3}},
		CustomerName:    "Sarah Johnson",
		CustomerEmail:   "sarah@example.com",
		ShippingAddress: "42 Residency Rd",
	})

	assert.ErrorIs(t, err, ErrOutOfStock)
	f.gw.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateOrder_UnknownProduct(t *testing.T) {
	f := newFixtures()

	f.products.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := f.service.CreateOrder(context.Background(), "u1", CreateOrderRequest{
		Items:           []ItemRequest{{ProductID: "missing", Quantity: 1}},
		CustomerName:    "Sarah Johnson",
		CustomerEmail:   "sarah@example.com",
		ShippingAddress: "42 Residency Rd",
	})

	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestVerifyPayment_DecrementsStockOnce(t *testing.T) {
	f := newFixtures()

	paid := &domain.Order{
		ID:              "o1",
		TotalAmount:     2978,
		CustomerName:    "Sarah Johnson",
		RazorpayOrderID: "order_abc",
		Items: []domain.OrderItem{
			{ProductID: "prod1", ProductName: "Yoga Mat - Premium", Quantity: 2, Price: 1489},
		},
	}

	f.gw.On("VerifySignature", "order_abc", "pay_xyz", "sig").Return(true)
	f.orders.On("GetByRazorpayOrderID", mock.Anything, "order_abc").Return(paid, nil)
	f.orders.On("MarkPaid", mock.Anything, "o1", "pay_xyz").Return(true, nil)
	f.payments.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.products.On("DecrementStock", mock.Anything, "prod1", 2).Return(nil)
	f.products.On("GetByID", mock.Anything, "prod1").Return(&domain.Product{
		ID: "prod1", Name: "Yoga Mat - Premium", Stock: 48,
	}, nil)
	f.notifier.On("Notify", mock.Anything, domain.NotifNewOrder, mock.Anything).Return()
	f.orders.On("GetByID", mock.Anything, "o1").Return(paid, nil)

	_, err := f.service.VerifyPayment(context.Background(), VerifyPaymentRequest{
		RazorpayOrderID:   "order_abc",
		RazorpayPaymentID: "pay_xyz",
		RazorpaySignature: "sig",
	})

	assert.NoError(t, err)
	f.products.AssertNumberOfCalls(t, "DecrementStock", 1)
}

func TestVerifyPayment_LowStockNotifies(t *testing.T) {
	f := newFixtures()

	paid := &domain.Order{
		ID:              "o1",
		RazorpayOrderID: "order_abc",
		Items: []domain.OrderItem{
			{ProductID: "prod1", ProductName: "Protein Powder - Vanilla", Quantity: 28, Price: 2374},
		},
	}

	f.gw.On("VerifySignature", "order_abc", "pay_xyz", "sig").Return(true)
	f.orders.On("GetByRazorpayOrderID", mock.Anything, "order_abc").Return(paid, nil)
	f.orders.On("MarkPaid", mock.Anything, "o1", "pay_xyz").Return(true, nil)
	f.payments.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.products.On("DecrementStock", mock.Anything, "prod1", 28).Return(nil)
	f.products.On("GetByID", mock.Anything, "prod1").Return(&domain.Product{
		ID: "prod1", Name: "Protein Powder - Vanilla", Stock: 2,
	}, nil)
	f.notifier.On("Notify", mock.Anything, domain.NotifLowStock, mock.Anything).Return()
	f.notifier.On("Notify", mock.Anything, domain.NotifNewOrder, mock.Anything).Return()
	f.orders.On("GetByID", mock.Anything, "o1").Return(paid, nil)

	_, err := f.service.VerifyPayment(context.Background(), VerifyPaymentRequest{
		RazorpayOrderID:   "order_abc",
		RazorpayPaymentID: "pay_xyz",
		RazorpaySignature: "sig",
	})

	assert.NoError(t, err)
	f.notifier.AssertCalled(t, "Notify", mock.Anything, domain.NotifLowStock, mock.Anything)
}

func TestVerifyPayment_ReplayDoesNotDecrementAgain(t *testing.T) {
	f := newFixtures()

	settled := &domain.Order{
		ID:              "o1",
		RazorpayOrderID: "order_abc",
		OrderStatus:     domain.OrderProcessing,
		PaymentStatus:   domain.PaymentSuccess,
		Items: []domain.OrderItem{
			{ProductID: "prod1", Quantity: 2},
		},
	}
	f.gw.On("VerifySignature", "order_abc", "pay_xyz", "sig").Return(true)
	f.orders.On("GetByRazorpayOrderID", mock.Anything, "order_abc").Return(settled, nil)
	f.orders.On("MarkPaid", mock.Anything, "o1", "pay_xyz").Return(false, nil)
	f.orders.On("GetByID", mock.Anything, "o1").Return(settled, nil)

	o, err := f.service.VerifyPayment(context.Background(), VerifyPaymentRequest{
		RazorpayOrderID:   "order_abc",
		RazorpayPaymentID: "pay_xyz",
		RazorpaySignature: "sig",
	})

	// Replay is the same success, minus every side effect.
	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentSuccess, o.PaymentStatus)
	f.products.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything, mock.Anything)
	f.payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyPayment_AuditInsertFailureNotifies(t *testing.T) {
	f := newFixtures()

	paid := &domain.Order{
		ID:              "o1",
		RazorpayOrderID: "order_abc",
		Items: []domain.OrderItem{
			{ProductID: "prod1", ProductName: "Yoga Mat - Premium", Quantity: 2, Price: 1489},
		},
	}

	f.gw.On("VerifySignature", "order_abc", "pay_xyz", "sig").Return(true)
	f.orders.On("GetByRazorpayOrderID", mock.Anything, "order_abc").Return(paid, nil)
	f.orders.On("MarkPaid", mock.Anything, "o1", "pay_xyz").Return(true, nil)
	f.payments.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrInvalidDB)
	f.products.On("DecrementStock", mock.Anything, "prod1", 2).Return(gorm.ErrRecordNotFound)
	f.notifier.On("Notify", mock.Anything, domain.NotifSystem, mock.Anything).Return()
	f.notifier.On("Notify", mock.Anything, domain.NotifNewOrder, mock.Anything).Return()
	f.orders.On("GetByID", mock.Anything, "o1").Return(paid, nil)

	_, err := f.service.VerifyPayment(context.Background(), VerifyPaymentRequest{
		RazorpayOrderID:   "order_abc",
		RazorpayPaymentID: "pay_xyz",
		RazorpaySignature: "sig",
	})

	// The missing audit row and the skipped decrement both surface as
	// persisted notifications; flagging a nonexistent row is never attempted.
	assert.NoError(t, err)
	f.payments.AssertNotCalled(t, "FlagReconciliation", mock.Anything, mock.Anything)
	f.notifier.AssertCalled(t, "Notify", mock.Anything, domain.NotifSystem, mock.MatchedBy(func(msg string) bool {
		return strings.Contains(msg, "audit row missing")
	}))
	f.notifier.AssertCalled(t, "Notify", mock.Anything, domain.NotifSystem, mock.MatchedBy(func(msg string) bool {
		return strings.Contains(msg, "stock decrement not applied")
	}))
}

func TestUpdateStatus_UnknownStatusRejected(t *testing.T) {
	f := newFixtures()

	_, err := f.service.UpdateStatus(context.Background(), "o1", "teleported")
	assert.ErrorIs(t, err, ErrValidation)
}
