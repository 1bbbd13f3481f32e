package domain

import "time"

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// OrderItem captures the unit price at order time; later product price changes
// never affect an existing order.
type OrderItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type Order struct {
	ID              string        `json:"id" gorm:"primaryKey"`
	UserID          string        `json:"user_id" gorm:"index"`
	Items           []OrderItem   `json:"items" gorm:"serializer:json"`
	TotalAmount     float64       `json:"total_amount"`
	CustomerName    string        `json:"customer_name"`
	CustomerEmail   string        `json:"customer_email"`
	CustomerPhone   string        `json:"customer_phone"`
	ShippingAddress string        `json:"shipping_address"`
	OrderStatus     OrderStatus   `json:"order_status"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	PaymentID       string        `json:"payment_id,omitempty"`
	RazorpayOrderID string        `json:"razorpay_order_id,omitempty" gorm:"index"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
