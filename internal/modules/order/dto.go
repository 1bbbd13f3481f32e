package order

type ItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

type CreateOrderRequest struct {
	Items           []ItemRequest `json:"items" binding:"required"`
	CustomerName    string        `json:"customer_name" binding:"required"`
	CustomerEmail   string        `json:"customer_email" binding:"required"`
	CustomerPhone   string        `json:"customer_phone"`
	ShippingAddress string        `json:"shipping_address" binding:"required"`
}

type CreateOrderResponse struct {
	OrderID         string  `json:"order_id"`
	RazorpayOrderID string  `json:"razorpay_order_id"`
	Amount          int64   `json:"amount"` // minor currency units
	Currency        string  `json:"currency"`
	RazorpayKeyID   string  `json:"razorpay_key_id"`
	AmountRupees    float64 `json:"amount_rupees"`
}

type VerifyPaymentRequest struct {
	RazorpayOrderID   string `form:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `form:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `form:"razorpay_signature" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
