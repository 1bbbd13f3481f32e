package domain

import "time"

// Payment is the immutable audit record written exactly once per verified
// payment. Its existence for a given razorpay_order_id is the evidence that
// signature verification succeeded; rows are never updated except to raise
// the reconciliation flag when a post-audit counter mutation fails.
type Payment struct {
	ID                  string        `json:"id" gorm:"primaryKey"`
	BookingID           string        `json:"booking_id,omitempty"`
	OrderID             string        `json:"order_id,omitempty"`
	RazorpayOrderID     string        `json:"razorpay_order_id" gorm:"uniqueIndex"`
	RazorpayPaymentID   string        `json:"razorpay_payment_id"`
	RazorpaySignature   string        `json:"razorpay_signature"`
	Amount              float64       `json:"amount"`
	Status              PaymentStatus `json:"status"`
	NeedsReconciliation bool          `json:"needs_reconciliation,omitempty"`
	CreatedAt           time.Time     `json:"created_at"`
}
