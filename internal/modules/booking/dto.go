package booking

import "fitsphere/internal/domain"

type CreateBookingRequest struct {
	ProgramID      string           `json:"program_id" binding:"required"`
	TrainerID      string           `json:"trainer_id" binding:"required"`
	BookingDate    string           `json:"booking_date" binding:"required"` // YYYY-MM-DD
	TimeSlot       string           `json:"time_slot" binding:"required"`
	AttendanceMode string           `json:"attendance_mode" binding:"required"`
	Location       *domain.Location `json:"location"`
	Notes          string           `json:"notes"`
}

type AvailableSlotsResponse struct {
	Date      string   `json:"date"`
	TrainerID string   `json:"trainer_id"`
	Available []string `json:"available"`
	Booked    []string `json:"booked"`
}

type CreatePaymentResponse struct {
	BookingID       string  `json:"booking_id"`
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

// UpdateStatusRequest enumerates exactly the fields an administrator may
// touch. Anything else on the booking is unreachable from this endpoint.
type UpdateStatusRequest struct {
	Status      *string `json:"status"`
	Notes       *string `json:"notes"`
	BookingDate *string `json:"booking_date"`
	TimeSlot    *string `json:"time_slot"`
}
