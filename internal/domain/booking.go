package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// IsLive reports whether a booking in this status still occupies its slot.
func (s BookingStatus) IsLive() bool {
	return s == BookingPending || s == BookingConfirmed
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentSuccess PaymentStatus = "success"
	PaymentFailed  PaymentStatus = "failed"
)

type AttendanceMode string

const (
	AttendanceGym       AttendanceMode = "gym"
	AttendanceHomeVisit AttendanceMode = "home_visit"
)

// TimeSlots is the full enumeration of bookable slots per day. Availability is
// always computed as this list minus the slots of live bookings; it is never
// derived from trainer calendars.
var TimeSlots = []string{
	"06:00-07:00",
	"07:00-08:00",
	"08:00-09:00",
	"09:00-10:00",
	"10:00-11:00",
	"11:00-12:00",
	"16:00-17:00",
	"17:00-18:00",
	"18:00-19:00",
	"19:00-20:00",
	"20:00-21:00",
}

// IsValidTimeSlot checks the label against the fixed enumeration.
func IsValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

type Location struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Booking struct {
	ID              string         `json:"id"`
	UserID          string         `json:"user_id"`
	UserName        string         `json:"user_name"`
	UserEmail       string         `json:"user_email"`
	UserPhone       string         `json:"user_phone,omitempty"`
	ProgramID       string         `json:"program_id"`
	ProgramTitle    string         `json:"program_title"`
	TrainerID       string         `json:"trainer_id"`
	TrainerName     string         `json:"trainer_name"`
	BookingDate     string         `json:"booking_date"` // YYYY-MM-DD
	TimeSlot        string         `json:"time_slot"`    // e.g. "09:00-10:00"
	AttendanceMode  AttendanceMode `json:"attendance_mode"`
	Location        *Location      `json:"location,omitempty"`       // customer location, home_visit only
	VenueLocation   *Location      `json:"venue_location,omitempty"` // copied from venue settings, gym only
	Amount          float64        `json:"amount"`
	Status          BookingStatus  `json:"status"`
	PaymentStatus   PaymentStatus  `json:"payment_status"`
	RazorpayOrderID string         `json:"razorpay_order_id,omitempty"`
	PaymentID       string         `json:"payment_id,omitempty"`
	Notes           string         `json:"notes,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
