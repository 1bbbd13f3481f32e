package domain

import "time"

type NotificationType string

const (
	NotifNewOrder      NotificationType = "new_order"
	NotifNewBooking    NotificationType = "new_booking"
	NotifFailedPayment NotificationType = "failed_payment"
	NotifLowStock      NotificationType = "low_stock"
	NotifNewUser       NotificationType = "new_user"
	NotifTestimonial   NotificationType = "new_testimonial"
	NotifSystem        NotificationType = "system"
)

type Notification struct {
	ID        string           `json:"id" gorm:"primaryKey"`
	Type      NotificationType `json:"notification_type"`
	Message   string           `json:"message"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}
