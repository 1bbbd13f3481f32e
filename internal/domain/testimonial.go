package domain

import "time"

// Testimonial is a member review of a service. It carries a denormalized
// snapshot of the author and stays hidden from the public listing until an
// administrator approves it.
type Testimonial struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"index"`
	UserName    string    `json:"user_name"`
	UserEmail   string    `json:"user_email"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment" gorm:"type:text"`
	ServiceType string    `json:"service_type"`
	IsApproved  bool      `json:"is_approved"`
	CreatedAt   time.Time `json:"created_at"`
}
