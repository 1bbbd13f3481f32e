package domain

import "time"

// ChatMessage with an empty ReceiverID is addressed to all administrators.
type ChatMessage struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	SenderRole Role      `json:"sender_role"`
	ReceiverID string    `json:"receiver_id,omitempty"`
	Message    string    `json:"message"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}
