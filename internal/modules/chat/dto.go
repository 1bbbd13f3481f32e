package chat

type SendMessageRequest struct {
	ReceiverID string `json:"receiver_id"` // empty addresses all admins
	Message    string `json:"message" binding:"required"`
}

// WireMessage is the payload written to websocket clients.
type WireMessage struct {
	Type string `json:"type"` // chat_message | notification
	Data any    `json:"data"`
}
