package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitsphere/internal/domain"
)

var (
	ErrEmptyMessage  = errors.New("message cannot be empty")
	ErrNotFound      = errors.New("message not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrSelfMessaging = errors.New("cannot message yourself")
)

type MessageRepository interface {
	Create(ctx context.Context, m *domain.ChatMessage) error
	ListForUser(ctx context.Context, userID string, skip, limit int) ([]domain.ChatMessage, error)
	ListAll(ctx context.Context, userID string, skip, limit int) ([]domain.ChatMessage, error)
	MarkRead(ctx context.Context, messageID string) error
}

type UserReader interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type Service struct {
	messages MessageRepository
	users    UserReader
	hub      *Hub
}

func NewService(messages MessageRepository, users UserReader, hub *Hub) *Service {
	return &Service{messages: messages, users: users, hub: hub}
}

func (s *Service) Hub() *Hub { return s.hub }

// SendMessage persists the message and pushes it to the connected recipient.
// An empty receiver means the message goes to the admin support channel.
func (s *Service) SendMessage(ctx context.Context, senderID string, req SendMessageRequest) (*domain.ChatMessage, error) {
	text := strings.TrimSpace(req.Message)
	if text == "" {
		return nil, ErrEmptyMessage
	}
	if req.ReceiverID == senderID {
		return nil, ErrSelfMessaging
	}

	sender, err := s.users.GetByID(ctx, senderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if req.ReceiverID != "" {
		if _, err := s.users.GetByID(ctx, req.ReceiverID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
	}

	m := &domain.ChatMessage{
		ID:         uuid.NewString(),
		SenderID:   sender.ID,
		SenderName: sender.Name,
		SenderRole: sender.Role,
		ReceiverID: req.ReceiverID,
		Message:    text,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.messages.Create(ctx, m); err != nil {
		return nil, err
	}

	wire := WireMessage{Type: "chat_message", Data: m}
	if m.ReceiverID == "" {
		s.hub.SendToAdmins(wire)
	} else {
		s.hub.SendToUser(m.ReceiverID, wire)
	}
	return m, nil
}

func (s *Service) History(ctx context.Context, userID string, skip, limit int) ([]domain.ChatMessage, error) {
	return s.messages.ListForUser(ctx, userID, skip, limit)
}

// AdminHistory returns all conversations, optionally narrowed to one user.
func (s *Service) AdminHistory(ctx context.Context, userID string, skip, limit int) ([]domain.ChatMessage, error) {
	return s.messages.ListAll(ctx, userID, skip, limit)
}

func (s *Service) MarkRead(ctx context.Context, messageID string) error {
	if err := s.messages.MarkRead(ctx, messageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
