package notification

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitsphere/internal/domain"
)

var ErrNotFound = errors.New("notification not found")

type Repository interface {
	Create(ctx context.Context, n *domain.Notification) error
	List(ctx context.Context, unreadOnly bool, skip, limit int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

// Pusher delivers real-time events to connected administrators.
type Pusher interface {
	SendToAdmins(message any)
}

type Service struct {
	repo   Repository
	pusher Pusher
}

func NewService(repo Repository, pusher Pusher) *Service {
	return &Service{repo: repo, pusher: pusher}
}

// Notify persists the event and pushes it to online admins. It is
// fire-and-forget: failures are logged, never returned, so a broken
// notification path cannot fail a payment or an order.
func (s *Service) Notify(ctx context.Context, t domain.NotificationType, message string) {
	n := &domain.Notification{
		ID:        uuid.NewString(),
		Type:      t,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		log.Printf("notification: persist failed (%s): %v", t, err)
		return
	}
	if s.pusher != nil {
		s.pusher.SendToAdmins(map[string]any{
			"type": "notification",
			"data": n,
		})
	}
}

func (s *Service) List(ctx context.Context, unreadOnly bool, skip, limit int) ([]domain.Notification, error) {
	return s.repo.List(ctx, unreadOnly, skip, limit)
}

func (s *Service) MarkRead(ctx context.Context, id string) error {
	if err := s.repo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
