package auth

import (
	"context"

	"fitsphere/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateLastLogin(ctx context.Context, id string) error
}

type Notifier interface {
	Notify(ctx context.Context, t domain.NotificationType, message string)
}
