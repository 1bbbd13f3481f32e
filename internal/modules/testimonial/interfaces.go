package testimonial

import (
	"context"

	"fitsphere/internal/domain"
	"fitsphere/internal/repository"
)

type TestimonialRepository interface {
	Create(ctx context.Context, t *domain.Testimonial) error
	List(ctx context.Context, f repository.TestimonialFilter) ([]domain.Testimonial, error)
	Approve(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type UserReader interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type Notifier interface {
	Notify(ctx context.Context, t domain.NotificationType, message string)
}
