package testimonial

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitsphere/internal/domain"
	"fitsphere/internal/repository"
)

type Service struct {
	testimonials TestimonialRepository
	users        UserReader
	notifier     Notifier
}

func NewService(testimonials TestimonialRepository, users UserReader, notifier Notifier) *Service {
	return &Service{testimonials: testimonials, users: users, notifier: notifier}
}

// Create stores a new testimonial as unapproved. The author snapshot is
// denormalized onto the row so later account edits never rewrite history.
func (s *Service) Create(ctx context.Context, userID string, req CreateTestimonialRequest) (*domain.Testimonial, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	t := &domain.Testimonial{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		UserName:    user.Name,
		UserEmail:   user.Email,
		Rating:      req.Rating,
		Comment:     req.Comment,
		ServiceType: req.ServiceType,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.testimonials.Create(ctx, t); err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, domain.NotifTestimonial,
		fmt.Sprintf("New testimonial from %s (%d stars)", t.UserName, t.Rating))

	return t, nil
}

func (s *Service) List(ctx context.Context, f repository.TestimonialFilter) ([]domain.Testimonial, error) {
	return s.testimonials.List(ctx, f)
}

func (s *Service) Approve(ctx context.Context, id string) error {
	if err := s.testimonials.Approve(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.testimonials.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
