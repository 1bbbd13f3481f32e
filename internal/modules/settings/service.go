package settings

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fitsphere/internal/domain"
)

var ErrNotConfigured = errors.New("venue not configured")

type VenueRepository interface {
	Get(ctx context.Context) (*domain.VenueSettings, error)
	Upsert(ctx context.Context, v *domain.VenueSettings) error
}

type Service struct {
	venues VenueRepository
}

func NewService(venues VenueRepository) *Service {
	return &Service{venues: venues}
}

func (s *Service) Get(ctx context.Context) (*domain.VenueSettings, error) {
	v, err := s.venues.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotConfigured
		}
		return nil, err
	}
	return v, nil
}

// Update replaces the venue record. Existing bookings keep the venue snapshot
// they were created with.
func (s *Service) Update(ctx context.Context, v *domain.VenueSettings) (*domain.VenueSettings, error) {
	if err := s.venues.Upsert(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}
