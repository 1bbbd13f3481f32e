package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitsphere/internal/domain"
)

type Service struct {
	products ProductRepository
	programs ProgramRepository
	trainers TrainerRepository
}

func NewService(products ProductRepository, programs ProgramRepository, trainers TrainerRepository) *Service {
	return &Service{products: products, programs: programs, trainers: trainers}
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// Products

func (s *Service) CreateProduct(ctx context.Context, req CreateProductRequest) (*domain.Product, error) {
	if req.Price < 0 || req.Discount < 0 || req.Stock < 0 {
		return nil, fmt.Errorf("%w: price, discount and stock must be non-negative", ErrValidation)
	}
	if req.Discount > req.Price {
		return nil, fmt.Errorf("%w: discount exceeds price", ErrValidation)
	}

	p := &domain.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Discount:    req.Discount,
		Stock:       req.Stock,
		Category:    req.Category,
		SKU:         req.SKU,
		ImageURLs:   req.ImageURLs,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return p, nil
}

func (s *Service) ListProducts(ctx context.Context, category, search string, skip, limit int) ([]domain.Product, error) {
	return s.products.List(ctx, category, search, skip, limit)
}

func (s *Service) UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*domain.Product, error) {
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("%w: price must be non-negative", ErrValidation)
		}
		fields["price"] = *req.Price
	}
	if req.Discount != nil {
		if *req.Discount < 0 {
			return nil, fmt.Errorf("%w: discount must be non-negative", ErrValidation)
		}
		fields["discount"] = *req.Discount
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, fmt.Errorf("%w: stock must be non-negative", ErrValidation)
		}
		fields["stock"] = *req.Stock
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.SKU != nil {
		fields["sku"] = *req.SKU
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if req.ImageURLs != nil {
		// Map-based updates bypass the gorm serializer, so marshal here.
		b, err := json.Marshal(*req.ImageURLs)
		if err != nil {
			return nil, err
		}
		fields["image_urls"] = string(b)
	}
	if len(fields) == 0 {
		return s.GetProduct(ctx, id)
	}

	p, err := s.products.Update(ctx, id, fields)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return p, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	return mapNotFound(s.products.Delete(ctx, id))
}

// Programs

func (s *Service) CreateProgram(ctx context.Context, req CreateProgramRequest) (*domain.Program, error) {
	if req.Price < 0 || req.HomeVisitSurcharge < 0 {
		return nil, fmt.Errorf("%w: price and surcharge must be non-negative", ErrValidation)
	}
	if !req.SupportsGym && !req.SupportsHomeVisit {
		return nil, fmt.Errorf("%w: program must support at least one attendance mode", ErrValidation)
	}
	if _, err := s.trainers.GetByID(ctx, req.TrainerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: trainer %s", ErrNotFound, req.TrainerID)
		}
		return nil, err
	}

	difficulty := domain.Difficulty(req.Difficulty)
	if req.Difficulty == "" {
		difficulty = domain.DifficultyBeginner
	}

	p := &domain.Program{
		ID:                 uuid.NewString(),
		Title:              req.Title,
		Description:        req.Description,
		Category:           req.Category,
		DurationWeeks:      req.DurationWeeks,
		Price:              req.Price,
		HomeVisitSurcharge: req.HomeVisitSurcharge,
		SupportsHomeVisit:  req.SupportsHomeVisit,
		SupportsGym:        req.SupportsGym,
		Difficulty:         difficulty,
		TrainerID:          req.TrainerID,
		SessionsPerWeek:    req.SessionsPerWeek,
		CreatedAt:          time.Now().UTC(),
		UpdatedAt:          time.Now().UTC(),
	}
	if err := s.programs.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) GetProgram(ctx context.Context, id string) (*domain.Program, error) {
	p, err := s.programs.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return p, nil
}

func (s *Service) ListPrograms(ctx context.Context, category string, skip, limit int) ([]domain.Program, error) {
	return s.programs.List(ctx, category, skip, limit)
}

func (s *Service) UpdateProgram(ctx context.Context, id string, req UpdateProgramRequest) (*domain.Program, error) {
	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.DurationWeeks != nil {
		fields["duration_weeks"] = *req.DurationWeeks
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("%w: price must be non-negative", ErrValidation)
		}
		fields["price"] = *req.Price
	}
	if req.HomeVisitSurcharge != nil {
		if *req.HomeVisitSurcharge < 0 {
			return nil, fmt.Errorf("%w: surcharge must be non-negative", ErrValidation)
		}
		fields["home_visit_surcharge"] = *req.HomeVisitSurcharge
	}
	if req.SupportsHomeVisit != nil {
		fields["supports_home_visit"] = *req.SupportsHomeVisit
	}
	if req.SupportsGym != nil {
		fields["supports_gym"] = *req.SupportsGym
	}
	if req.Difficulty != nil {
		fields["difficulty"] = *req.Difficulty
	}
	if req.TrainerID != nil {
		if _, err := s.trainers.GetByID(ctx, *req.TrainerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: trainer %s", ErrNotFound, *req.TrainerID)
			}
			return nil, err
		}
		fields["trainer_id"] = *req.TrainerID
	}
	if req.SessionsPerWeek != nil {
		fields["sessions_per_week"] = *req.SessionsPerWeek
	}
	if len(fields) == 0 {
		return s.GetProgram(ctx, id)
	}

	p, err := s.programs.Update(ctx, id, fields)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return p, nil
}

func (s *Service) DeleteProgram(ctx context.Context, id string) error {
	return mapNotFound(s.programs.Delete(ctx, id))
}

// Trainers

func (s *Service) CreateTrainer(ctx context.Context, req CreateTrainerRequest) (*domain.Trainer, error) {
	t := &domain.Trainer{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Specialization:  req.Specialization,
		ExperienceYears: req.ExperienceYears,
		Bio:             req.Bio,
		Certifications:  req.Certifications,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}
	if err := s.trainers.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) GetTrainer(ctx context.Context, id string) (*domain.Trainer, error) {
	t, err := s.trainers.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return t, nil
}

func (s *Service) ListTrainers(ctx context.Context, skip, limit int) ([]domain.Trainer, error) {
	return s.trainers.List(ctx, skip, limit)
}

func (s *Service) UpdateTrainer(ctx context.Context, id string, req UpdateTrainerRequest) (*domain.Trainer, error) {
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Specialization != nil {
		fields["specialization"] = *req.Specialization
	}
	if req.ExperienceYears != nil {
		fields["experience_years"] = *req.ExperienceYears
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.Certifications != nil {
		b, err := json.Marshal(*req.Certifications)
		if err != nil {
			return nil, err
		}
		fields["certifications"] = string(b)
	}
	if len(fields) == 0 {
		return s.GetTrainer(ctx, id)
	}

	t, err := s.trainers.Update(ctx, id, fields)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return t, nil
}

func (s *Service) DeleteTrainer(ctx context.Context, id string) error {
	return mapNotFound(s.trainers.Delete(ctx, id))
}
