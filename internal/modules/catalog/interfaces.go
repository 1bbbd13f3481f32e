package catalog

import (
	"context"

	"fitsphere/internal/domain"
)

type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, category, search string, skip, limit int) ([]domain.Product, error)
	Update(ctx context.Context, id string, fields map[string]any) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type ProgramRepository interface {
	Create(ctx context.Context, p *domain.Program) error
	GetByID(ctx context.Context, id string) (*domain.Program, error)
	List(ctx context.Context, category string, skip, limit int) ([]domain.Program, error)
	Update(ctx context.Context, id string, fields map[string]any) (*domain.Program, error)
	Delete(ctx context.Context, id string) error
}

type TrainerRepository interface {
	Create(ctx context.Context, t *domain.Trainer) error
	GetByID(ctx context.Context, id string) (*domain.Trainer, error)
	List(ctx context.Context, skip, limit int) ([]domain.Trainer, error)
	Update(ctx context.Context, id string, fields map[string]any) (*domain.Trainer, error)
	Delete(ctx context.Context, id string) error
}
