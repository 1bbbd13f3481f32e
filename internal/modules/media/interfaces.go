package media

import (
	"context"
	"io"

	"fitsphere/internal/domain"
)

type VideoRepository interface {
	Create(ctx context.Context, v *domain.Video) error
	GetByID(ctx context.Context, id string) (*domain.Video, error)
	List(ctx context.Context, category, difficulty, search string, skip, limit int) ([]domain.Video, error)
	Update(ctx context.Context, id string, fields map[string]any) (*domain.Video, error)
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
}

type ImageRepository interface {
	Create(ctx context.Context, img *domain.Image) error
	GetByID(ctx context.Context, id string) (*domain.Image, error)
	List(ctx context.Context, imageType string, skip, limit int) ([]domain.Image, error)
	Delete(ctx context.Context, id string) error
}

// ObjectStorage is the CDN-backed file store.
type ObjectStorage interface {
	Upload(ctx context.Context, destPath string, body io.Reader) (string, error)
	Delete(ctx context.Context, filePath string) error
}
