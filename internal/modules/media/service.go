package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitsphere/internal/domain"
)

type Service struct {
	videos  VideoRepository
	images  ImageRepository
	storage ObjectStorage
}

func NewService(videos VideoRepository, images ImageRepository, storage ObjectStorage) *Service {
	return &Service{videos: videos, images: images, storage: storage}
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// objectKey builds the storage path. A uuid prefix keeps filenames unique
// across uploads with the same original name.
func objectKey(folder, filename string) string {
	base := strings.ReplaceAll(path.Base(filename), " ", "_")
	return fmt.Sprintf("%s/%s_%s", folder, uuid.NewString(), base)
}

// storagePathFromURL recovers the object key from a CDN URL for deletion.
func storagePathFromURL(cdnURL string) string {
	parts := strings.SplitN(cdnURL, "/", 4)
	if len(parts) < 4 {
		return ""
	}
	return parts[3]
}

type UploadVideoInput struct {
	Title       string
	Category    string
	Difficulty  string
	Duration    int
	Description string
	IsPublic    bool
	Filename    string
	File        io.Reader
}

func (s *Service) UploadVideo(ctx context.Context, in UploadVideoInput) (*domain.Video, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if in.File == nil {
		return nil, fmt.Errorf("%w: file is required", ErrValidation)
	}

	url, err := s.storage.Upload(ctx, objectKey("videos", in.Filename), in.File)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpload, err)
	}

	v := &domain.Video{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Category:    domain.VideoCategory(in.Category),
		Difficulty:  domain.Difficulty(in.Difficulty),
		Duration:    in.Duration,
		Description: in.Description,
		VideoURL:    url,
		IsPublic:    in.IsPublic,
	}
	if err := s.videos.Create(ctx, v); err != nil {
		// The object is already in storage; best-effort cleanup.
		if derr := s.storage.Delete(ctx, storagePathFromURL(url)); derr != nil {
			log.Printf("media: orphan cleanup failed for %s: %v", url, derr)
		}
		return nil, err
	}
	return v, nil
}

func (s *Service) GetVideo(ctx context.Context, id string) (*domain.Video, error) {
	v, err := s.videos.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return v, nil
}

func (s *Service) ListVideos(ctx context.Context, category, difficulty, search string, skip, limit int) ([]domain.Video, error) {
	return s.videos.List(ctx, category, difficulty, search, skip, limit)
}

func (s *Service) UpdateVideo(ctx context.Context, id string, req UpdateVideoRequest) (*domain.Video, error) {
	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Difficulty != nil {
		fields["difficulty"] = *req.Difficulty
	}
	if req.Duration != nil {
		fields["duration"] = *req.Duration
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.IsPublic != nil {
		fields["is_public"] = *req.IsPublic
	}
	if len(fields) == 0 {
		return s.GetVideo(ctx, id)
	}

	v, err := s.videos.Update(ctx, id, fields)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return v, nil
}

// DeleteVideo removes the record and then the CDN object. Storage cleanup is
// best-effort; a stale object never blocks the delete.
func (s *Service) DeleteVideo(ctx context.Context, id string) error {
	v, err := s.videos.GetByID(ctx, id)
	if err != nil {
		return mapNotFound(err)
	}
	if err := s.videos.Delete(ctx, id); err != nil {
		return mapNotFound(err)
	}
	if key := storagePathFromURL(v.VideoURL); key != "" {
		if err := s.storage.Delete(ctx, key); err != nil {
			log.Printf("media: storage delete failed for video %s: %v", id, err)
		}
	}
	return nil
}

// RecordView bumps the view counter; used when a playback session starts.
func (s *Service) RecordView(ctx context.Context, id string) error {
	return s.videos.IncrementViews(ctx, id)
}

type UploadImageInput struct {
	Title       string
	ImageType   string
	Description string
	Filename    string
	File        io.Reader
}

func (s *Service) UploadImage(ctx context.Context, in UploadImageInput) (*domain.Image, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if in.File == nil {
		return nil, fmt.Errorf("%w: file is required", ErrValidation)
	}

	url, err := s.storage.Upload(ctx, objectKey("images", in.Filename), in.File)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpload, err)
	}

	img := &domain.Image{
		ID:          uuid.NewString(),
		Title:       in.Title,
		ImageType:   domain.ImageType(in.ImageType),
		ImageURL:    url,
		Description: in.Description,
	}
	if err := s.images.Create(ctx, img); err != nil {
		if derr := s.storage.Delete(ctx, storagePathFromURL(url)); derr != nil {
			log.Printf("media: orphan cleanup failed for %s: %v", url, derr)
		}
		return nil, err
	}
	return img, nil
}

func (s *Service) ListImages(ctx context.Context, imageType string, skip, limit int) ([]domain.Image, error) {
	return s.images.List(ctx, imageType, skip, limit)
}

func (s *Service) DeleteImage(ctx context.Context, id string) error {
	img, err := s.images.GetByID(ctx, id)
	if err != nil {
		return mapNotFound(err)
	}
	if err := s.images.Delete(ctx, id); err != nil {
		return mapNotFound(err)
	}
	if key := storagePathFromURL(img.ImageURL); key != "" {
		if err := s.storage.Delete(ctx, key); err != nil {
			log.Printf("media: storage delete failed for image %s: %v", id, err)
		}
	}
	return nil
}
