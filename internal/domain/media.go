package domain

import "time"

type VideoCategory string

const (
	VideoYoga       VideoCategory = "yoga"
	VideoCardio     VideoCategory = "cardio"
	VideoStrength   VideoCategory = "strength"
	VideoPilates    VideoCategory = "pilates"
	VideoDance      VideoCategory = "dance"
	VideoMeditation VideoCategory = "meditation"
)

type ImageType string

const (
	ImageBanner  ImageType = "banner"
	ImageTrainer ImageType = "trainer"
	ImageGallery ImageType = "gallery"
	ImageProgram ImageType = "program"
)

type Video struct {
	ID           string        `json:"id" gorm:"primaryKey"`
	Title        string        `json:"title"`
	Category     VideoCategory `json:"category"`
	Difficulty   Difficulty    `json:"difficulty"`
	Duration     int           `json:"duration"` // seconds
	Description  string        `json:"description"`
	VideoURL     string        `json:"video_url"`
	ThumbnailURL string        `json:"thumbnail_url,omitempty"`
	IsPublic     bool          `json:"is_public"`
	ViewCount    int           `json:"view_count"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type Image struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title"`
	ImageType   ImageType `json:"image_type"`
	ImageURL    string    `json:"image_url"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
