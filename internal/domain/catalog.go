package domain

import "time"

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

type Product struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Discount    float64   `json:"discount"`
	Stock       int       `json:"stock"`
	Category    string    `json:"category"`
	SKU         string    `json:"sku"`
	ImageURLs   []string  `json:"image_urls" gorm:"serializer:json"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Program struct {
	ID                 string     `json:"id" gorm:"primaryKey"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	Category           string     `json:"category"`
	DurationWeeks      int        `json:"duration_weeks"`
	Price              float64    `json:"price"`
	HomeVisitSurcharge float64    `json:"home_visit_surcharge"`
	SupportsHomeVisit  bool       `json:"supports_home_visit"`
	SupportsGym        bool       `json:"supports_gym_attendance"`
	Difficulty         Difficulty `json:"difficulty"`
	TrainerID          string     `json:"trainer_id"`
	SessionsPerWeek    int        `json:"sessions_per_week"`
	EnrolledCount      int        `json:"enrolled_count"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type Trainer struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Specialization  string    `json:"specialization"`
	ExperienceYears int       `json:"experience_years"`
	Bio             string    `json:"bio"`
	Certifications  []string  `json:"certifications" gorm:"serializer:json"`
	TotalSessions   int       `json:"total_sessions"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
