package catalog

type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"required"`
	Discount    float64  `json:"discount"`
	Stock       int      `json:"stock"`
	Category    string   `json:"category" binding:"required"`
	SKU         string   `json:"sku"`
	ImageURLs   []string `json:"image_urls"`
}

// Update requests use pointers so absent fields are left untouched.
type UpdateProductRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Discount    *float64  `json:"discount"`
	Stock       *int      `json:"stock"`
	Category    *string   `json:"category"`
	SKU         *string   `json:"sku"`
	ImageURLs   *[]string `json:"image_urls"`
	IsActive    *bool     `json:"is_active"`
}

type CreateProgramRequest struct {
	Title              string  `json:"title" binding:"required"`
	Description        string  `json:"description"`
	Category           string  `json:"category" binding:"required"`
	DurationWeeks      int     `json:"duration_weeks"`
	Price              float64 `json:"price" binding:"required"`
	HomeVisitSurcharge float64 `json:"home_visit_surcharge"`
	SupportsHomeVisit  bool    `json:"supports_home_visit"`
	SupportsGym        bool    `json:"supports_gym_attendance"`
	Difficulty         string  `json:"difficulty"`
	TrainerID          string  `json:"trainer_id" binding:"required"`
	SessionsPerWeek    int     `json:"sessions_per_week"`
}

type UpdateProgramRequest struct {
	Title              *string  `json:"title"`
	Description        *string  `json:"description"`
	Category           *string  `json:"category"`
	DurationWeeks      *int     `json:"duration_weeks"`
	Price              *float64 `json:"price"`
	HomeVisitSurcharge *float64 `json:"home_visit_surcharge"`
	SupportsHomeVisit  *bool    `json:"supports_home_visit"`
	SupportsGym        *bool    `json:"supports_gym_attendance"`
	Difficulty         *string  `json:"difficulty"`
	TrainerID          *string  `json:"trainer_id"`
	SessionsPerWeek    *int     `json:"sessions_per_week"`
}

type CreateTrainerRequest struct {
	Name            string   `json:"name" binding:"required"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Specialization  string   `json:"specialization"`
	ExperienceYears int      `json:"experience_years"`
	Bio             string   `json:"bio"`
	Certifications  []string `json:"certifications"`
}

type UpdateTrainerRequest struct {
	Name            *string   `json:"name"`
	Email           *string   `json:"email"`
	Phone           *string   `json:"phone"`
	Specialization  *string   `json:"specialization"`
	ExperienceYears *int      `json:"experience_years"`
	Bio             *string   `json:"bio"`
	Certifications  *[]string `json:"certifications"`
}
