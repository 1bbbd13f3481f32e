package media

type UpdateVideoRequest struct {
	Title       *string `json:"title"`
	Category    *string `json:"category"`
	Difficulty  *string `json:"difficulty"`
	Duration    *int    `json:"duration"`
	Description *string `json:"description"`
	IsPublic    *bool   `json:"is_public"`
}
