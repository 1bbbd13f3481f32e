package testimonial

type CreateTestimonialRequest struct {
	Rating      int    `json:"rating" binding:"required"`
	Comment     string `json:"comment" binding:"required"`
	ServiceType string `json:"service_type"`
}
