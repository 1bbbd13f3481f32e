package testimonial

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("testimonial not found")
)
