package order

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("order not found")
	ErrForbidden        = errors.New("forbidden")
	ErrProductNotFound  = errors.New("product not found")
	ErrOutOfStock       = errors.New("insufficient stock")
	ErrInvalidSignature = errors.New("invalid payment signature")
	ErrUpstream         = errors.New("payment gateway unavailable")
)
