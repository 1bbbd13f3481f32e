package booking

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrNotFound                = errors.New("booking not found")
	ErrForbidden               = errors.New("forbidden")
	ErrSlotTaken               = errors.New("slot already booked")
	ErrUnsupportedMode         = errors.New("attendance mode not supported by program")
	ErrMissingLocation         = errors.New("home visit requires a location with address and coordinates")
	ErrInvalidSignature        = errors.New("invalid payment signature")
	ErrAlreadyProcessed        = errors.New("payment already processed")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrUpstream                = errors.New("payment gateway unavailable")
)
