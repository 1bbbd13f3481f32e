package auth

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAdmin           = errors.New("admin credentials required")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserDisabled       = errors.New("account disabled")
)
