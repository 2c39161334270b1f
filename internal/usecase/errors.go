package usecase

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("operation not allowed for this actor")
	ErrValidation         = errors.New("validation failed")
	ErrStorage            = errors.New("media storage failed")
)
