package utils

import "errors"

var (
	ErrTripNotFound       = errors.New("trip not found")
	ErrGenerationFailed   = errors.New("itinerary generation failed")
	ErrDatabaseError      = errors.New("database error")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
