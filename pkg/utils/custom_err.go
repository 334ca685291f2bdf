package utils

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidDate           = errors.New("invalid date")
	ErrUserNotFound          = errors.New("user not found")
	ErrPlanNotFound          = errors.New("plan not found")
	ErrDatabaseError         = errors.New("database error")
)
