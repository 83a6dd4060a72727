package service

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingUser        = errors.New("missing authenticated user")
)

// ValidationError 入参缺失/为空，不会产生任何副作用
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string { return e.Field + " is required" }
