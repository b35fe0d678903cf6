package service

import "errors"

// Shared sentinel errors. Handlers translate these to HTTP statuses:
// ErrNotFound -> 404, ErrForbidden -> 403, ErrInvalidState -> 409,
// ErrValidation -> 400.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrForbidden    = errors.New("insufficient permissions")
	ErrInvalidState = errors.New("invalid state transition")
	ErrValidation   = errors.New("validation failed")
)
