package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned by the service when a region with the requested
// slug already exists. Handlers map this to HTTP 400.
var ErrConflict = errors.New("conflict")

// ErrValidation is returned when input is missing required fields or cannot
// be decoded. Handlers map this to HTTP 400.
var ErrValidation = errors.New("validation error")
