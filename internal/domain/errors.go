package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource (a plan, or a visa record for a destination) does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing field, unknown destination, travel date in the past).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when an operation is valid but the resource is not in
// a state that allows it, e.g. exporting a document that has not been generated yet.
// Handlers should map this to HTTP 409 Conflict.
var ErrConflict = errors.New("conflict")
