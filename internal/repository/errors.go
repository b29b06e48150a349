// Package repository persists reservations. Sentinel errors defined here let
// the service and handler layers distinguish failure modes without depending
// on the backing store's own error types.
package repository

import "errors"

// ErrNotFound is returned when no reservation matches the given code or id.
var ErrNotFound = errors.New("reservation not found")

// ErrCodeConflict is returned when code generation keeps colliding with
// existing rows even after retrying. Callers may safely retry the whole
// operation.
var ErrCodeConflict = errors.New("reservation code conflict")
