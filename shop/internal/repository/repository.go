package repository

import "errors"

var (
	// ErrNotFound is returned when a requested record is not found.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a projection version is stale.
	ErrConflict = errors.New("conflict")
)
