package repository

import "errors"

var (
	// ErrNotFound is returned when a requested record is not found.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned on a duplicate email or a stale projection version.
	ErrConflict = errors.New("conflict")
)
