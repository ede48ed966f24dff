package repository

import "errors"

var (
	// ErrNotFound is returned when a requested record is not found.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when the user already has the shop as favorite.
	ErrConflict = errors.New("conflict")
)
