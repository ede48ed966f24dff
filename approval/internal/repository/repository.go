package repository

import "errors"

var (
	// ErrNotFound is returned when a requested record is not found.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when the shop already has an approval.
	ErrConflict = errors.New("conflict")
	// ErrNotPending is returned when deciding an approval that left PENDING.
	ErrNotPending = errors.New("approval is not pending")
)
