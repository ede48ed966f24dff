package repository

import "errors"

var (
	// ErrNotFound is returned when a requested record is not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidScore is returned when a rating score is outside the allowed range.
	ErrInvalidScore = errors.New("invalid score")
)
