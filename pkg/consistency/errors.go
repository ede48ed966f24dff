// Package consistency implements the relationship-consistency protocol shared
// by the coordinators: the error taxonomy and the ordered propagation of
// projection writes that follow a canonical write.
//
// There is no distributed transaction. Validation failures are reported before
// any mutation. Once the first mutating call succeeded, any later failure is a
// PartialSuccessError naming what completed, what failed and what was skipped,
// so a reconciliation job can repair the divergence. Nothing is rolled back and
// nothing is retried.
package consistency

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNotFound        = errors.New("resource not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrConflict        = errors.New("conflict")
	ErrInvalidState    = errors.New("invalid state")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrPartialSuccess  = errors.New("partial success")
)

// Kind names the resource a NotFoundError refers to.
type Kind string

const (
	KindUser     Kind = "user"
	KindShop     Kind = "shop"
	KindRating   Kind = "rating"
	KindFavorite Kind = "favorite"
	KindApproval Kind = "approval"
)

// NotFoundError reports a missing actor or target. It matches ErrNotFound.
type NotFoundError struct {
	Kind Kind
	ID   string
}

// NotFound returns a NotFoundError for the given resource.
func NotFound(kind Kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// IsNotFound reports whether err is a NotFoundError of the given kind.
func IsNotFound(err error, kind Kind) bool {
	var nf *NotFoundError
	return errors.As(err, &nf) && nf.Kind == kind
}

// PartialSuccessError reports that a multi-step operation stopped after at
// least one mutation committed. It matches ErrPartialSuccess and the cause.
type PartialSuccessError struct {
	Operation  string
	ResourceID string
	Completed  []string
	Failed     string
	Skipped    []string
	Err        error
}

func (e *PartialSuccessError) Error() string {
	return fmt.Sprintf("partial success: %s %s: step %s failed after [%s]: %v",
		e.Operation, e.ResourceID, e.Failed, strings.Join(e.Completed, ", "), e.Err)
}

func (e *PartialSuccessError) Unwrap() []error {
	return []error{ErrPartialSuccess, e.Err}
}
