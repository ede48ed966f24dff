package grpcutil

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhishek622/streetsmart/pkg/consistency"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ToStatus converts a controller error into a gRPC status error.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	code := codes.Internal
	switch {
	case errors.Is(err, consistency.ErrPartialSuccess):
		code = codes.DataLoss
	case errors.Is(err, consistency.ErrUnauthenticated):
		code = codes.Unauthenticated
	case errors.Is(err, consistency.ErrNotFound):
		code = codes.NotFound
	case errors.Is(err, consistency.ErrUnauthorized):
		code = codes.PermissionDenied
	case errors.Is(err, consistency.ErrConflict):
		code = codes.AlreadyExists
	case errors.Is(err, consistency.ErrInvalidState):
		code = codes.FailedPrecondition
	case errors.Is(err, consistency.ErrInvalidArgument):
		code = codes.InvalidArgument
	case errors.Is(err, context.DeadlineExceeded):
		code = codes.DeadlineExceeded
	case errors.Is(err, context.Canceled):
		code = codes.Canceled
	default:
		if st, ok := status.FromError(err); ok {
			return st.Err()
		}
	}
	return status.Error(code, err.Error())
}

// FromStatus converts a gRPC status error returned by a peer into the
// matching consistency sentinel, keeping the peer's message.
func FromStatus(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	var sentinel error
	switch st.Code() {
	case codes.NotFound:
		sentinel = consistency.ErrNotFound
	case codes.AlreadyExists, codes.Aborted:
		sentinel = consistency.ErrConflict
	case codes.Unauthenticated:
		sentinel = consistency.ErrUnauthenticated
	case codes.PermissionDenied:
		sentinel = consistency.ErrUnauthorized
	case codes.FailedPrecondition:
		sentinel = consistency.ErrInvalidState
	case codes.InvalidArgument:
		sentinel = consistency.ErrInvalidArgument
	case codes.DeadlineExceeded:
		sentinel = context.DeadlineExceeded
	default:
		return err
	}
	return fmt.Errorf("%w: %s", sentinel, st.Message())
}
