package grpcutil

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/abhishek622/streetsmart/pkg/consistency"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"nil", nil, codes.OK},
		{"unauthenticated", consistency.ErrUnauthenticated, codes.Unauthenticated},
		{"not found", consistency.NotFound(consistency.KindUser, "u1"), codes.NotFound},
		{"unauthorized", fmt.Errorf("wrap: %w", consistency.ErrUnauthorized), codes.PermissionDenied},
		{"conflict", consistency.ErrConflict, codes.AlreadyExists},
		{"invalid state", consistency.ErrInvalidState, codes.FailedPrecondition},
		{"invalid argument", consistency.ErrInvalidArgument, codes.InvalidArgument},
		{"deadline", context.DeadlineExceeded, codes.DeadlineExceeded},
		{"partial success wins over cause", &consistency.PartialSuccessError{Err: consistency.ErrConflict}, codes.DataLoss},
		{"status passthrough", status.Error(codes.Unavailable, "down"), codes.Unavailable},
		{"unknown", errors.New("boom"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, status.Code(ToStatus(tt.err)))
		})
	}
}

func TestFromStatus(t *testing.T) {
	tests := []struct {
		code codes.Code
		want error
	}{
		{codes.NotFound, consistency.ErrNotFound},
		{codes.AlreadyExists, consistency.ErrConflict},
		{codes.Aborted, consistency.ErrConflict},
		{codes.Unauthenticated, consistency.ErrUnauthenticated},
		{codes.PermissionDenied, consistency.ErrUnauthorized},
		{codes.FailedPrecondition, consistency.ErrInvalidState},
		{codes.InvalidArgument, consistency.ErrInvalidArgument},
		{codes.DeadlineExceeded, context.DeadlineExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.ErrorIs(t, FromStatus(status.Error(tt.code, "x")), tt.want)
		})
	}

	unavailable := status.Error(codes.Unavailable, "down")
	assert.Equal(t, unavailable, FromStatus(unavailable))
	assert.NoError(t, FromStatus(nil))
}
