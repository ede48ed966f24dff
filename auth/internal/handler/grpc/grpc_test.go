package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/abhishek622/streetsmart/api"
	"github.com/abhishek622/streetsmart/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func secret() []byte { return []byte("test-secret") }

func TestGetToken(t *testing.T) {
	h := New(secret, time.Hour)
	ctx := context.Background()

	res, err := h.GetToken(ctx, &api.GetTokenRequest{Username: "u1", Password: "pw", Role: "ADMIN"})
	require.NoError(t, err)

	claims, err := auth.NewVerifier(secret).Verify(auth.Credential(res.Token))
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "ADMIN", claims.Role)

	v, err := h.ValidateToken(ctx, &api.ValidateTokenRequest{Token: "Bearer " + res.Token})
	require.NoError(t, err)
	assert.Equal(t, "u1", v.Username)
}

func TestGetTokenErrors(t *testing.T) {
	h := New(secret, 0)
	ctx := context.Background()

	_, err := h.GetToken(ctx, &api.GetTokenRequest{Username: "u1"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	_, err = h.GetToken(ctx, &api.GetTokenRequest{Username: "u1", Password: "pw", Role: "ROOT"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	res, err := h.GetToken(ctx, &api.GetTokenRequest{Username: "u1", Password: "pw"})
	require.NoError(t, err)
	v, err := h.ValidateToken(ctx, &api.ValidateTokenRequest{Token: res.Token})
	require.NoError(t, err)
	assert.Equal(t, "CUSTOMER", v.Role)

	_, err = New(func() []byte { return []byte("other") }, 0).ValidateToken(ctx, &api.ValidateTokenRequest{Token: res.Token})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}
