package grpc

import (
	"context"
	"time"

	"github.com/abhishek622/streetsmart/api"
	"github.com/abhishek622/streetsmart/pkg/auth"
	usermodel "github.com/abhishek622/streetsmart/user/pkg/model"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Handler defines a gRPC token API handler.
type Handler struct {
	secret   auth.SecretProvider
	verifier *auth.Verifier
	ttl      time.Duration
}

// New creates a new token handler. Tokens expire after ttl, or never when ttl
// is zero.
func New(secret auth.SecretProvider, ttl time.Duration) *Handler {
	return &Handler{secret: secret, verifier: auth.NewVerifier(secret), ttl: ttl}
}

// GetToken issues a token whose subject is the user id passed as username.
func (h *Handler) GetToken(ctx context.Context, req *api.GetTokenRequest) (*api.GetTokenResponse, error) {
	if req == nil || !validCredentials(req.Username, req.Password) {
		return nil, status.Errorf(codes.Unauthenticated, "invalid credentials")
	}
	role := usermodel.Role(req.Role)
	if role == "" {
		role = usermodel.RoleCustomer
	}
	if !role.Valid() {
		return nil, status.Errorf(codes.InvalidArgument, "unknown role %q", req.Role)
	}
	token, err := auth.Issue(h.secret, req.Username, string(role), h.ttl)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "%v", err)
	}
	return &api.GetTokenResponse{Token: token}, nil
}

func validCredentials(username string, password string) bool {
	return username != "" && password != ""
}

// ValidateToken returns the subject and role of a valid token.
func (h *Handler) ValidateToken(ctx context.Context, req *api.ValidateTokenRequest) (*api.ValidateTokenResponse, error) {
	if req == nil {
		return nil, status.Errorf(codes.Unauthenticated, "invalid token")
	}
	claims, err := h.verifier.Verify(auth.Parse(req.Token))
	if err != nil {
		return nil, status.Errorf(codes.Unauthenticated, "invalid token")
	}
	return &api.ValidateTokenResponse{Username: claims.Subject, Role: claims.Role}, nil
}
