// Package auth carries bearer credentials between services.
//
// Coordinators never authenticate on behalf of a caller: they forward the
// Credential they received. Stores verify it with a Verifier.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"google.golang.org/grpc/metadata"
)

const (
	metadataKey  = "authorization"
	bearerPrefix = "Bearer "
)

var (
	// ErrMissingCredential is returned when a request carries no bearer token.
	ErrMissingCredential = errors.New("missing credential")
	// ErrInvalidCredential is returned when a bearer token fails verification.
	ErrInvalidCredential = errors.New("invalid credential")
)

// Credential is a bearer token without its scheme prefix.
type Credential string

// Parse builds a Credential from an Authorization header value.
func Parse(header string) Credential {
	header = strings.TrimSpace(header)
	if len(header) >= len(bearerPrefix) && strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		header = header[len(bearerPrefix):]
	}
	return Credential(strings.TrimSpace(header))
}

// Empty reports whether no token is present.
func (c Credential) Empty() bool {
	return c == ""
}

// Header returns the Authorization header value for the credential.
func (c Credential) Header() string {
	return bearerPrefix + string(c)
}

// FromIncomingContext extracts the credential of an inbound gRPC call.
func FromIncomingContext(ctx context.Context) Credential {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	vals := md.Get(metadataKey)
	if len(vals) == 0 {
		return ""
	}
	return Parse(vals[0])
}

// FromRequest extracts the credential of an inbound HTTP request.
func FromRequest(r *http.Request) Credential {
	return Parse(r.Header.Get("Authorization"))
}

// NewOutgoingContext attaches the credential to an outbound gRPC call.
// An empty credential leaves the context untouched.
func NewOutgoingContext(ctx context.Context, c Credential) context.Context {
	if c.Empty() {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, metadataKey, c.Header())
}
