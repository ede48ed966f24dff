package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SecretProvider returns the HMAC key used to sign and verify tokens.
type SecretProvider func() []byte

// Claims are the token claims shared by all services.
type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Issue signs a token for the given subject.
func Issue(secret SecretProvider, subject, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  subject,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// Verifier validates bearer tokens.
type Verifier struct {
	secret SecretProvider
}

// NewVerifier creates a new token verifier.
func NewVerifier(secret SecretProvider) *Verifier {
	return &Verifier{secret}
}

// Verify parses the credential and returns its claims.
func (v *Verifier) Verify(c Credential) (*Claims, error) {
	if c.Empty() {
		return nil, ErrMissingCredential
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(string(c), claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret(), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}
	return claims, nil
}
