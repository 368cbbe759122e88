package domain

import (
	"context"
	"time"
)

// TokenIssuer issues a signed token for an authenticated operator.
type TokenIssuer interface {
	Issue(subject string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated subject.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}

// PasswordHasher hashes and compares operator access codes.
type PasswordHasher interface {
	Hash(code string) (string, error)
	Compare(hash, code string) error
}

// AuthService exchanges an operator access code for a bearer token.
type AuthService interface {
	Login(ctx context.Context, accessCode string) (token string, err error)
}
