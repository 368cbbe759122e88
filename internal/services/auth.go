package services

import (
	"context"
	"time"

	"conferencecompanion/internal/domain"
)

// operatorSubject is the token subject for the single operator identity.
const operatorSubject = "operator"

type authService struct {
	hasher         domain.PasswordHasher
	tokens         domain.TokenIssuer
	accessCodeHash string
	tokenExpiry    time.Duration
}

// NewAuthService creates an AuthService that checks the operator access code
// against its stored bcrypt hash and issues a bearer token on success.
func NewAuthService(hasher domain.PasswordHasher, tokens domain.TokenIssuer, accessCodeHash string, tokenExpiry time.Duration) domain.AuthService {
	return &authService{
		hasher:         hasher,
		tokens:         tokens,
		accessCodeHash: accessCodeHash,
		tokenExpiry:    tokenExpiry,
	}
}

func (s *authService) Login(ctx context.Context, accessCode string) (string, error) {
	if s.accessCodeHash == "" {
		return "", domain.ErrUnauthorized
	}
	if err := s.hasher.Compare(s.accessCodeHash, accessCode); err != nil {
		return "", domain.ErrUnauthorized
	}
	token, err := s.tokens.Issue(operatorSubject, s.tokenExpiry)
	if err != nil {
		return "", err
	}
	return token, nil
}
