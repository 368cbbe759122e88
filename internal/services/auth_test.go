package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conferencecompanion/internal/adapters/auth"
	"conferencecompanion/internal/domain"
)

func TestAuthService_Login(t *testing.T) {
	hasher := auth.NewBcryptHasher(4)
	hash, err := hasher.Hash("open-sesame")
	require.NoError(t, err)
	tokens := auth.NewJWTManager("test-secret")

	svc := NewAuthService(hasher, tokens, hash, time.Hour)

	t.Run("correct code issues a verifiable token", func(t *testing.T) {
		token, err := svc.Login(context.Background(), "open-sesame")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		subject, err := tokens.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "operator", subject)
	})

	t.Run("wrong code", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "wrong")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("no configured hash rejects everything", func(t *testing.T) {
		unconfigured := NewAuthService(hasher, tokens, "", time.Hour)
		_, err := unconfigured.Login(context.Background(), "open-sesame")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}
