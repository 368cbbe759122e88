package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"conferencecompanion/internal/delivery/http/helpers"
	"conferencecompanion/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	token    string
	err      error
	lastCode string
}

func (f *fakeAuthService) Login(_ context.Context, accessCode string) (string, error) {
	f.lastCode = accessCode
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		service    *fakeAuthService
		wantStatus int
		wantCode   string
		wantToken  string
	}{
		{
			name:       "valid access code",
			body:       `{"access_code":"open-sesame"}`,
			service:    &fakeAuthService{token: "jwt-token"},
			wantStatus: http.StatusOK,
			wantToken:  "jwt-token",
		},
		{
			name:       "wrong access code",
			body:       `{"access_code":"wrong"}`,
			service:    &fakeAuthService{err: domain.ErrUnauthorized},
			wantStatus: http.StatusUnauthorized,
			wantCode:   helpers.ErrCodeUnauthorized,
		},
		{
			name:       "missing access code",
			body:       `{}`,
			service:    &fakeAuthService{token: "jwt-token"},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "unknown field rejected",
			body:       `{"access_code":"x","extra":true}`,
			service:    &fakeAuthService{token: "jwt-token"},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewAuthController(testLogger, tt.service)
			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			ctrl.Login(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			var envelope struct {
				Data  *LoginResponse    `json:"data"`
				Error *helpers.APIError `json:"error"`
			}
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantToken != "" {
				require.NotNil(t, envelope.Data)
				assert.Equal(t, tt.wantToken, envelope.Data.Token)
				assert.Equal(t, "Bearer", envelope.Data.TokenType)
			}
			if tt.wantCode != "" {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantCode, envelope.Error.Code)
			}
		})
	}
}
