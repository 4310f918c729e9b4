package auth

import (
	"chat-room/errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const secret = "a_test_secret_long_enough_for_hs256"

func TestTokenManager_RoundTrip(t *testing.T) {
	req := require.New(t)
	tokens := NewTokenManager(secret)

	token, err := tokens.GenerateToken("alice", []string{"user"}, time.Hour)
	req.NoError(err)

	claims, err := tokens.ValidateToken(token)
	req.NoError(err)
	req.Equal("alice", claims.UserID)
	req.Equal([]string{"user"}, claims.Roles)
}

func TestTokenManager_Rejects(t *testing.T) {
	req := require.New(t)
	tokens := NewTokenManager(secret)

	expired, err := tokens.GenerateToken("alice", nil, -time.Minute)
	req.NoError(err)
	foreign, err := NewTokenManager("another_secret_entirely_different").GenerateToken("alice", nil, time.Hour)
	req.NoError(err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, &CustomClaims{UserID: "alice"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	req.NoError(err)

	for name, token := range map[string]string{
		"expired":        expired,
		"foreign secret": foreign,
		"alg none":       none,
		"garbage":        "not.a.token",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := tokens.ValidateToken(token)
			require.ErrorIs(t, err, errors.ErrInvalidToken)
		})
	}
}

func TestMiddleware(t *testing.T) {
	tokens := NewTokenManager(secret)
	token, err := tokens.GenerateToken("alice", nil, time.Hour)
	require.NoError(t, err)

	handler := Middleware(tokens, func(w http.ResponseWriter, err error) {
		w.WriteHeader(http.StatusUnauthorized)
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserIDFromContext(r.Context())
		require.True(t, ok)
		_, _ = w.Write([]byte(userID))
	}))

	tests := []struct {
		name   string
		target string
		header string
		status int
	}{
		{"bearer header", "/api", "Bearer " + token, http.StatusOK},
		{"query parameter", "/ws?token=" + token, "", http.StatusOK},
		{"missing token", "/api", "", http.StatusUnauthorized},
		{"wrong scheme", "/api", "Basic " + token, http.StatusUnauthorized},
		{"invalid token", "/api", "Bearer nope", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)
			req.Equal(tt.status, w.Code)
			if tt.status == http.StatusOK {
				req.Equal("alice", w.Body.String())
			}
		})
	}
}
