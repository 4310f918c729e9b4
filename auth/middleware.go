package auth

import (
	"chat-room/domain/chat"
	"chat-room/errors"
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

type contextKey string

const userIDKey contextKey = "user_id"

// ErrorWriter renders an authentication failure.
type ErrorWriter func(w http.ResponseWriter, err error)

// Middleware validates the caller token and injects its user id in the request context.
// Browsers cannot set headers on a websocket upgrade, so the token query parameter is accepted too.
func Middleware(tokens *TokenManager, fail ErrorWriter) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := tokenFromRequest(r)
			if raw == "" {
				fail(w, errors.ErrMissingToken)
				return
			}
			claims, err := tokens.ValidateToken(raw)
			if err != nil {
				fail(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), chat.UserID(claims.UserID))))
		})
	}
}

func WithUserID(ctx context.Context, userID chat.UserID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromContext(ctx context.Context) (chat.UserID, bool) {
	userID, ok := ctx.Value(userIDKey).(chat.UserID)
	return userID, ok && userID != ""
}

func tokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
		return ""
	}
	return r.URL.Query().Get("token")
}
