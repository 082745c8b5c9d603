package auth

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/mcdev12/gridiron/internal/httputil"
)

// Middleware guards HTTP handlers with bearer token authentication.
type Middleware struct {
	tokens *TokenIssuer
}

// NewMiddleware creates an auth middleware around a token issuer.
func NewMiddleware(tokens *TokenIssuer) *Middleware {
	return &Middleware{tokens: tokens}
}

// RequireAuth rejects requests without a valid bearer token and stores
// the authenticated user ID in the request context.
func (m *Middleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := m.userIDFromHeader(r)
		if err != nil {
			httputil.Error(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next(w, r.WithContext(WithUserID(r.Context(), userID)))
	}
}

func (m *Middleware) userIDFromHeader(r *http.Request) (uuid.UUID, error) {
	header := r.Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return uuid.Nil, ErrInvalidToken
	}
	return m.tokens.Parse(parts[1])
}
