package http

import (
	"context"
	"net/http"
	"strings"

	"dawati-backend/internal/security"
)

type contextKey string

const (
	contextKeyUserID  contextKey = "user-id"
	contextKeyIsAdmin contextKey = "is-admin"
)

// AuthMiddleware validates the Bearer token and injects the caller's
// identity into the request context.
type AuthMiddleware struct {
	tokenManager security.TokenManager
}

func NewAuthMiddleware(tm security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokenManager: tm}
}

func (m *AuthMiddleware) Require(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
			return
		}

		claims, err := m.tokenManager.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid token"})
			return
		}
		if claims.Type != security.TokenTypeAccess {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "wrong token type"})
			return
		}

		ctx := context.WithValue(r.Context(), contextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, contextKeyIsAdmin, claims.IsAdmin)
		next(w, r.WithContext(ctx))
	}
}

// RequireAdmin wraps Require and additionally rejects non-admin callers.
func (m *AuthMiddleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return m.Require(func(w http.ResponseWriter, r *http.Request) {
		if !isAdminFromContext(r.Context()) {
			writeJSON(w, http.StatusForbidden, errorResponse{Error: "admin access required"})
			return
		}
		next(w, r)
	})
}

func userIDFromContext(ctx context.Context) int32 {
	id, _ := ctx.Value(contextKeyUserID).(int32)
	return id
}

func isAdminFromContext(ctx context.Context) bool {
	isAdmin, _ := ctx.Value(contextKeyIsAdmin).(bool)
	return isAdmin
}
