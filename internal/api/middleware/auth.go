// Package middleware provides the HTTP middleware composed around the
// resource handlers.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hmekki/casting-api/internal/api/shared"
	"github.com/hmekki/casting-api/internal/service/auth"
)

// AuthMiddleware gates handlers behind bearer-token verification and a
// required permission.
type AuthMiddleware struct {
	verifier auth.TokenVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware creates an AuthMiddleware using the given verifier.
func NewAuthMiddleware(verifier auth.TokenVerifier, logger *slog.Logger) *AuthMiddleware {
	if logger == nil {
		logger = slog.Default()
	}

	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger.With(slog.String("component", "auth_middleware")),
	}
}

// RequirePermission returns a middleware that authenticates the request
// and authorizes it against the given permission before the wrapped
// handler executes. The verified claims are stored in the request
// context for the handler.
func (m *AuthMiddleware) RequirePermission(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := auth.BearerToken(r)
			if err != nil {
				m.respondAuthError(w, r, err)
				return
			}

			claims, err := m.verifier.VerifyToken(r.Context(), token)
			if err != nil {
				m.respondAuthError(w, r, err)
				return
			}

			if err := auth.CheckPermission(permission, claims); err != nil {
				m.respondAuthError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), shared.ClaimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// respondAuthError writes the categorized auth failure. Anything that
// is not an *auth.Error is an unexpected verifier failure and maps to
// a 500.
func (m *AuthMiddleware) respondAuthError(w http.ResponseWriter, r *http.Request, err error) {
	var authErr *auth.Error
	if !errors.As(err, &authErr) {
		m.logger.Error("unexpected authentication failure", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
		return
	}

	m.logger.Warn("request rejected",
		slog.String("code", authErr.Code),
		slog.Int("status", authErr.Status),
		slog.String("path", r.URL.Path))
	shared.RespondWithError(w, r, authErr.Status, authErr.Description)
}

// ClaimsFromRequest extracts the verified claims placed in the request
// context by RequirePermission.
func ClaimsFromRequest(r *http.Request) (auth.Claims, bool) {
	claims, ok := r.Context().Value(shared.ClaimsContextKey).(auth.Claims)
	return claims, ok
}
