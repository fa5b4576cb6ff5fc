package auth

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	httperrors "github.com/ringside-labs/boxing-platform/pkg/http/errors"
)

// RequireAdmin guards destructive endpoints with a bearer JWT. A nil manager
// means the guard is not configured and the handler is served as-is.
func RequireAdmin(mgr *Manager, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if mgr == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				httperrors.RespondUnauthorized(w, httperrors.ErrCodeUnauthorized, "Authorization required")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				httperrors.RespondUnauthorized(w, httperrors.ErrCodeInvalidToken, "Invalid authorization header")
				return
			}

			if _, err := mgr.ValidateToken(parts[1]); err != nil {
				logger.Warn().Err(err).Msg("admin token validation failed")
				httperrors.RespondUnauthorized(w, httperrors.ErrCodeInvalidToken, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
