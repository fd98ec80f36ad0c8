package auth

import (
	"net/http"
	"strings"

	"github.com/georgemunganga/inventory-backend/internal/platform/apperr"
	"github.com/georgemunganga/inventory-backend/internal/platform/httpx"
	"github.com/georgemunganga/inventory-backend/internal/platform/logging"
)

// Middleware rejects requests without a valid bearer token and attaches the
// caller's Principal to the request context.
func Middleware(tokens *Tokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				httpx.Error(w, r, apperr.Unauthorized("authentication credentials were not provided"))
				return
			}
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				httpx.Error(w, r, apperr.Unauthorized("invalid authorization header format"))
				return
			}
			p, err := tokens.Parse(strings.TrimSpace(parts[1]))
			if err != nil {
				logging.FromContext(r.Context()).WithError(err).Debug("token rejected")
				httpx.Error(w, r, apperr.Unauthorized("invalid or expired token"))
				return
			}
			ctx := WithPrincipal(r.Context(), p)
			ctx = logging.WithLogger(ctx, logging.FromContext(ctx).WithField("user", p.Username))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Require gates a route group on perm, checked before any handler runs.
func Require(perm Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := PrincipalFrom(r.Context())
			if p == nil {
				httpx.Error(w, r, apperr.Unauthorized("authentication credentials were not provided"))
				return
			}
			if !perm(p) {
				httpx.Error(w, r, apperr.Forbidden("you do not have permission to perform this action"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
