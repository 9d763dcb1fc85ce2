package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"signet/internal/auth"
	"signet/internal/httputil"
)

// AuthOptions selects which paths skip or relax authentication.
type AuthOptions struct {
	// PublicPaths are served without looking at credentials.
	PublicPaths []string

	// OptionalPrefixes accept anonymous requests. A presented token must
	// still be valid.
	OptionalPrefixes []string
}

// AuthMiddleware verifies the session token from the Authorization header,
// falling back to the "token" cookie, and stores the session in the request
// context.
func AuthMiddleware(verifier auth.JWTVerifier, opts AuthOptions, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if slices.Contains(opts.PublicPaths, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			token := tokenFromRequest(r)
			if token == "" {
				if hasPrefix(r.URL.Path, opts.OptionalPrefixes) {
					next.ServeHTTP(w, r)
					return
				}
				httputil.RespondError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				logger.Debug("authentication failed",
					"path", r.URL.Path,
					"request_id", httputil.GetRequestID(r.Context()),
					"error", err,
				)
				httputil.RespondError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, httputil.WithSession(r, claims.Session()))
		})
	}
}

func tokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return ""
		}
		return strings.TrimSpace(token)
	}
	if cookie, err := r.Cookie("token"); err == nil {
		return strings.TrimSpace(cookie.Value)
	}
	return ""
}

func hasPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
