package chi

import (
	"net/http"
	"strings"

	"github.com/kailas-cloud/promptrec/internal/domain"
)

// exemptPaths are routes that bypass authentication (health, metrics).
var exemptPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

// IdentityMiddleware resolves the caller identity from a Bearer token using
// the configured token-to-principal map. Requests without an Authorization
// header proceed as the anonymous identity; a present but unknown token is
// rejected. With no principals configured, every request is anonymous.
func IdentityMiddleware(principals map[string]string) func(http.Handler) http.Handler {
	known := make(map[string]string, len(principals))
	for token, principal := range principals {
		if token != "" && principal != "" {
			known[token] = principal
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := exemptPaths[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" || len(known) == 0 {
				next.ServeHTTP(w, r.WithContext(
					domain.ContextWithUser(r.Context(), domain.AnonymousUser)))
				return
			}

			const bearerPrefix = "Bearer "
			if !strings.HasPrefix(auth, bearerPrefix) {
				writeError(w, http.StatusUnauthorized,
					codeUnauthorized, "authorization header must use Bearer scheme")
				return
			}

			principal, ok := known[auth[len(bearerPrefix):]]
			if !ok {
				writeError(w, http.StatusUnauthorized, codeUnauthorized, "invalid api key")
				return
			}

			next.ServeHTTP(w, r.WithContext(domain.ContextWithUser(r.Context(), principal)))
		})
	}
}
