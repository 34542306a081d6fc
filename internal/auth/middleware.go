package auth

import (
	"context"
	"net/http"
	"strings"

	"catalog-service/internal/httpx"
)

type ctxPrincipalKey struct{}

// Middleware resolves the Bearer access token into a principal id on the
// request context. Handlers downstream never see credentials.
func Middleware(issuer *TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				httpx.WriteError(w, http.StatusUnauthorized, "missing Authorization header")
				return
			}
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				httpx.WriteError(w, http.StatusUnauthorized, "invalid Authorization header")
				return
			}

			userID, err := issuer.Parse(parts[1], "access")
			if err != nil {
				httpx.WriteError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), ctxPrincipalKey{}, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PrincipalID returns the authenticated principal for the request.
func PrincipalID(r *http.Request) (string, bool) {
	v := r.Context().Value(ctxPrincipalKey{})
	if v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok && s != ""
}

// WithPrincipal is a test helper that injects a principal id the way
// Middleware does.
func WithPrincipal(r *http.Request, userID string) *http.Request {
	ctx := context.WithValue(r.Context(), ctxPrincipalKey{}, userID)
	return r.WithContext(ctx)
}
