package httpx

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/disclosure/pkg/jwtx"
	"github.com/aussiebroadwan/disclosure/pkg/slogx"
)

// TokenVerifier checks a raw JWT. *jwtx.Verifier satisfies it.
type TokenVerifier interface {
	Verify(token string) (jwtx.Claims, error)
}

// AuthnMiddleware requires a valid identity token, taken from the
// Authorization bearer header or, failing that, the named session cookie.
// Verified claims are stored on the request context.
func AuthnMiddleware(v TokenVerifier, cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw := tokenFromRequest(r, cookieName)
			if raw == "" {
				writeUnauthenticated(w, "missing identity token")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("identity token rejected", slog.Any("error", err))
				writeUnauthenticated(w, "identity token verification failed")
				return
			}

			ctx = slogx.With(WithClaims(ctx, claims), slog.String("subject", claims.Subject))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func tokenFromRequest(r *http.Request, cookieName string) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if cookieName == "" {
		return ""
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return c.Value
	}
	return ""
}

// RFC 6750 style challenge with a JSON body matching our error envelope.
func writeUnauthenticated(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, http.StatusUnauthorized, map[string]string{
		"error":             "unauthenticated",
		"error_description": desc,
	})
}
