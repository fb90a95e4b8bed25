package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/disclosure/pkg/httpx"
	"github.com/aussiebroadwan/disclosure/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func requestFrom(addr string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = addr
	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIPKeyExtractor(t *testing.T) {
	t.Run("extracts from RemoteAddr", func(t *testing.T) {
		require.Equal(t, "192.168.1.1", httpx.IPKeyExtractor(requestFrom("192.168.1.1:12345")))
	})

	t.Run("prefers X-Forwarded-For", func(t *testing.T) {
		req := requestFrom("192.168.1.1:12345")
		req.Header.Set("X-Forwarded-For", "203.0.113.1, 192.168.1.1")
		require.Equal(t, "203.0.113.1", httpx.IPKeyExtractor(req))
	})

	t.Run("uses X-Real-IP if X-Forwarded-For absent", func(t *testing.T) {
		req := requestFrom("192.168.1.1:12345")
		req.Header.Set("X-Real-IP", "203.0.113.2")
		require.Equal(t, "203.0.113.2", httpx.IPKeyExtractor(req))
	})
}

func TestFirstKeyExtractor(t *testing.T) {
	ex := httpx.FirstKeyExtractor(httpx.SubjectKeyExtractor, httpx.IPKeyExtractor)

	anon := requestFrom("10.0.0.1:1")
	require.Equal(t, "10.0.0.1", ex(anon))

	authed := requestFrom("10.0.0.1:1")
	ctx := httpx.WithClaims(authed.Context(), jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "idp|7"}})
	require.Equal(t, "idp|7", ex(authed.WithContext(ctx)))
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("blocks requests over burst", func(t *testing.T) {
		h := httpx.RateLimitByIP(httpx.RateLimitConfig{Requests: 3, Window: time.Minute, Burst: 3})(okHandler)

		for i := range 3 {
			require.Equal(t, http.StatusOK, serve(h, requestFrom("192.168.1.1:12345")).Code, "request %d", i+1)
		}

		rec := serve(h, requestFrom("192.168.1.1:12345"))
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.NotEmpty(t, rec.Header().Get("Retry-After"))
		require.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
		require.Contains(t, rec.Body.String(), "rate_limited")
	})

	t.Run("different keys are tracked separately", func(t *testing.T) {
		h := httpx.RateLimitByIP(httpx.RateLimitConfig{Requests: 1, Window: time.Minute, Burst: 1})(okHandler)

		require.Equal(t, http.StatusOK, serve(h, requestFrom("192.168.1.1:1")).Code)
		require.Equal(t, http.StatusTooManyRequests, serve(h, requestFrom("192.168.1.1:1")).Code)
		require.Equal(t, http.StatusOK, serve(h, requestFrom("192.168.1.2:1")).Code)
	})

	t.Run("empty key is not limited", func(t *testing.T) {
		empty := func(*http.Request) string { return "" }
		h := httpx.RateLimitMiddleware(httpx.RateLimitConfig{Requests: 1, Window: time.Minute, Burst: 1}, empty)(okHandler)

		for range 3 {
			require.Equal(t, http.StatusOK, serve(h, requestFrom("10.0.0.1:1")).Code)
		}
	})

	t.Run("zero config disables limiting", func(t *testing.T) {
		h := httpx.RateLimitByIP(httpx.RateLimitConfig{})(okHandler)
		for range 50 {
			require.Equal(t, http.StatusOK, serve(h, requestFrom("10.0.0.1:1")).Code)
		}
	})
}

func TestRateLimitBySubject(t *testing.T) {
	h := httpx.RateLimitBySubject(httpx.RateLimitConfig{Requests: 1, Window: time.Minute, Burst: 1})(okHandler)

	as := func(sub string) *http.Request {
		req := requestFrom("10.0.0.1:1")
		return req.WithContext(httpx.WithClaims(req.Context(), jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: sub}}))
	}

	// Same address, different subjects.
	require.Equal(t, http.StatusOK, serve(h, as("a")).Code)
	require.Equal(t, http.StatusOK, serve(h, as("b")).Code)
	require.Equal(t, http.StatusTooManyRequests, serve(h, as("a")).Code)
}

func TestDefaultRateLimits(t *testing.T) {
	d := httpx.DefaultRateLimits()
	require.Less(t, d.Heavy.Requests, d.Write.Requests)
	require.Less(t, d.Write.Requests, d.Read.Requests)
	require.Positive(t, d.Public.Burst)
}
