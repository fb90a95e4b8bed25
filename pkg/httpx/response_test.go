package httpx_test

import (
	"mime"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aussiebroadwan/disclosure/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type body struct {
		Name string `json:"name"`
	}

	t.Run("valid", func(t *testing.T) {
		var b body
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
		require.NoError(t, httpx.DecodeJSON(httptest.NewRecorder(), req, &b, 1024))
		require.Equal(t, "x", b.Name)
	})

	t.Run("unknown field", func(t *testing.T) {
		var b body
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nme":"x"}`))
		require.Error(t, httpx.DecodeJSON(httptest.NewRecorder(), req, &b, 1024))
	})

	t.Run("too large", func(t *testing.T) {
		var b body
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"`+strings.Repeat("a", 64)+`"}`))
		err := httpx.DecodeJSON(httptest.NewRecorder(), req, &b, 16)
		require.ErrorContains(t, err, "exceeds 16 bytes")
	})
}

func TestWriteJSONDisablesCaching(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteJSON(rec, http.StatusCreated, map[string]int{"n": 1})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.JSONEq(t, `{"n":1}`, rec.Body.String())
}

func TestAttachment(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.Attachment(rec, "ServePack_v1.zip", "application/zip", 42)

	require.Equal(t, `attachment; filename=ServePack_v1.zip`, rec.Header().Get("Content-Disposition"))
	require.Equal(t, "42", rec.Header().Get("Content-Length"))
	require.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestInlineEncodesFilename(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.Inline(rec, "Form2 résumé.pdf", "application/pdf", 0)

	cd := rec.Header().Get("Content-Disposition")
	require.True(t, strings.HasPrefix(cd, "inline; "), cd)

	_, params, err := mime.ParseMediaType(cd)
	require.NoError(t, err)
	require.Equal(t, "Form2 résumé.pdf", params["filename"])
	require.Empty(t, rec.Header().Get("Content-Length"))
}
