package render_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/domain"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/render"
	"github.com/stretchr/testify/require"
)

func sampleInput() render.Form2Input {
	return render.Form2Input{
		Property: domain.Property{
			Title:   "12 Smith St",
			Address: "12 Smith St, Brisbane QLD",
			Type:    "house",
		},
		Checklist: []domain.ChecklistItem{
			{ID: "title_search", Label: "Title Search", Required: true, Complete: true},
			{ID: "smoke_alarm", Label: "Smoke Alarm Compliance", Required: true},
			{ID: "pool_safety", Label: "Pool Safety Certificate"},
		},
		GeneratedAt: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestDisclosureMarkup(t *testing.T) {
	out, err := render.DisclosureMarkup(sampleInput())
	require.NoError(t, err)

	html := string(out)
	require.Contains(t, html, `window.status = "ready"`)
	require.Contains(t, html, "<table>")
	require.Contains(t, html, "Smoke Alarm Compliance")
	require.Contains(t, html, "1 of 3 complete")
	require.Contains(t, html, "<strong>Missing</strong>")
	require.Contains(t, html, "<title>Form 2 - 12 Smith St</title>")
}

func TestDisclosureMarkupEscapesUserInput(t *testing.T) {
	in := sampleInput()
	in.Property.Title = `<script>alert(1)</script>`
	in.Property.Address = "A | B *bold*"

	out, err := render.DisclosureMarkup(in)
	require.NoError(t, err)

	html := string(out)
	require.NotContains(t, html, "<script>alert(1)</script>")
	require.Contains(t, html, "&lt;script&gt;")
	require.Contains(t, html, "A | B *bold*")
}

func TestHTMLRenderer(t *testing.T) {
	res, err := render.HTMLRenderer{}.Render(context.Background(), []byte("<p>x</p>"))
	require.NoError(t, err)
	require.Equal(t, "html", res.Ext)
	require.Equal(t, "<p>x</p>", string(res.Body))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = render.HTMLRenderer{}.Render(ctx, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestGotenbergRenderer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/forms/chromium/convert/html", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "window.status === 'ready'", r.FormValue("waitForExpression"))

		f, hdr, err := r.FormFile("files")
		require.NoError(t, err)
		require.Equal(t, "index.html", hdr.Filename)
		markup, _ := io.ReadAll(f)
		require.Equal(t, "<p>hi</p>", string(markup))

		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.7 fake"))
	}))
	defer srv.Close()

	res, err := render.NewGotenbergRenderer(srv.URL+"/").Render(context.Background(), []byte("<p>hi</p>"))
	require.NoError(t, err)
	require.Equal(t, "application/pdf", res.ContentType)
	require.Equal(t, "pdf", res.Ext)
	require.True(t, strings.HasPrefix(string(res.Body), "%PDF"))
}

func TestGotenbergRendererErrors(t *testing.T) {
	t.Run("bad status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "chromium crashed", http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := render.NewGotenbergRenderer(srv.URL).Render(context.Background(), []byte("x"))
		require.ErrorIs(t, err, render.ErrUnavailable)
		require.ErrorContains(t, err, "chromium crashed")
	})

	t.Run("unreachable", func(t *testing.T) {
		_, err := render.NewGotenbergRenderer("http://127.0.0.1:1").Render(context.Background(), []byte("x"))
		require.ErrorIs(t, err, render.ErrUnavailable)
	})

	t.Run("deadline", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer srv.Close()
		defer close(release)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := render.NewGotenbergRenderer(srv.URL).Render(ctx, []byte("x"))
		require.True(t, errors.Is(err, context.DeadlineExceeded), "got %v", err)
	})
}
