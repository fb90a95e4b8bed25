package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// maxPDFBytes bounds how much of a renderer response we will buffer.
const maxPDFBytes = 64 << 20

// GotenbergRenderer converts HTML to PDF through a Gotenberg style Chromium
// endpoint.
type GotenbergRenderer struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewGotenbergRenderer returns a renderer for baseURL. Request deadlines come
// from the caller's context.
func NewGotenbergRenderer(baseURL string) *GotenbergRenderer {
	return &GotenbergRenderer{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
	}
}

func (g *GotenbergRenderer) Render(ctx context.Context, markup []byte) (Result, error) {
	body, contentType, err := g.form(markup)
	if err != nil {
		return Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.BaseURL+"/forms/chromium/convert/html", body)
	if err != nil {
		return Result{}, fmt.Errorf("render: build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Result{}, fmt.Errorf("render: %w", ctxErr)
		}
		return Result{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Result{}, fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, bytes.TrimSpace(snippet))
	}

	pdf, err := io.ReadAll(io.LimitReader(resp.Body, maxPDFBytes+1))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Result{}, fmt.Errorf("render: %w", ctxErr)
		}
		return Result{}, fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}
	if len(pdf) > maxPDFBytes {
		return Result{}, fmt.Errorf("%w: document exceeds %d bytes", ErrUnavailable, maxPDFBytes)
	}
	if len(pdf) == 0 {
		return Result{}, fmt.Errorf("%w: empty document", ErrUnavailable)
	}

	return Result{Body: pdf, ContentType: "application/pdf", Ext: "pdf"}, nil
}

func (g *GotenbergRenderer) form(markup []byte) (io.Reader, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := [][2]string{
		{"waitForExpression", "window.status === 'ready'"},
		{"printBackground", "true"},
		// A4 in inches.
		{"paperWidth", "8.27"},
		{"paperHeight", "11.7"},
	}
	for _, f := range fields {
		if err := mw.WriteField(f[0], f[1]); err != nil {
			return nil, "", fmt.Errorf("render: write field %s: %w", f[0], err)
		}
	}

	fw, err := mw.CreateFormFile("files", "index.html")
	if err != nil {
		return nil, "", fmt.Errorf("render: create form file: %w", err)
	}
	if _, err := fw.Write(markup); err != nil {
		return nil, "", fmt.Errorf("render: write markup: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, "", errors.Join(errors.New("render: close multipart"), err)
	}
	return &buf, mw.FormDataContentType(), nil
}
