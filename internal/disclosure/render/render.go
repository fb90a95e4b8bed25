// Package render turns disclosure markup into a deliverable document.
package render

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when the rendering backend cannot be reached or
// refuses the request.
var ErrUnavailable = errors.New("render: backend unavailable")

// Result is a rendered document.
type Result struct {
	Body        []byte
	ContentType string
	// Ext is the file extension without the dot, e.g. "pdf".
	Ext string
}

// Renderer converts self-contained HTML markup into a document. Render must
// honour ctx cancellation and return ctx.Err() (possibly wrapped) when the
// deadline passes.
type Renderer interface {
	Render(ctx context.Context, markup []byte) (Result, error)
}
