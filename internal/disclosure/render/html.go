package render

import "context"

// HTMLRenderer returns the markup unchanged. It stands in for a PDF backend
// in development and tests.
type HTMLRenderer struct{}

func (HTMLRenderer) Render(ctx context.Context, markup []byte) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	body := make([]byte, len(markup))
	copy(body, markup)
	return Result{Body: body, ContentType: "text/html; charset=utf-8", Ext: "html"}, nil
}
