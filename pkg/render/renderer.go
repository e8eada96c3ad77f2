package render

import (
	"context"

	"github.com/goliatone/go-qrgen/pkg/model"
)

// Renderer converts a category form plus per-request state into bytes (an
// HTML page, a terminal transcript, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form model.Form, options RenderOptions) ([]byte, error)
}
