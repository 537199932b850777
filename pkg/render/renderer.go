package render

import (
	"context"

	"github.com/goliatone/go-decor/pkg/template"
)

// Input is the Markdown source together with the template page it renders
// into. A nil Page selects the renderer's default template.
type Input struct {
	Markdown []byte
	Page     *template.Page
}

// Renderer converts Markdown into a complete document.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, input Input, options RenderOptions) ([]byte, error)
}
