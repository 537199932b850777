// Package decor converts Markdown into HTML by filling the slot elements of a
// template document.
//
//	out, err := decor.Render([]byte("# Hello"), "")
//
// An empty template selects the embedded default, and slots a custom template
// omits are taken from it.
package decor

import (
	"context"

	"github.com/goliatone/go-decor/pkg/orchestrator"
	"github.com/goliatone/go-decor/pkg/render"
	"github.com/goliatone/go-decor/pkg/source"
	"github.com/goliatone/go-decor/pkg/template"
)

// RenderOptions describes per-request parameters, sanitising, extensions and
// theme.
type RenderOptions = render.RenderOptions

// Request aliases orchestrator.Request.
type Request = orchestrator.Request

// Option aliases orchestrator.Option.
type Option = orchestrator.Option

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Render converts markdown with templateHTML, or the default template when
// templateHTML is empty. Slots the template omits fall back to the default.
func Render(markdown []byte, templateHTML string) ([]byte, error) {
	return RenderWithOptions(context.Background(), markdown, templateHTML, RenderOptions{})
}

// RenderWithOptions is Render with a context and render options.
func RenderWithOptions(ctx context.Context, markdown []byte, templateHTML string, options RenderOptions, opts ...orchestrator.Option) ([]byte, error) {
	if markdown == nil {
		markdown = []byte{}
	}
	return orchestrator.New(opts...).Generate(ctx, orchestrator.Request{
		Markdown:      markdown,
		Template:      templateHTML,
		RenderOptions: options,
	})
}

// RenderStrict is Render but fails when templateHTML lacks any slot.
func RenderStrict(markdown []byte, templateHTML string) ([]byte, error) {
	if markdown == nil {
		markdown = []byte{}
	}
	return orchestrator.New().Generate(context.Background(), orchestrator.Request{
		Markdown: markdown,
		Template: templateHTML,
		Strict:   true,
	})
}

// ParseTemplate parses a complete template page.
func ParseTemplate(markup string) (*template.Page, error) {
	return template.Parse(markup)
}

// WithLoaderOptions forwards loader configuration such as an fs.FS or HTTP
// client to the orchestrator.
func WithLoaderOptions(options ...source.LoaderOption) orchestrator.Option {
	return orchestrator.WithLoaderOptions(options...)
}

// WithFrontMatter strips YAML front matter and exposes it as parameters.
func WithFrontMatter() orchestrator.Option {
	return orchestrator.WithTransformer(orchestrator.FrontMatterTransformer{})
}
