// Package templated renders Markdown by filling the slot elements of an HTML
// template. It is the default renderer registered by the orchestrator.
package templated

import (
	"context"
	"fmt"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-decor/pkg/markdown"
	"github.com/goliatone/go-decor/pkg/render"
	"github.com/goliatone/go-decor/pkg/template"
)

// Name is the registry name of the renderer.
const Name = "template"

var (
	ugcPolicyOnce sync.Once
	ugcPolicy     *bluemonday.Policy
)

func htmlSanitizer() *bluemonday.Policy {
	ugcPolicyOnce.Do(func() {
		ugcPolicy = bluemonday.UGCPolicy()
	})
	return ugcPolicy
}

type Option func(*config)

type config struct {
	page   *template.Page
	markup string
}

// WithPage sets the default template page. It must be complete.
func WithPage(page *template.Page) Option {
	return func(cfg *config) {
		cfg.page = page
	}
}

// WithTemplateHTML parses markup as the default template.
func WithTemplateHTML(markup string) Option {
	return func(cfg *config) {
		cfg.markup = markup
	}
}

// Renderer renders Markdown into a template page. Each call works on clones
// and a fresh Adapter, so one Renderer serves concurrent requests.
type Renderer struct {
	defaults *template.Page
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer. Without options the embedded template is used.
func New(options ...Option) (*Renderer, error) {
	cfg := config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	page := cfg.page
	if page == nil {
		markup := cfg.markup
		if markup == "" {
			markup = DefaultTemplate()
		}
		parsed, err := template.Parse(markup)
		if err != nil {
			return nil, fmt.Errorf("templated renderer: parse default template: %w", err)
		}
		page = parsed
	}
	if err := page.Template.Validate(); err != nil {
		return nil, fmt.Errorf("templated renderer: %w", err)
	}
	return &Renderer{defaults: page}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Defaults returns the default page. Callers must not mutate it.
func (r *Renderer) Defaults() *template.Page {
	return r.defaults
}

func (r *Renderer) Render(ctx context.Context, input render.Input, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source := input.Page
	if source == nil {
		source = r.defaults
	}
	page := source.Clone()
	if !page.Template.Complete() {
		page.Merge(r.defaults)
	}

	if err := page.Template.ReplaceParameters(options.Parameters); err != nil {
		return nil, fmt.Errorf("templated renderer: template parameters: %w", err)
	}
	if err := template.ReplaceDocumentParameters(page.Document, options.Parameters); err != nil {
		return nil, fmt.Errorf("templated renderer: document parameters: %w", err)
	}

	var adapterOptions []AdapterOption
	if options.SanitizeHTML {
		adapterOptions = append(adapterOptions, WithSanitizer(htmlSanitizer()))
	}
	adapter, err := NewAdapter(page.Template, adapterOptions...)
	if err != nil {
		return nil, fmt.Errorf("templated renderer: %w", err)
	}

	render.ApplyTheme(page.Document, options.Theme)

	out, err := render.RenderDocument(input.Markdown, adapter, page.Document, markdown.WithExtensions(options.Extensions...))
	if err != nil {
		return nil, fmt.Errorf("templated renderer: %w", err)
	}
	return []byte(out), nil
}
