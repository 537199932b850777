package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"time"

	internalLoader "github.com/goliatone/go-decor/internal/loader"
	"github.com/goliatone/go-decor/pkg/render"
	"github.com/goliatone/go-decor/pkg/renderers/plain"
	"github.com/goliatone/go-decor/pkg/renderers/templated"
	"github.com/goliatone/go-decor/pkg/slot"
	"github.com/goliatone/go-decor/pkg/source"
	"github.com/goliatone/go-decor/pkg/template"
)

const defaultRendererName = templated.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom source loader.
func WithLoader(loader source.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithLoaderOptions configures the built-in loader. Ignored when WithLoader is
// also given.
func WithLoaderOptions(options ...source.LoaderOption) Option {
	return func(o *Orchestrator) {
		o.loaderOptions = append(o.loaderOptions, options...)
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithDefaultPage sets the page used when a request names no template, and
// the page that fills the gaps of partial templates. It must be complete.
func WithDefaultPage(page *template.Page) Option {
	return func(o *Orchestrator) {
		o.defaultPage = page
	}
}

// WithTransformer registers transformers that run, in order, against the
// Markdown and parameters before rendering.
func WithTransformer(transformers ...Transformer) Option {
	return func(o *Orchestrator) {
		o.transformers = append(o.transformers, transformers...)
	}
}

// WithLogger receives pipeline events.
func WithLogger(logger Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// Orchestrator coordinates the pipeline from Markdown and template sources to
// a rendered document. It applies sensible defaults (template renderer,
// embedded template) while remaining open to dependency injection.
type Orchestrator struct {
	loader          source.Loader
	loaderOptions   []source.LoaderOption
	registry        *render.Registry
	defaultRenderer string
	defaultPage     *template.Page
	transformers    []Transformer
	logger          Logger
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = internalLoader.New(source.NewLoaderOptions(o.loaderOptions...))
	}
	if o.logger == nil {
		o.logger = nopLogger{}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	if o.defaultPage != nil {
		if err := o.defaultPage.Template.Validate(); err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default page: %w", err)
			return
		}
	}
	if o.registry != nil {
		return
	}

	var opts []templated.Option
	if o.defaultPage != nil {
		opts = append(opts, templated.WithPage(o.defaultPage))
	}
	tmpl, err := templated.New(opts...)
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		return
	}
	o.registry = render.NewRegistry(tmpl, plain.New())
	if o.defaultPage == nil {
		o.defaultPage = tmpl.Defaults()
	}
}

// Registry exposes the renderer registry.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

// Request describes one render.
type Request struct {
	// Markdown is the document source. Takes precedence over MarkdownSource.
	Markdown []byte

	// MarkdownSource is loaded when Markdown is nil.
	MarkdownSource source.Source

	// Page is a pre-parsed template page, shared read-only between requests.
	// Takes precedence over Template and TemplateSource.
	Page *template.Page

	// Template is template markup. Takes precedence over TemplateSource.
	Template string

	// TemplateSource is loaded when neither Page nor Template is set. With no
	// template at all the default page is used.
	TemplateSource source.Source

	// Strict rejects templates that lack any slot instead of filling the gaps
	// from the default page.
	Strict bool

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// RenderOptions is forwarded to the renderer. Parameters may be extended by
	// transformers; the caller's map is never mutated.
	RenderOptions render.RenderOptions
}

// Generate loads the inputs, parses the template, runs the transformers and
// renders the document.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	name := inputName(req)
	started := time.Now()

	out, rendererName, err := o.generate(ctx, req, name)
	if err != nil {
		o.logger.RenderFailed(name, err)
		return nil, err
	}
	o.logger.DocumentRendered(name, rendererName, len(out), time.Since(started))
	return out, nil
}

func (o *Orchestrator) generate(ctx context.Context, req Request, name string) ([]byte, string, error) {
	markdown, err := o.resolveMarkdown(ctx, req)
	if err != nil {
		return nil, "", err
	}

	page, err := o.ResolvePage(ctx, req)
	if err != nil {
		return nil, "", err
	}

	doc := &Document{
		Name:       name,
		Markdown:   markdown,
		Parameters: maps.Clone(req.RenderOptions.Parameters),
	}
	for _, t := range o.transformers {
		if t == nil {
			continue
		}
		if err := t.Transform(ctx, doc); err != nil {
			return nil, "", fmt.Errorf("orchestrator: transform %s: %w", name, err)
		}
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, "", err
	}

	options := req.RenderOptions
	options.Parameters = doc.Parameters
	out, err := renderer.Render(ctx, render.Input{Markdown: doc.Markdown, Page: page}, options)
	if err != nil {
		return nil, "", fmt.Errorf("orchestrator: render %s: %w", name, err)
	}
	return out, renderer.Name(), nil
}

func (o *Orchestrator) resolveMarkdown(ctx context.Context, req Request) ([]byte, error) {
	if req.Markdown != nil {
		return req.Markdown, nil
	}
	if req.MarkdownSource == nil {
		return nil, errors.New("orchestrator: markdown or markdown source is required")
	}
	data, err := o.loader.Load(ctx, req.MarkdownSource)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: load markdown: %w", err)
	}
	return data, nil
}

// ResolvePage returns the template page a request renders into. Partial
// templates are merged with the default page unless the request is strict.
// The returned page is safe to share between concurrent renders.
func (o *Orchestrator) ResolvePage(ctx context.Context, req Request) (*template.Page, error) {
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if req.Page != nil {
		if req.Strict {
			if err := req.Page.Template.Validate(); err != nil {
				return nil, fmt.Errorf("orchestrator: template: %w", err)
			}
		}
		return req.Page, nil
	}

	markup := req.Template
	location := "inline"
	if markup == "" {
		if req.TemplateSource == nil {
			return o.defaultPage, nil
		}
		location = req.TemplateSource.Location()
		data, err := o.loader.Load(ctx, req.TemplateSource)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: load template: %w", err)
		}
		markup = string(data)
	}

	if req.Strict {
		page, err := template.Parse(markup)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: template %s: %w", location, err)
		}
		o.logger.TemplateLoaded(location, nil)
		return page, nil
	}

	page, err := template.ParsePartial(markup)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: template %s: %w", location, err)
	}
	missing := page.Template.Missing()
	page.Merge(o.defaultPage)
	o.logger.TemplateLoaded(location, slot.Names(missing))
	return page, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	renderer, err := o.registry.Get(target)
	if err == nil {
		return renderer, nil
	}
	if name != "" {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}
	return o.registry.Get(names[0])
}

func inputName(req Request) string {
	if req.Markdown == nil && req.MarkdownSource != nil {
		return req.MarkdownSource.Location()
	}
	return "inline"
}
