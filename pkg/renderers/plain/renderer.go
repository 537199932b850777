// Package plain renders Markdown with goldmark's stock HTML renderer and
// assembles the result into the body of a template page. Slot elements are not
// consulted; only document parameters and the theme apply.
package plain

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"

	"github.com/goliatone/go-decor/pkg/dom"
	"github.com/goliatone/go-decor/pkg/markdown"
	"github.com/goliatone/go-decor/pkg/render"
	"github.com/goliatone/go-decor/pkg/template"
)

// Name is the registry name of the renderer.
const Name = "html"

// DefaultDocument is used when the input carries no template page.
const DefaultDocument = `<!DOCTYPE html>
<html lang="en" data-decor-attribute-lang="param:lang">
<head>
<meta charset="utf-8">
<title data-decor-content="param:title">Document</title>
</head>
<body></body>
</html>`

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

func sanitizer() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.UGCPolicy()
	})
	return policy
}

// Renderer is safe for concurrent use.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, input render.Input, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	engine := markdown.Engine(markdown.WithExtensions(options.Extensions...))
	engine.Renderer().AddOptions(gmhtml.WithUnsafe())

	var body bytes.Buffer
	if err := engine.Convert(input.Markdown, &body); err != nil {
		return nil, fmt.Errorf("html renderer: convert markdown: %w", err)
	}
	content := body.Bytes()
	if options.SanitizeHTML {
		content = sanitizer().SanitizeBytes(content)
	}

	doc, err := document(input.Page)
	if err != nil {
		return nil, err
	}
	if err := template.ReplaceDocumentParameters(doc, options.Parameters); err != nil {
		return nil, fmt.Errorf("html renderer: document parameters: %w", err)
	}
	render.ApplyTheme(doc, options.Theme)

	out, err := render.Assemble(doc, string(content))
	if err != nil {
		return nil, fmt.Errorf("html renderer: %w", err)
	}
	return []byte(out), nil
}

func document(page *template.Page) (*html.Node, error) {
	if page != nil && page.Document != nil {
		return dom.Clone(page.Document), nil
	}
	doc, err := dom.ParseString(DefaultDocument)
	if err != nil {
		return nil, fmt.Errorf("html renderer: parse default document: %w", err)
	}
	return doc, nil
}
