package template

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/goliatone/go-decor/pkg/dom"
)

// Page pairs a template document with the slots extracted from it. The
// document provides structural context (head, html attributes) for assembly.
type Page struct {
	Document *html.Node
	Template *Template
}

// Parse reads a complete template. Every slot must be present.
func Parse(markup string) (*Page, error) {
	doc, err := dom.ParseString(markup)
	if err != nil {
		return nil, fmt.Errorf("template: %w", err)
	}
	t, err := ExtractComplete(doc)
	if err != nil {
		return nil, err
	}
	return &Page{Document: doc, Template: t}, nil
}

// ParsePartial reads a template that may omit slots. The body of the parsed
// document is emptied since only the extracted elements remain relevant.
func ParsePartial(markup string) (*Page, error) {
	doc, err := dom.ParseString(markup)
	if err != nil {
		return nil, fmt.Errorf("template: %w", err)
	}
	t := ExtractPartial(doc)
	if body := dom.Body(doc); body != nil {
		dom.RemoveChildren(body)
	}
	return &Page{Document: doc, Template: t}, nil
}

// Merge fills the page's empty slots from defaults.
func (p *Page) Merge(defaults *Page) {
	if defaults == nil {
		return
	}
	p.Template.Merge(defaults.Template)
}

// Clone deep-copies the document and the template.
func (p *Page) Clone() *Page {
	return &Page{
		Document: dom.Clone(p.Document),
		Template: p.Template.Clone(),
	}
}
