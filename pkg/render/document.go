package render

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/goliatone/go-decor/pkg/dom"
	"github.com/goliatone/go-decor/pkg/markdown"
)

// Doctype prefixes every assembled document.
const Doctype = "<!DOCTYPE html>\n"

// RenderDocument walks source with renderer and assembles the result into doc.
// doc is modified in place; callers pass a clone when the template is reused.
func RenderDocument(source []byte, renderer markdown.Renderer, doc *html.Node, options ...markdown.Option) (string, error) {
	body, err := markdown.Render(renderer, source, options...)
	if err != nil {
		return "", err
	}
	return Assemble(doc, body)
}

// Assemble replaces the body content of doc with body and serialises the
// document element behind the doctype.
func Assemble(doc *html.Node, body string) (string, error) {
	root := dom.DocumentElement(doc)
	if root == nil {
		return "", fmt.Errorf("render: document has no root element")
	}
	target := dom.Body(doc)
	if target == nil {
		return "", fmt.Errorf("render: document has no body")
	}
	if err := dom.SetInnerHTML(target, body); err != nil {
		return "", fmt.Errorf("render: replace body: %w", err)
	}
	out, err := dom.OuterHTML(root)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.Grow(len(Doctype) + len(out))
	b.WriteString(Doctype)
	b.WriteString(out)
	return b.String(), nil
}
