package template

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/goliatone/go-decor/pkg/dom"
	"github.com/goliatone/go-decor/pkg/params"
)

// ParameterPrefix marks a marker value as a document parameter reference, as
// in data-decor-content="param:title".
const ParameterPrefix = "param:"

// ReplaceDocumentParameters resolves param: references on every element of
// doc. References to unknown or empty parameters are left untouched.
func ReplaceDocumentParameters(doc *html.Node, values map[string]string) error {
	if doc == nil || len(values) == 0 {
		return nil
	}
	return replaceTree(doc, values)
}

// ReplaceParameters resolves param: references inside every slot element.
func (t *Template) ReplaceParameters(values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	for _, n := range t.elements {
		if n == nil {
			continue
		}
		if err := replaceTree(n, values); err != nil {
			return err
		}
	}
	return nil
}

func replaceTree(n *html.Node, values map[string]string) error {
	if n.Type == html.ElementNode {
		if err := replaceElement(n, values); err != nil {
			return err
		}
	}
	for child := n.FirstChild; child != nil; {
		next := child.NextSibling
		if err := replaceTree(child, values); err != nil {
			return err
		}
		child = next
	}
	return nil
}

func replaceElement(n *html.Node, values map[string]string) error {
	attrs := append([]html.Attribute(nil), n.Attr...)
	for _, attr := range attrs {
		name, ok := strings.CutPrefix(attr.Val, ParameterPrefix)
		if !ok {
			continue
		}
		value := values[name]
		if value == "" {
			continue
		}
		if dest, ok := strings.CutPrefix(attr.Key, params.AttributePrefix); ok && dest != "" {
			dom.SetAttr(n, dest, value)
			continue
		}
		if attr.Key == params.ContentMarker {
			if err := dom.SetInnerHTML(n, value); err != nil {
				return err
			}
		}
	}
	return nil
}
