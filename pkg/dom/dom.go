// Package dom holds the small set of golang.org/x/net/html helpers the
// renderer needs: parsing, deep cloning, attribute lookup and markup
// serialisation.
package dom

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseDocument parses a full HTML document. The parser always produces html,
// head and body elements.
func ParseDocument(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse document: %w", err)
	}
	return doc, nil
}

// ParseString is ParseDocument over a string.
func ParseString(markup string) (*html.Node, error) {
	return ParseDocument(strings.NewReader(markup))
}

// DocumentElement returns the root <html> element of doc.
func DocumentElement(doc *html.Node) *html.Node {
	if doc == nil {
		return nil
	}
	if doc.Type == html.ElementNode && doc.DataAtom == atom.Html {
		return doc
	}
	for child := doc.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode && child.DataAtom == atom.Html {
			return child
		}
	}
	return nil
}

// Body returns the <body> element of doc.
func Body(doc *html.Node) *html.Node {
	return childOfRoot(doc, atom.Body)
}

// Head returns the <head> element of doc.
func Head(doc *html.Node) *html.Node {
	return childOfRoot(doc, atom.Head)
}

func childOfRoot(doc *html.Node, a atom.Atom) *html.Node {
	root := DocumentElement(doc)
	if root == nil {
		return nil
	}
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode && child.DataAtom == a {
			return child
		}
	}
	return nil
}

// Clone deep-copies n. The copy is detached from any parent.
func Clone(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      slices.Clone(n.Attr),
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(Clone(child))
	}
	return c
}

// FindFirst returns the first element, n included, whose attribute key equals
// value, in document order.
func FindFirst(n *html.Node, key, value string) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode {
		if got, ok := GetAttr(n, key); ok && got == value {
			return n
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := FindFirst(child, key, value); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every element, n included, carrying attribute key.
func FindAll(n *html.Node, key string) []*html.Node {
	var out []*html.Node
	var visit func(*html.Node)
	visit = func(node *html.Node) {
		if node.Type == html.ElementNode {
			if _, ok := GetAttr(node, key); ok {
				out = append(out, node)
			}
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			visit(child)
		}
	}
	if n != nil {
		visit(n)
	}
	return out
}

// GetAttr returns the value of attribute key on n.
func GetAttr(n *html.Node, key string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// SetAttr overwrites attribute key on n, appending it when absent.
func SetAttr(n *html.Node, key, value string) {
	for i, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == key {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
}

// RemoveChildren detaches every child of n.
func RemoveChildren(n *html.Node) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
}

// SetInnerHTML replaces the children of n with markup parsed in n's context.
func SetInnerHTML(n *html.Node, markup string) error {
	if n == nil || n.Type != html.ElementNode {
		return fmt.Errorf("dom: inner html target must be an element")
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), &html.Node{
		Type:     html.ElementNode,
		DataAtom: n.DataAtom,
		Data:     n.Data,
	})
	if err != nil {
		return fmt.Errorf("dom: parse fragment in <%s>: %w", n.Data, err)
	}
	RemoveChildren(n)
	for _, node := range nodes {
		n.AppendChild(node)
	}
	return nil
}

// InnerHTML serialises the children of n.
func InnerHTML(n *html.Node) (string, error) {
	var buf bytes.Buffer
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if err := html.Render(&buf, child); err != nil {
			return "", fmt.Errorf("dom: render: %w", err)
		}
	}
	return buf.String(), nil
}

// OuterHTML serialises n and its subtree.
func OuterHTML(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", fmt.Errorf("dom: render: %w", err)
	}
	return buf.String(), nil
}
