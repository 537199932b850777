package dom

import (
	"golang.org/x/net/html"

	"github.com/goliatone/go-decor/pkg/params"
)

// Element adapts an element node to params.Node.
type Element struct {
	node *html.Node
}

var _ params.Node = Element{}

// Wrap returns the params.Node view of n.
func Wrap(n *html.Node) Element {
	return Element{node: n}
}

// Node returns the wrapped node.
func (e Element) Node() *html.Node {
	return e.node
}

func (e Element) Attr(key string) (string, bool) {
	return GetAttr(e.node, key)
}

func (e Element) AttrKeys() []string {
	keys := make([]string, 0, len(e.node.Attr))
	for _, attr := range e.node.Attr {
		if attr.Namespace == "" {
			keys = append(keys, attr.Key)
		}
	}
	return keys
}

func (e Element) SetAttr(key, value string) {
	SetAttr(e.node, key, value)
}

func (e Element) SetContent(markup string) error {
	return SetInnerHTML(e.node, markup)
}

// Children returns element children only; text and comments carry no markers.
func (e Element) Children() []params.Node {
	var out []params.Node
	for child := e.node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode {
			out = append(out, Element{node: child})
		}
	}
	return out
}
