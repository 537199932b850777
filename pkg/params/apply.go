package params

import (
	"fmt"
	"strings"
)

const (
	// ContentMarker names the parameter that fills an element's content.
	ContentMarker = "data-decor-content"
	// AttributePrefix starts a wildcard marker; the suffix is the destination
	// attribute and the value names the parameter.
	AttributePrefix = "data-decor-attribute-"
)

// Node is the tree capability the engine needs. Implementations wrap a DOM
// element; SetContent receives markup and replaces all children.
type Node interface {
	Attr(key string) (string, bool)
	AttrKeys() []string
	SetAttr(key, value string)
	SetContent(markup string) error
	Children() []Node
}

// Apply rewrites root in place. wildcardKeys lists the AttributePrefix keys to
// honour, usually AttributeKeys(root) taken from the pristine template.
//
// Target elements are collected before anything is written so markers carried
// by inserted markup are never matched.
func Apply(root Node, wildcardKeys []string, set *Set) error {
	if root == nil {
		return fmt.Errorf("params: root node is nil")
	}
	if set == nil {
		set = NewSet()
	}

	contentTargets := FindAll(root, ContentMarker)
	attributeTargets := make([][]Node, len(wildcardKeys))
	for i, key := range wildcardKeys {
		attributeTargets[i] = FindAll(root, key)
	}

	for _, node := range contentTargets {
		name, _ := node.Attr(ContentMarker)
		p := set.lookup(name)
		if p == nil || !p.Present {
			continue
		}
		p.referenced = true
		if err := node.SetContent(p.Value); err != nil {
			return fmt.Errorf("params: set content %q: %w", name, err)
		}
	}

	for i, key := range wildcardKeys {
		destination := strings.TrimPrefix(key, AttributePrefix)
		if destination == "" || destination == key {
			continue
		}
		for _, node := range attributeTargets[i] {
			name, _ := node.Attr(key)
			p := set.lookup(name)
			if p == nil {
				continue
			}
			p.referenced = true
			if p.Present {
				node.SetAttr(destination, p.Value)
			}
		}
	}

	for _, p := range set.params {
		if p.referenced || !p.Present {
			continue
		}
		if p.Default.IsContent() {
			if err := root.SetContent(p.Value); err != nil {
				return fmt.Errorf("params: set root content %q: %w", p.Name, err)
			}
			continue
		}
		root.SetAttr(p.Default.Attribute(), p.Value)
	}
	return nil
}

// FindAll returns root and its descendants carrying key, in document order.
func FindAll(root Node, key string) []Node {
	var out []Node
	walk(root, func(n Node) {
		if _, ok := n.Attr(key); ok {
			out = append(out, n)
		}
	})
	return out
}

// AttributeKeys collects the distinct wildcard marker keys found on root and
// its descendants, in document order.
func AttributeKeys(root Node) []string {
	var keys []string
	seen := make(map[string]struct{})
	walk(root, func(n Node) {
		for _, key := range n.AttrKeys() {
			if !strings.HasPrefix(key, AttributePrefix) {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	})
	return keys
}

func walk(n Node, visit func(Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, child := range n.Children() {
		walk(child, visit)
	}
}
