// Package template extracts slot elements from an HTML template document and
// keeps them as the Template model used by the templated renderer.
package template

import (
	"golang.org/x/net/html"

	"github.com/goliatone/go-decor/pkg/dom"
	"github.com/goliatone/go-decor/pkg/slot"
)

// ElementMarker is the attribute whose value names the slot an element fills.
const ElementMarker = "data-decor-element"

// Template maps every slot to an owned element subtree. A partial template may
// hold nil entries until it is merged with a complete one.
type Template struct {
	elements [slot.Count]*html.Node
}

// New returns an empty partial template.
func New() *Template {
	return &Template{}
}

// Element returns the element for s, or nil when the slot is empty.
func (t *Template) Element(s slot.Slot) *html.Node {
	if t == nil || !s.Valid() {
		return nil
	}
	return t.elements[s]
}

// Set stores n as the element for s. The template takes ownership of n.
func (t *Template) Set(s slot.Slot, n *html.Node) {
	if !s.Valid() {
		return
	}
	t.elements[s] = n
}

// Missing lists empty slots in declaration order.
func (t *Template) Missing() []slot.Slot {
	var missing []slot.Slot
	for _, s := range slot.All() {
		if t.elements[s] == nil {
			missing = append(missing, s)
		}
	}
	return missing
}

// Complete reports whether every slot holds an element.
func (t *Template) Complete() bool {
	return len(t.Missing()) == 0
}

// Validate returns the missing elements error when any slot is empty.
func (t *Template) Validate() error {
	if missing := t.Missing(); len(missing) > 0 {
		return missingElementsError(missing)
	}
	return nil
}

// Clone deep-copies every element.
func (t *Template) Clone() *Template {
	out := New()
	for i, n := range t.elements {
		out.elements[i] = dom.Clone(n)
	}
	return out
}

// Merge fills empty slots with clones taken from defaults. Slots already set
// are kept.
func (t *Template) Merge(defaults *Template) {
	if defaults == nil {
		return
	}
	for i, n := range t.elements {
		if n == nil && defaults.elements[i] != nil {
			t.elements[i] = dom.Clone(defaults.elements[i])
		}
	}
}

// ExtractPartial scans doc for the first element marked with each slot name.
// Matches are cloned so later mutation of doc does not reach the template.
// Unmatched slots stay nil.
func ExtractPartial(doc *html.Node) *Template {
	t := New()
	for _, s := range slot.All() {
		if found := dom.FindFirst(doc, ElementMarker, s.String()); found != nil {
			t.elements[s] = dom.Clone(found)
		}
	}
	return t
}

// ExtractComplete is ExtractPartial that fails when any slot is unmatched. The
// error lists all missing slot names.
func ExtractComplete(doc *html.Node) (*Template, error) {
	t := ExtractPartial(doc)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
