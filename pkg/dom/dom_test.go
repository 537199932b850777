package dom_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"

	"github.com/goliatone/go-decor/pkg/dom"
	"github.com/goliatone/go-decor/pkg/params"
)

func mustParse(t *testing.T, markup string) *html.Node {
	t.Helper()
	doc, err := dom.ParseString(markup)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func mustOuter(t *testing.T, n *html.Node) string {
	t.Helper()
	out, err := dom.OuterHTML(n)
	if err != nil {
		t.Fatalf("outer html: %v", err)
	}
	return out
}

func TestDocumentStructure(t *testing.T) {
	doc := mustParse(t, `<p id="a">x</p>`)
	if dom.DocumentElement(doc) == nil {
		t.Fatal("expected <html> element")
	}
	if dom.Head(doc) == nil || dom.Body(doc) == nil {
		t.Fatal("expected head and body")
	}
	p := dom.FindFirst(doc, "id", "a")
	if p == nil || p.Data != "p" {
		t.Fatalf("expected <p>, got %+v", p)
	}
	if dom.FindFirst(doc, "id", "b") != nil {
		t.Fatal("unexpected match")
	}
}

func TestCloneIsDeepAndDetached(t *testing.T) {
	doc := mustParse(t, `<div id="a" class="x"><span>child</span></div>`)
	original := dom.FindFirst(doc, "id", "a")

	clone := dom.Clone(original)
	if clone.Parent != nil {
		t.Fatal("expected detached clone")
	}
	dom.SetAttr(clone, "class", "y")
	if err := dom.SetInnerHTML(clone, "<b>changed</b>"); err != nil {
		t.Fatalf("set inner html: %v", err)
	}

	if diff := cmp.Diff(`<div id="a" class="x"><span>child</span></div>`, mustOuter(t, original)); diff != "" {
		t.Fatalf("original mutated (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(`<div id="a" class="y"><b>changed</b></div>`, mustOuter(t, clone)); diff != "" {
		t.Fatalf("clone mismatch (-want +got):\n%s", diff)
	}
}

func TestSetInnerHTMLUsesElementContext(t *testing.T) {
	doc := mustParse(t, `<table id="t"><thead id="h"></thead></table>`)
	head := dom.FindFirst(doc, "id", "h")
	if err := dom.SetInnerHTML(head, "<tr><th>A</th></tr>"); err != nil {
		t.Fatalf("set inner html: %v", err)
	}
	inner, err := dom.InnerHTML(head)
	if err != nil {
		t.Fatalf("inner html: %v", err)
	}
	if diff := cmp.Diff("<tr><th>A</th></tr>", inner); diff != "" {
		t.Fatalf("inner mismatch (-want +got):\n%s", diff)
	}
}

func TestFindAllIncludesRoot(t *testing.T) {
	doc := mustParse(t, `<div id="r" data-x="1"><p data-x="2"></p><p></p></div>`)
	root := dom.FindFirst(doc, "id", "r")
	if got := len(dom.FindAll(root, "data-x")); got != 2 {
		t.Fatalf("expected 2 matches, got %d", got)
	}
}

func TestElementAdapter(t *testing.T) {
	doc := mustParse(t, `<figure id="f" data-decor-attribute-title="title">text<img data-decor-attribute-src="url"><!-- c --></figure>`)
	fig := dom.Wrap(dom.FindFirst(doc, "id", "f"))

	children := fig.Children()
	if len(children) != 1 {
		t.Fatalf("expected 1 element child, got %d", len(children))
	}
	want := []string{"data-decor-attribute-title", "data-decor-attribute-src"}
	if diff := cmp.Diff(want, params.AttributeKeys(fig)); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}

	set := params.NewSet(params.Attribute("url", "a.png", "src"), params.Attribute("title", "T", "title"))
	if err := params.Apply(fig, params.AttributeKeys(fig), set); err != nil {
		t.Fatalf("apply: %v", err)
	}
	got := mustOuter(t, fig.Node())
	wantHTML := `<figure id="f" data-decor-attribute-title="title" title="T">text<img data-decor-attribute-src="url" src="a.png"/><!-- c --></figure>`
	if diff := cmp.Diff(wantHTML, got); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}
