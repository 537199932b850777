package templated_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-decor/pkg/render"
	"github.com/goliatone/go-decor/pkg/renderers/templated"
	"github.com/goliatone/go-decor/pkg/slot"
	"github.com/goliatone/go-decor/pkg/template"
)

func newRenderer(t *testing.T) *templated.Renderer {
	t.Helper()
	renderer, err := templated.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return renderer
}

func renderString(t *testing.T, renderer *templated.Renderer, input render.Input, options render.RenderOptions) string {
	t.Helper()
	out, err := renderer.Render(context.Background(), input, options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func assertContains(t *testing.T, output string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if !strings.Contains(output, fragment) {
			t.Fatalf("expected output to contain %q\noutput:\n%s", fragment, output)
		}
	}
}

func TestDefaultTemplateIsComplete(t *testing.T) {
	page, err := template.Parse(templated.DefaultTemplate())
	if err != nil {
		t.Fatalf("parse default template: %v", err)
	}
	if missing := page.Template.Missing(); len(missing) != 0 {
		t.Fatalf("default template misses %v", slot.Names(missing))
	}
	if templated.DefaultContent() == "" {
		t.Fatal("default content is empty")
	}
}

func TestRendererProducesDocument(t *testing.T) {
	renderer := newRenderer(t)
	if renderer.Name() != templated.Name {
		t.Fatalf("unexpected name %q", renderer.Name())
	}

	out := renderString(t, renderer, render.Input{Markdown: []byte("# Hi\n\nSome *text*.\n")}, render.RenderOptions{})

	if !strings.HasPrefix(out, "<!DOCTYPE html>\n<html") {
		t.Fatalf("unexpected document start: %q", out[:40])
	}
	assertContains(t, out,
		`<h1 data-decor-element="heading1">Hi</h1>`,
		`<p data-decor-element="paragraph">Some <em data-decor-element="emphasis">text</em>.</p>`,
	)
	if strings.Contains(out, "Heading 2") {
		t.Fatal("template body content must be replaced")
	}
}

func TestRendererCodeBlock(t *testing.T) {
	out := renderString(t, newRenderer(t), render.Input{Markdown: []byte("```js\nconsole.log(\"x\");\n```\n")}, render.RenderOptions{})
	assertContains(t, out,
		`<pre data-decor-element="code_block" data-decor-attribute-data-language="infoString" data-language="js"><code data-decor-content="content">console.log(&#34;x&#34;);`+"\n"+`</code></pre>`,
	)
}

func TestRendererMedia(t *testing.T) {
	out := renderString(t, newRenderer(t), render.Input{Markdown: []byte("![clip](movie.mp4)\n\n![pic](photo.jpeg \"Cap\")\n")}, render.RenderOptions{})
	assertContains(t, out,
		`<p data-decor-element="paragraph"><span class="media" data-decor-element="video">`,
		`src="movie.mp4"`,
		`<span class="caption" data-decor-content="description">clip</span></span></p>`,
		`<span class="media" data-decor-element="image">`,
		`src="photo.jpeg"`,
		`title="Cap"`,
	)
	if strings.Contains(out, "<p></p>") {
		t.Fatalf("inline media must not split its paragraph: %s", out)
	}
}

func TestRendererDropsUnsafeURLs(t *testing.T) {
	out := renderString(t, newRenderer(t), render.Input{
		Markdown: []byte("[x](javascript:alert(1)) ![i](javascript:alert(2))\n"),
	}, render.RenderOptions{})

	assertContains(t, out,
		`<a data-decor-element="link">x</a>`,
		`<span class="media" data-decor-element="image">`,
	)
	body := out[strings.Index(out, "<body>"):]
	for _, attr := range []string{` href="`, ` src="`, "javascript:"} {
		if strings.Contains(body, attr) {
			t.Fatalf("unexpected %q in body: %s", attr, body)
		}
	}
}

func TestRendererOrderedListStart(t *testing.T) {
	renderer := newRenderer(t)
	out := renderString(t, renderer, render.Input{Markdown: []byte("1. a\n")}, render.RenderOptions{})
	assertContains(t, out, `<ol data-decor-element="ordered_list"><li data-decor-element="ordered_list_item">a</li></ol>`)

	out = renderString(t, renderer, render.Input{Markdown: []byte("2. b\n")}, render.RenderOptions{})
	assertContains(t, out, `<ol data-decor-element="ordered_list" start="2"><li data-decor-element="ordered_list_item">b</li></ol>`)
}

func TestRendererParameters(t *testing.T) {
	out := renderString(t, newRenderer(t), render.Input{Markdown: []byte("x\n")}, render.RenderOptions{
		Parameters: map[string]string{"title": "My document", "lang": "fr"},
	})
	assertContains(t, out,
		`<html lang="fr" data-decor-attribute-lang="param:lang">`,
		`<title data-decor-content="param:title">My document</title>`,
	)
}

func TestRendererTheme(t *testing.T) {
	out := renderString(t, newRenderer(t), render.Input{Markdown: []byte("x\n")}, render.RenderOptions{
		Theme: &theme.RendererConfig{
			Theme:   "acme",
			Variant: "dark",
			CSSVars: map[string]string{"--decor-accent": "#123456"},
		},
	})
	assertContains(t, out,
		`data-theme="acme"`,
		`data-theme-variant="dark"`,
		":root {\n--decor-accent: #123456;\n}",
	)
}

func TestRendererMergesPartialPage(t *testing.T) {
	page, err := template.ParsePartial(`<html><head><title>Mine</title></head><body><h1 data-decor-element="heading1" class="big"></h1></body></html>`)
	if err != nil {
		t.Fatalf("parse partial: %v", err)
	}
	out := renderString(t, newRenderer(t), render.Input{Markdown: []byte("# Hi\n\npara\n"), Page: page}, render.RenderOptions{})
	assertContains(t, out,
		`<title>Mine</title>`,
		`<h1 data-decor-element="heading1" class="big">Hi</h1>`,
		`<p data-decor-element="paragraph">para</p>`,
	)
	if page.Template.Complete() {
		t.Fatal("caller page must not be mutated")
	}
}

func TestRendererSanitizesRawHTML(t *testing.T) {
	source := []byte("<div onclick=\"x()\">raw</div>\n")
	out := renderString(t, newRenderer(t), render.Input{Markdown: source}, render.RenderOptions{})
	assertContains(t, out, `<div onclick="x()">raw</div>`)

	out = renderString(t, newRenderer(t), render.Input{Markdown: source}, render.RenderOptions{SanitizeHTML: true})
	if strings.Contains(out, "onclick") {
		t.Fatalf("expected sanitized output, got:\n%s", out)
	}
}

func TestRendererIsRepeatableAndConcurrent(t *testing.T) {
	renderer := newRenderer(t)
	input := render.Input{Markdown: []byte(templated.DefaultContent())}
	want := renderString(t, renderer, input, render.RenderOptions{})

	var wg sync.WaitGroup
	results := make([]string, 8)
	errs := make([]error, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := renderer.Render(context.Background(), input, render.RenderOptions{})
			results[i], errs[i] = string(out), err
		}(i)
	}
	wg.Wait()

	for i := range results {
		if errs[i] != nil {
			t.Fatalf("render %d: %v", i, errs[i])
		}
		if results[i] != want {
			t.Fatalf("render %d differs from the first render", i)
		}
	}
}

func TestRendererHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := newRenderer(t).Render(ctx, render.Input{Markdown: []byte("x")}, render.RenderOptions{}); err == nil {
		t.Fatal("expected context error")
	}
}

func TestNewRejectsIncompleteTemplate(t *testing.T) {
	_, err := templated.New(templated.WithTemplateHTML(`<p data-decor-element="paragraph"></p>`))
	if !template.IsMissingElements(err) {
		t.Fatalf("expected missing elements error, got %v", err)
	}
}
