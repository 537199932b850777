package templated

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-decor/pkg/dom"
	"github.com/goliatone/go-decor/pkg/markdown"
	"github.com/goliatone/go-decor/pkg/params"
	"github.com/goliatone/go-decor/pkg/slot"
	"github.com/goliatone/go-decor/pkg/template"
)

// Parameter names template authors can route with marker attributes.
const (
	ParamContent     = "content"
	ParamInfoString  = "infoString"
	ParamStart       = "start"
	ParamHeader      = "header"
	ParamBody        = "body"
	ParamAlign       = "align"
	ParamTitle       = "title"
	ParamURL         = "url"
	ParamDescription = "description"
)

// Adapter renders Markdown constructs by filling clones of template slots. It
// owns the wildcard key cache, so use one Adapter per render pass.
type Adapter struct {
	template  *template.Template
	keys      *params.KeyCache
	sanitizer *bluemonday.Policy
}

var _ markdown.Renderer = (*Adapter)(nil)

// AdapterOption customises an Adapter.
type AdapterOption func(*Adapter)

// WithSanitizer filters raw HTML through policy instead of passing it
// verbatim.
func WithSanitizer(policy *bluemonday.Policy) AdapterOption {
	return func(a *Adapter) {
		a.sanitizer = policy
	}
}

// NewAdapter binds an Adapter to a complete template.
func NewAdapter(t *template.Template, options ...AdapterOption) (*Adapter, error) {
	if t == nil {
		return nil, fmt.Errorf("templated: template is nil")
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	a := &Adapter{template: t, keys: params.NewKeyCache()}
	for _, opt := range options {
		if opt != nil {
			opt(a)
		}
	}
	return a, nil
}

func (a *Adapter) apply(s slot.Slot, values ...params.Parameter) (string, error) {
	source := a.template.Element(s)
	if source == nil {
		return "", slotMissingError(s)
	}
	keys := a.keys.Keys(s, dom.Wrap(source))
	clone := dom.Clone(source)
	if err := params.Apply(dom.Wrap(clone), keys, params.NewSet(values...)); err != nil {
		return "", fmt.Errorf("templated: %s: %w", s, err)
	}
	return dom.OuterHTML(clone)
}

func (a *Adapter) Code(code, info string, escaped bool) (string, error) {
	content := strings.TrimRight(code, "\n") + "\n"
	if !escaped {
		content = markdown.Escape(content)
	}
	var lang *string
	if fields := strings.Fields(info); len(fields) > 0 {
		lang = &fields[0]
	}
	return a.apply(slot.CodeBlock,
		params.Content(ParamContent, content),
		params.OptionalAttribute(ParamInfoString, lang, "data-language"),
	)
}

func (a *Adapter) Blockquote(quote string) (string, error) {
	return a.apply(slot.BlockQuote, params.Content(ParamContent, quote))
}

func (a *Adapter) HTML(markup string, _ bool) (string, error) {
	if a.sanitizer != nil {
		return a.sanitizer.Sanitize(markup), nil
	}
	return markup, nil
}

func (a *Adapter) Heading(text string, level int, _ string) (string, error) {
	s, ok := slot.Heading(level)
	if !ok {
		return "", unknownHeadingLevelError(level)
	}
	return a.apply(s, params.Content(ParamContent, text))
}

func (a *Adapter) Hr() (string, error) {
	return a.apply(slot.ThematicBreak)
}

func (a *Adapter) List(body string, ordered bool, start *int) (string, error) {
	if !ordered {
		return a.apply(slot.UnorderedList, params.Content(ParamContent, body))
	}
	values := []params.Parameter{params.Content(ParamContent, body)}
	if start != nil && *start != 1 {
		values = append(values, params.Attribute(ParamStart, strconv.Itoa(*start), "start"))
	}
	return a.apply(slot.OrderedList, values...)
}

func (a *Adapter) ListItem(text string, ordered, _, _ bool) (string, error) {
	s := slot.UnorderedListItem
	if ordered {
		s = slot.OrderedListItem
	}
	return a.apply(s, params.Content(ParamContent, text))
}

// Checkbox renders task markers as plain text.
func (a *Adapter) Checkbox(checked bool) (string, error) {
	if checked {
		return "[x] ", nil
	}
	return "[ ] ", nil
}

func (a *Adapter) Paragraph(text string) (string, error) {
	return a.apply(slot.Paragraph, params.Content(ParamContent, text))
}

func (a *Adapter) Table(header, body string) (string, error) {
	return a.apply(slot.Table,
		params.Content(ParamHeader, header),
		params.Content(ParamBody, body),
	)
}

func (a *Adapter) TableRow(content string, flags markdown.RowFlags) (string, error) {
	s := slot.TableRow
	if flags.Header {
		s = slot.TableHeader
	}
	return a.apply(s, params.Content(ParamContent, content))
}

func (a *Adapter) TableCell(content string, flags markdown.CellFlags) (string, error) {
	s := slot.TableRowCell
	if flags.Header {
		s = slot.TableHeaderCell
	}
	var align *string
	if flags.Align != markdown.AlignNone {
		value := string(flags.Align)
		align = &value
	}
	return a.apply(s,
		params.Content(ParamContent, content),
		params.OptionalAttribute(ParamAlign, align, "align"),
	)
}

func (a *Adapter) Strong(text string) (string, error) {
	return a.apply(slot.StrongEmphasis, params.Content(ParamContent, text))
}

func (a *Adapter) Em(text string) (string, error) {
	return a.apply(slot.Emphasis, params.Content(ParamContent, text))
}

func (a *Adapter) CodeSpan(code string) (string, error) {
	return a.apply(slot.CodeSpan, params.Content(ParamContent, code))
}

func (a *Adapter) Br() (string, error) {
	return a.apply(slot.HardLineBreak)
}

func (a *Adapter) Del(text string) (string, error) {
	return a.apply(slot.Strikethrough, params.Content(ParamContent, text))
}

func (a *Adapter) Link(href string, title *string, text string) (string, error) {
	return a.apply(slot.Link,
		params.Content(ParamContent, text),
		params.OptionalAttribute(ParamTitle, title, "title"),
		urlParameter(href, "href"),
	)
}

// Image picks the video slot when the URL extension maps to a video type.
func (a *Adapter) Image(href string, title *string, text string) (string, error) {
	url := urlParameter(href, "src")
	s := slot.Image
	if url.Present && markdown.IsVideo(url.Value) {
		s = slot.Video
	}
	return a.apply(s,
		params.Attribute(ParamDescription, text, "alt"),
		params.OptionalAttribute(ParamTitle, title, "title"),
		url,
	)
}

func (a *Adapter) Text(text string) (string, error) {
	return text, nil
}

func urlParameter(href, attribute string) params.Parameter {
	clean, ok := markdown.CleanURL(href)
	if !ok {
		return params.OptionalAttribute(ParamURL, nil, attribute)
	}
	return params.Attribute(ParamURL, clean, attribute)
}
