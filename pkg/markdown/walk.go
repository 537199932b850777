package markdown

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// Render parses source and feeds every node to r, returning the concatenated
// markup.
func Render(r Renderer, source []byte, options ...Option) (string, error) {
	doc := Parse(source, options...)
	return Walk(r, doc, source)
}

// Walk renders an already parsed document.
func Walk(r Renderer, doc ast.Node, source []byte) (string, error) {
	w := &walker{r: r, src: source}
	return w.render(doc)
}

type walker struct {
	r   Renderer
	src []byte
}

func (w *walker) children(n ast.Node) (string, error) {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		out, err := w.render(c)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
	}
	return b.String(), nil
}

func (w *walker) render(node ast.Node) (string, error) {
	switch n := node.(type) {
	case *ast.Heading:
		text, err := w.children(n)
		if err != nil {
			return "", err
		}
		return w.r.Heading(text, n.Level, plainText(n, w.src))

	case *ast.Paragraph:
		text, err := w.children(n)
		if err != nil {
			return "", err
		}
		return w.r.Paragraph(text)

	case *ast.TextBlock:
		return w.children(n)

	case *ast.ThematicBreak:
		return w.r.Hr()

	case *ast.FencedCodeBlock:
		info := ""
		if n.Info != nil {
			info = string(n.Info.Segment.Value(w.src))
		}
		return w.r.Code(lines(n, w.src), info, false)

	case *ast.CodeBlock:
		return w.r.Code(lines(n, w.src), "", false)

	case *ast.Blockquote:
		quote, err := w.children(n)
		if err != nil {
			return "", err
		}
		return w.r.Blockquote(quote)

	case *ast.HTMLBlock:
		markup := lines(n, w.src)
		if n.HasClosure() {
			markup += string(n.ClosureLine.Value(w.src))
		}
		return w.r.HTML(markup, true)

	case *ast.List:
		body, err := w.children(n)
		if err != nil {
			return "", err
		}
		var start *int
		if n.IsOrdered() {
			value := n.Start
			start = &value
		}
		return w.r.List(body, n.IsOrdered(), start)

	case *ast.ListItem:
		text, err := w.children(n)
		if err != nil {
			return "", err
		}
		ordered := false
		if list, ok := n.Parent().(*ast.List); ok {
			ordered = list.IsOrdered()
		}
		task, checked := taskState(n)
		return w.r.ListItem(text, ordered, task, checked)

	case *ast.Text:
		out, err := w.r.Text(escapeText(n.Value(w.src), n.IsRaw()))
		if err != nil {
			return "", err
		}
		switch {
		case n.HardLineBreak():
			br, err := w.r.Br()
			if err != nil {
				return "", err
			}
			out += br
		case n.SoftLineBreak():
			out += "\n"
		}
		return out, nil

	case *ast.String:
		if n.IsCode() {
			return string(n.Value), nil
		}
		return w.r.Text(escapeText(n.Value, n.IsRaw()))

	case *ast.CodeSpan:
		var b bytes.Buffer
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			t, ok := c.(*ast.Text)
			if !ok {
				continue
			}
			value := t.Segment.Value(w.src)
			if bytes.HasSuffix(value, []byte("\n")) {
				b.Write(value[:len(value)-1])
				b.WriteByte(' ')
				continue
			}
			b.Write(value)
		}
		return w.r.CodeSpan(string(util.EscapeHTML(b.Bytes())))

	case *ast.Emphasis:
		text, err := w.children(n)
		if err != nil {
			return "", err
		}
		if n.Level >= 2 {
			return w.r.Strong(text)
		}
		return w.r.Em(text)

	case *ast.Link:
		text, err := w.children(n)
		if err != nil {
			return "", err
		}
		return w.r.Link(string(n.Destination), optional(n.Title), text)

	case *ast.AutoLink:
		url := n.URL(w.src)
		if n.AutoLinkType == ast.AutoLinkEmail && !bytes.HasPrefix(bytes.ToLower(url), []byte("mailto:")) {
			url = append([]byte("mailto:"), url...)
		}
		text, err := w.r.Text(escapeText(n.Label(w.src), false))
		if err != nil {
			return "", err
		}
		return w.r.Link(string(url), nil, text)

	case *ast.Image:
		return w.r.Image(string(n.Destination), optional(n.Title), plainText(n, w.src))

	case *ast.RawHTML:
		var b strings.Builder
		for i := 0; i < n.Segments.Len(); i++ {
			segment := n.Segments.At(i)
			b.Write(segment.Value(w.src))
		}
		return w.r.HTML(b.String(), false)

	case *east.Table:
		var header, body strings.Builder
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			out, err := w.render(c)
			if err != nil {
				return "", err
			}
			if _, ok := c.(*east.TableHeader); ok {
				header.WriteString(out)
				continue
			}
			body.WriteString(out)
		}
		return w.r.Table(header.String(), body.String())

	case *east.TableHeader:
		cells, err := w.children(n)
		if err != nil {
			return "", err
		}
		return w.r.TableRow(cells, RowFlags{Header: true})

	case *east.TableRow:
		cells, err := w.children(n)
		if err != nil {
			return "", err
		}
		return w.r.TableRow(cells, RowFlags{})

	case *east.TableCell:
		content, err := w.children(n)
		if err != nil {
			return "", err
		}
		_, header := n.Parent().(*east.TableHeader)
		return w.r.TableCell(content, CellFlags{Header: header, Align: alignment(n.Alignment)})

	case *east.Strikethrough:
		text, err := w.children(n)
		if err != nil {
			return "", err
		}
		return w.r.Del(text)

	case *east.TaskCheckBox:
		return w.r.Checkbox(n.IsChecked)
	}

	return w.children(node)
}

func lines(n ast.Node, source []byte) string {
	var b strings.Builder
	segments := n.Lines()
	for i := 0; i < segments.Len(); i++ {
		segment := segments.At(i)
		b.Write(segment.Value(source))
	}
	return b.String()
}

func taskState(item *ast.ListItem) (task, checked bool) {
	first := item.FirstChild()
	if first == nil {
		return false, false
	}
	box, ok := first.FirstChild().(*east.TaskCheckBox)
	if !ok {
		return false, false
	}
	return true, box.IsChecked
}

func optional(value []byte) *string {
	if len(value) == 0 {
		return nil
	}
	s := string(value)
	return &s
}

func alignment(a east.Alignment) Alignment {
	switch a {
	case east.AlignLeft:
		return AlignLeft
	case east.AlignCenter:
		return AlignCenter
	case east.AlignRight:
		return AlignRight
	default:
		return AlignNone
	}
}

// plainText concatenates the unescaped text beneath n.
func plainText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		case *ast.AutoLink:
			b.Write(t.Label(source))
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

func escapeText(value []byte, raw bool) string {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	if raw {
		gmhtml.DefaultWriter.RawWrite(w, value)
	} else {
		gmhtml.DefaultWriter.Write(w, value)
	}
	_ = w.Flush()
	return buf.String()
}
