// Package markdown binds the goldmark lexer to a callback style Renderer. The
// walker turns each AST node into one Renderer call, rendering children first
// and concatenating the returned markup.
package markdown

// Alignment is a table cell alignment. AlignNone means no alignment was given.
type Alignment string

const (
	AlignNone   Alignment = ""
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// RowFlags describes a table row.
type RowFlags struct {
	Header bool
}

// CellFlags describes a table cell.
type CellFlags struct {
	Header bool
	Align  Alignment
}

// Renderer receives one call per Markdown construct. Arguments named text or
// content carry markup already produced for child nodes. A returned error stops
// the walk.
type Renderer interface {
	// Code receives the raw code block text. escaped reports whether code is
	// already HTML escaped.
	Code(code, info string, escaped bool) (string, error)
	Blockquote(quote string) (string, error)
	// HTML receives raw markup, block reports a block level HTML node.
	HTML(markup string, block bool) (string, error)
	// Heading receives the rendered text, the level and the plain text.
	Heading(text string, level int, raw string) (string, error)
	Hr() (string, error)
	// List receives its rendered items. start is nil for unordered lists.
	List(body string, ordered bool, start *int) (string, error)
	// ListItem reports whether the parent list is ordered.
	ListItem(text string, ordered, task, checked bool) (string, error)
	Checkbox(checked bool) (string, error)
	Paragraph(text string) (string, error)
	Table(header, body string) (string, error)
	TableRow(content string, flags RowFlags) (string, error)
	TableCell(content string, flags CellFlags) (string, error)

	Strong(text string) (string, error)
	Em(text string) (string, error)
	// CodeSpan receives escaped code.
	CodeSpan(code string) (string, error)
	Br() (string, error)
	Del(text string) (string, error)
	// Link receives the raw destination; title is nil when absent.
	Link(href string, title *string, text string) (string, error)
	// Image receives the raw source and the plain alternative text.
	Image(href string, title *string, text string) (string, error)
	// Text receives escaped text.
	Text(text string) (string, error)
}
