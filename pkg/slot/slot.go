// Package slot enumerates the template insertion points, one per Markdown
// construct kind. Slot names double as the values of the data-decor-element
// marker attribute in template documents.
package slot

// Slot identifies a template element by construct kind.
type Slot int

const (
	Heading1 Slot = iota
	Heading2
	Heading3
	Heading4
	Heading5
	Heading6
	ThematicBreak
	Paragraph
	CodeBlock
	BlockQuote
	Table
	TableHeader
	TableHeaderCell
	TableRow
	TableRowCell
	OrderedList
	OrderedListItem
	UnorderedList
	UnorderedListItem
	Link
	Image
	Video
	CodeSpan
	Emphasis
	StrongEmphasis
	Strikethrough
	HardLineBreak

	// Count is the number of slots. It is not a slot.
	Count int = iota
)

var names = [Count]string{
	Heading1:          "heading1",
	Heading2:          "heading2",
	Heading3:          "heading3",
	Heading4:          "heading4",
	Heading5:          "heading5",
	Heading6:          "heading6",
	ThematicBreak:     "thematic_break",
	Paragraph:         "paragraph",
	CodeBlock:         "code_block",
	BlockQuote:        "block_quote",
	Table:             "table",
	TableHeader:       "table_header",
	TableHeaderCell:   "table_header_cell",
	TableRow:          "table_row",
	TableRowCell:      "table_row_cell",
	OrderedList:       "ordered_list",
	OrderedListItem:   "ordered_list_item",
	UnorderedList:     "unordered_list",
	UnorderedListItem: "unordered_list_item",
	Link:              "link",
	Image:             "image",
	Video:             "video",
	CodeSpan:          "code_span",
	Emphasis:          "emphasis",
	StrongEmphasis:    "strong_emphasis",
	Strikethrough:     "strikethrough",
	HardLineBreak:     "hard_line_break",
}

var byName = func() map[string]Slot {
	out := make(map[string]Slot, Count)
	for i, name := range names {
		out[name] = Slot(i)
	}
	return out
}()

// String returns the marker name of the slot.
func (s Slot) String() string {
	if !s.Valid() {
		return "slot(unknown)"
	}
	return names[s]
}

// Valid reports whether s is one of the declared slots.
func (s Slot) Valid() bool {
	return s >= 0 && int(s) < Count
}

// Parse resolves a marker name. Names are case sensitive.
func Parse(name string) (Slot, bool) {
	s, ok := byName[name]
	return s, ok
}

// All returns every slot in declaration order.
func All() []Slot {
	out := make([]Slot, Count)
	for i := range out {
		out[i] = Slot(i)
	}
	return out
}

// Heading returns the slot for a heading level. Only levels 1 to 6 exist.
func Heading(level int) (Slot, bool) {
	if level < 1 || level > 6 {
		return 0, false
	}
	return Heading1 + Slot(level-1), true
}

// Names converts slots to their marker names, preserving order.
func Names(slots []Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}
