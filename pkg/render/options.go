package render

import (
	theme "github.com/goliatone/go-theme"
)

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the template page.
type RenderOptions struct {
	// Parameters resolves param:<name> references found in marker attributes of
	// the template document and its slot elements. Empty values are ignored so
	// the template's own text survives.
	Parameters map[string]string
	// SanitizeHTML runs raw HTML found in the Markdown source through the UGC
	// policy before it reaches the output. Off by default since raw HTML passes
	// through verbatim.
	SanitizeHTML bool
	// Extensions selects goldmark extensions by name (gfm, table, strikethrough,
	// linkify, tasklist, typographer). Empty means the default GFM set.
	Extensions []string
	// Theme decorates the document root with the selected theme and variant and
	// injects its CSS variables into the head.
	Theme *theme.RendererConfig
}
