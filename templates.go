package decor

import (
	"io/fs"

	"github.com/goliatone/go-decor/pkg/renderers/templated"
)

// EmbeddedTemplates exposes the built-in template and showcase content so
// callers can reuse or extend them without importing the renderer package.
func EmbeddedTemplates() fs.FS {
	return templated.TemplatesFS()
}

// DefaultTemplate returns the embedded template markup. It defines every slot.
func DefaultTemplate() string {
	return templated.DefaultTemplate()
}

// DefaultContent returns the embedded Markdown showcase.
func DefaultContent() string {
	return templated.DefaultContent()
}
