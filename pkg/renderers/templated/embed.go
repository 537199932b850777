package templated

import (
	"embed"
	"io/fs"
)

//go:embed templates/default.html templates/content.md
var embeddedTemplates embed.FS

const (
	DefaultTemplateName = "default.html"
	DefaultContentName  = "content.md"
)

// TemplatesFS exposes the embedded default template and showcase content.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// DefaultTemplate returns the embedded template markup. It holds every slot.
func DefaultTemplate() string {
	data, err := fs.ReadFile(embeddedTemplates, "templates/"+DefaultTemplateName)
	if err != nil {
		return ""
	}
	return string(data)
}

// DefaultContent returns the embedded Markdown showcase used when no input is
// given.
func DefaultContent() string {
	data, err := fs.ReadFile(embeddedTemplates, "templates/"+DefaultContentName)
	if err != nil {
		return ""
	}
	return string(data)
}
