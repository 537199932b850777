package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Option configures parsing.
type Option func(*config)

type config struct {
	extensions []string
}

// WithExtensions selects goldmark extensions by name. Unknown names are
// ignored. Without this option the GFM set plus linkify and task lists is used.
func WithExtensions(names ...string) Option {
	return func(cfg *config) {
		cfg.extensions = append(cfg.extensions, names...)
	}
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"typographer":   extension.Typographer,
}

// Extensions lists the names accepted by WithExtensions.
func Extensions() []string {
	names := make([]string, 0, len(extensionRegistry))
	for name := range extensionRegistry {
		names = append(names, name)
	}
	return names
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{
			extension.GFM,
			extension.Linkify,
			extension.TaskList,
		}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}
		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}
	return extenders
}

// Engine builds a goldmark instance with the selected extensions.
func Engine(options ...Option) goldmark.Markdown {
	cfg := config{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return goldmark.New(goldmark.WithExtensions(collectExtensions(cfg.extensions)...))
}

// Parse runs the goldmark parser and returns the document node.
func Parse(source []byte, options ...Option) ast.Node {
	return Engine(options...).Parser().Parse(text.NewReader(source))
}
