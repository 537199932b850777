package render

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/goliatone/go-decor/pkg/dom"
)

const (
	themeAttribute        = "data-theme"
	themeVariantAttribute = "data-theme-variant"
	themeStyleAttribute   = "data-decor-theme"
)

// ApplyTheme marks the document root with the theme name and variant and
// appends a :root rule carrying the theme CSS variables to the head. A nil
// config leaves doc untouched.
func ApplyTheme(doc *html.Node, cfg *theme.RendererConfig) {
	if cfg == nil {
		return
	}
	if root := dom.DocumentElement(doc); root != nil {
		if cfg.Theme != "" {
			dom.SetAttr(root, themeAttribute, cfg.Theme)
		}
		if cfg.Variant != "" {
			dom.SetAttr(root, themeVariantAttribute, cfg.Variant)
		}
	}

	css := cssVarsStyle(cfg.CSSVars)
	head := dom.Head(doc)
	if css == "" || head == nil {
		return
	}
	style := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Style,
		Data:     "style",
		Attr:     []html.Attribute{{Key: themeStyleAttribute, Val: cfg.Theme}},
	}
	style.AppendChild(&html.Node{Type: html.TextNode, Data: css})
	head.AppendChild(style)
}

// cssVarsStyle renders vars as a :root rule sorted by property name. Keys
// gain a "--" prefix when missing; an explicit "--name" key wins over a bare
// "name" for the same property. Entries that could leave the style element or
// the rule are dropped.
func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	props := make(map[string]string, len(vars))
	for key, value := range vars {
		if !validCSSVar(key, value) {
			continue
		}
		name := key
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
			if explicit, ok := vars[name]; ok && validCSSVar(name, explicit) {
				continue
			}
		}
		props[name] = value
	}
	if len(props) == 0 {
		return ""
	}
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, name := range names {
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(props[name])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

func validCSSVar(key, value string) bool {
	name := strings.TrimPrefix(key, "--")
	if name == "" || strings.ContainsAny(name, "<>{};: \t\r\n") {
		return false
	}
	return !strings.ContainsAny(value, "<>{}")
}
