package orchestrator

import (
	"bytes"
	"context"
	"fmt"
	"maps"

	"gopkg.in/yaml.v3"
)

// Document is the Markdown payload and parameters a Transformer may rewrite
// before rendering.
type Document struct {
	Name       string
	Markdown   []byte
	Parameters map[string]string
}

// Transformer mutates a Document before it reaches the renderer.
type Transformer interface {
	Transform(ctx context.Context, doc *Document) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, doc *Document) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, doc *Document) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, doc)
}

var frontMatterFence = []byte("---")

// FrontMatterTransformer strips a leading YAML front matter block and exposes
// its scalar values as document parameters:
//
//	---
//	title: Release notes
//	lang: en
//	---
//	# Heading
//
// Parameters already present on the request win over front matter values.
type FrontMatterTransformer struct{}

func (FrontMatterTransformer) Transform(_ context.Context, doc *Document) error {
	if doc == nil {
		return nil
	}
	header, body, ok := splitFrontMatter(doc.Markdown)
	if !ok {
		return nil
	}

	var values map[string]any
	if err := yaml.Unmarshal(header, &values); err != nil {
		return fmt.Errorf("front matter in %s: %w", doc.Name, err)
	}

	params := make(map[string]string, len(values)+len(doc.Parameters))
	for key, value := range values {
		switch v := value.(type) {
		case nil, map[string]any, []any:
			continue
		default:
			params[key] = fmt.Sprint(v)
		}
	}
	maps.Copy(params, doc.Parameters)

	doc.Markdown = body
	doc.Parameters = params
	return nil
}

func splitFrontMatter(source []byte) (header, body []byte, ok bool) {
	rest, found := bytes.CutPrefix(source, frontMatterFence)
	if !found {
		return nil, source, false
	}
	rest, found = cutLineEnd(rest)
	if !found {
		return nil, source, false
	}

	offset := 0
	for offset <= len(rest) {
		line := rest[offset:]
		end := bytes.IndexByte(line, '\n')
		if end >= 0 {
			line = line[:end]
		}
		if string(bytes.TrimRight(line, " \t\r")) == string(frontMatterFence) {
			header = rest[:offset]
			if end < 0 {
				return header, nil, true
			}
			return header, rest[offset+end+1:], true
		}
		if end < 0 {
			break
		}
		offset += end + 1
	}
	return nil, source, false
}

func cutLineEnd(b []byte) ([]byte, bool) {
	trimmed := bytes.TrimLeft(b, " \t")
	if rest, ok := bytes.CutPrefix(trimmed, []byte("\r\n")); ok {
		return rest, true
	}
	return bytes.CutPrefix(trimmed, []byte("\n"))
}
