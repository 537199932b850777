package source

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// Source identifies the origin of a Markdown document or template.
type Source interface {
	Kind() Kind
	Location() string
}

// Inline is implemented by sources that carry their payload.
type Inline interface {
	Source
	Bytes() []byte
}

// Kind enumerates the loader modalities.
type Kind string

const (
	KindFile  Kind = "file"
	KindFS    Kind = "fs"
	KindURL   Kind = "url"
	KindBytes Kind = "bytes"
)

type fileSource struct {
	path string
}

func (s fileSource) Location() string { return s.path }
func (s fileSource) Kind() Kind       { return KindFile }

// FromFile returns a Source pointing to a file path.
func FromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Location() string { return s.name }
func (s fsSource) Kind() Kind       { return KindFS }

// FromFS returns a Source identifying a resource inside the loader's fs.FS.
func FromFS(name string) Source {
	return fsSource{name: name}
}

type urlSource struct {
	raw string
}

func (s urlSource) Location() string { return s.raw }
func (s urlSource) Kind() Kind       { return KindURL }

// ParseURL validates raw and returns a URL Source.
func ParseURL(raw string) (Source, error) {
	if raw == "" {
		return nil, fmt.Errorf("source: empty URL")
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return nil, fmt.Errorf("source: invalid URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("source: unsupported URL scheme %q", u.Scheme)
	}
	return urlSource{raw: raw}, nil
}

// FromURL is ParseURL for static configuration. It panics on an invalid URL.
func FromURL(raw string) Source {
	src, err := ParseURL(raw)
	if err != nil {
		panic(err)
	}
	return src
}

type bytesSource struct {
	name string
	data []byte
}

func (s bytesSource) Location() string { return s.name }
func (s bytesSource) Kind() Kind       { return KindBytes }
func (s bytesSource) Bytes() []byte    { return s.data }

// FromBytes wraps an in-memory payload. name is only used in messages.
func FromBytes(name string, data []byte) Inline {
	if name == "" {
		name = "inline"
	}
	return bytesSource{name: name, data: data}
}

// Detect maps a command line argument to a URL or file Source.
func Detect(location string) (Source, error) {
	lower := strings.ToLower(location)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return ParseURL(location)
	}
	if location == "" {
		return nil, fmt.Errorf("source: empty location")
	}
	return FromFile(location), nil
}
