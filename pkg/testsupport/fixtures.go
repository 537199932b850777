package testsupport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-decor/pkg/template"
)

// MustParsePage parses a complete template fixture.
func MustParsePage(t *testing.T, markup string) *template.Page {
	t.Helper()

	page, err := template.Parse(markup)
	if err != nil {
		t.Fatalf("parse template: %v", err)
	}
	return page
}

// MustParsePartialPage parses a template fixture that may omit slots.
func MustParsePartialPage(t *testing.T, markup string) *template.Page {
	t.Helper()

	page, err := template.ParsePartial(markup)
	if err != nil {
		t.Fatalf("parse partial template: %v", err)
	}
	return page
}

// LoadPage reads a template fixture from disk without requiring testing.T,
// allowing callers to wire fixtures in setup functions.
func LoadPage(path string, partial bool) (*template.Page, error) {
	if path == "" {
		return nil, errors.New("testsupport: template path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read template: %w", err)
	}
	if partial {
		return template.ParsePartial(string(data))
	}
	return template.Parse(string(data))
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
