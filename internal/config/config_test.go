package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoadMissingDefaultFileUsesDefaults(t *testing.T) {
	original := ConfigPath
	t.Cleanup(func() { ConfigPath = original })
	ConfigPath = func() string { return filepath.Join(t.TempDir(), "config.yaml") }

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit file")
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "decor.yaml", `
template: layouts/page.html
renderer: html
strict: true
sanitize_html: true
extensions: [table, strikethrough]
jobs: 2
log_level: debug
http_timeout: 3s
parameters:
  title: Handbook
theme:
  name: paper
  variant: dark
  css_vars:
    accent: "#f00"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := &Config{
		Template:     filepath.Join(dir, "layouts/page.html"),
		Renderer:     "html",
		Strict:       true,
		SanitizeHTML: true,
		Extensions:   []string{"table", "strikethrough"},
		Jobs:         2,
		LogLevel:     "debug",
		HTTPTimeout:  3 * time.Second,
		Parameters:   map[string]string{"title": "Handbook"},
		Theme: Theme{
			Name:    "paper",
			Variant: "dark",
			CSSVars: map[string]string{"accent": "#f00"},
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "decor.json", `{"template": "https://example.com/t.html", "jobs": 1}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Template != "https://example.com/t.html" || cfg.Jobs != 1 || cfg.Renderer != "template" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "empty renderer", mutate: func(c *Config) { c.Renderer = " " }, wantErr: true},
		{name: "negative jobs", mutate: func(c *Config) { c.Jobs = -1 }, wantErr: true},
		{name: "negative timeout", mutate: func(c *Config) { c.HTTPTimeout = -time.Second }, wantErr: true},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
