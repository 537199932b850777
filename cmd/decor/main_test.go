package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-decor/internal/config"
	"github.com/goliatone/go-decor/pkg/renderers/templated"
)

const partialTemplate = `<html><head><title data-decor-content="param:title">T</title></head><body><h1 data-decor-element="heading1" class="x"></h1></body></html>`

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	original := config.ConfigPath
	t.Cleanup(func() { config.ConfigPath = original })
	dir := t.TempDir()
	config.ConfigPath = func() string { return filepath.Join(dir, "absent.yaml") }

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return string(data)
}

func TestNoInputPrintsHelp(t *testing.T) {
	stdout, _, err := execute(t, "")
	if !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if !strings.Contains(stdout, "decor [input...]") {
		t.Fatalf("help not printed:\n%s", stdout)
	}
}

func TestShowDefaultTemplate(t *testing.T) {
	stdout, _, err := execute(t, "", "--show-default-template")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if stdout != templated.DefaultTemplate() {
		t.Fatal("unexpected template output")
	}
}

func TestTemplateWithoutInputRendersShowcase(t *testing.T) {
	tmpl := writeFile(t, filepath.Join(t.TempDir(), "page.html"), partialTemplate)

	stdout, _, err := execute(t, "", "--template", tmpl, "--set", "title=Preview")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"<!DOCTYPE html>", ">Preview</title>", `<h1 data-decor-element="heading1" class="x">`} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("expected %q in output:\n%s", want, stdout)
		}
	}
}

func TestSingleInputToOutputFile(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, filepath.Join(dir, "doc.md"), "# Hello\n")
	output := filepath.Join(dir, "out", "doc.html")

	stdout, stderr, err := execute(t, "", input, "-o", output, "--log-level", "info")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if stdout != "" {
		t.Fatalf("stdout should be empty, got %q", stdout)
	}
	if !strings.Contains(readFile(t, output), `<h1 data-decor-element="heading1">Hello</h1>`) {
		t.Fatal("unexpected output file")
	}
	if !strings.Contains(stderr, "file written") {
		t.Fatalf("expected log line, got %q", stderr)
	}
}

func TestStdinInput(t *testing.T) {
	stdout, _, err := execute(t, "*hi*\n", "-", "--renderer", "html")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(stdout, "<p><em>hi</em></p>") {
		t.Fatalf("unexpected output:\n%s", stdout)
	}
}

func TestSeveralInputs(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, filepath.Join(dir, "a.md"), "# A\n")
	b := writeFile(t, filepath.Join(dir, "b.markdown"), "# B\n")

	if _, _, err := execute(t, "", a, b, "--jobs", "2"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(readFile(t, filepath.Join(dir, "a.html")), ">A</h1>") {
		t.Fatal("a.html not rendered")
	}
	if !strings.Contains(readFile(t, filepath.Join(dir, "b.html")), ">B</h1>") {
		t.Fatal("b.html not rendered")
	}

	if _, _, err := execute(t, "", a, b, "-o", filepath.Join(dir, "x.html")); err == nil {
		t.Fatal("expected --output to be rejected with several inputs")
	}
}

func TestSeveralInputsReportsFailures(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, filepath.Join(dir, "a.md"), "# A\n")

	_, _, err := execute(t, "", a, filepath.Join(dir, "missing.md"))
	if err == nil || !strings.Contains(err.Error(), "missing.md") {
		t.Fatalf("expected error naming missing input, got %v", err)
	}
	if !strings.Contains(readFile(t, filepath.Join(dir, "a.html")), ">A</h1>") {
		t.Fatal("successful inputs should still be written")
	}
}

func TestStrictRejectsPartialTemplate(t *testing.T) {
	tmpl := writeFile(t, filepath.Join(t.TempDir(), "page.html"), partialTemplate)
	_, _, err := execute(t, "x", "-", "--template", tmpl, "--strict")
	if err == nil || !strings.Contains(err.Error(), "missing elements in template") {
		t.Fatalf("expected missing elements error, got %v", err)
	}
}

func TestInvalidSet(t *testing.T) {
	if _, _, err := execute(t, "x", "-", "--set", "novalue"); err == nil {
		t.Fatal("expected --set error")
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, filepath.Join(dir, "decor.yaml"), "renderer: html\nparameters:\n  title: FromConfig\n")

	stdout, _, err := execute(t, "# x\n", "-", "--config", cfg)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(stdout, "<h1>x</h1>") || !strings.Contains(stdout, ">FromConfig</title>") {
		t.Fatalf("config not applied:\n%s", stdout)
	}

	stdout, _, err = execute(t, "# x\n", "-", "--config", cfg, "--renderer", "template")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(stdout, `<h1 data-decor-element="heading1">x</h1>`) {
		t.Fatalf("flag should override config:\n%s", stdout)
	}
}

func TestTemplateInit(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "page.html")

	stdout, _, err := execute(t, "", "template", "init", target)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if readFile(t, target) != templated.DefaultTemplate() || !strings.Contains(stdout, "template written") {
		t.Fatal("template not written")
	}

	writeFile(t, target, "old")
	if _, _, err := execute(t, "", "template", "init", target); err == nil {
		t.Fatal("expected refusal to overwrite without a terminal")
	}
	if readFile(t, target) != "old" {
		t.Fatal("file overwritten without confirmation")
	}

	if _, _, err := execute(t, "", "template", "init", "--force", target); err != nil {
		t.Fatalf("force: %v", err)
	}
	if readFile(t, target) != templated.DefaultTemplate() {
		t.Fatal("--force did not overwrite")
	}
}

func TestTemplateInitConfirm(t *testing.T) {
	original := confirmFunc
	t.Cleanup(func() { confirmFunc = original })

	target := writeFile(t, filepath.Join(t.TempDir(), "page.html"), "old")
	var asked string
	confirmFunc = func(message string) (bool, error) {
		asked = message
		return false, nil
	}

	if err := runTemplateInit(target, false, os.Stdin, &bytes.Buffer{}); err != nil && !errors.Is(err, errAborted) {
		if strings.Contains(err.Error(), "--force") {
			t.Skip("stdin is not a terminal")
		}
		t.Fatalf("unexpected error %v", err)
	}
	if asked == "" || readFile(t, target) != "old" {
		t.Fatalf("expected a declined prompt, asked=%q", asked)
	}
}

func TestTemplateCheck(t *testing.T) {
	dir := t.TempDir()
	partial := writeFile(t, filepath.Join(dir, "partial.html"), partialTemplate)
	complete := writeFile(t, filepath.Join(dir, "complete.html"), templated.DefaultTemplate())

	stdout, _, err := execute(t, "", "template", "check", partial)
	if err == nil || !strings.Contains(err.Error(), "26 slots missing") {
		t.Fatalf("expected missing slots error, got %v", err)
	}
	if !strings.HasPrefix(stdout, "heading2\nheading3\n") {
		t.Fatalf("unexpected listing:\n%s", stdout)
	}

	stdout, _, err = execute(t, "", "template", "check", complete)
	if err != nil || !strings.Contains(stdout, "defines every slot") {
		t.Fatalf("complete template rejected: %v %s", err, stdout)
	}
}
