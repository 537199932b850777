// Package source describes where Markdown documents and HTML templates come
// from. Loaders resolve a Source to raw bytes; the concrete implementation lives
// in internal/loader and is constructed through the orchestrator.
package source
