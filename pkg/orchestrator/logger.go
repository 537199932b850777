package orchestrator

import "time"

// Logger receives pipeline events. *logger.Logger from internal/logger
// satisfies it.
type Logger interface {
	TemplateLoaded(location string, missing []string)
	DocumentRendered(input, renderer string, size int, duration time.Duration)
	RenderFailed(input string, err error)
	BatchCompleted(documents, failures int, duration time.Duration)
}

type nopLogger struct{}

func (nopLogger) TemplateLoaded(string, []string)                      {}
func (nopLogger) DocumentRendered(string, string, int, time.Duration) {}
func (nopLogger) RenderFailed(string, error)                           {}
func (nopLogger) BatchCompleted(int, int, time.Duration)               {}
