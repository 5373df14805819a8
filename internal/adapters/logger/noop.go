package logger

import "github.com/acoyfellow/doclint/internal/ports"

// NoopLogger discards all messages. Used in tests and as a fallback when
// no logger is configured.
type NoopLogger struct{}

// NewNoopLogger creates a logger that discards everything.
func NewNoopLogger() ports.Logger {
	return &NoopLogger{}
}

func (n *NoopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (n *NoopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (n *NoopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (n *NoopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (n *NoopLogger) Close() error                                   { return nil }
