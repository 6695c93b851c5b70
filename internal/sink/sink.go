// Package sink provides diagnostic output sinks for inspecting submitted values.
package sink

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Sink accepts an arbitrary value for inspection. Implementations must not
// fail the caller.
type Sink interface {
	Inspect(ctx context.Context, label string, v any)
}

// LogSink writes values to a structured logger.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a LogSink. A nil logger uses slog.Default().
func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Inspect logs v at info level under the "values" key.
func (s *LogSink) Inspect(ctx context.Context, label string, v any) {
	logger := s.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, label, "values", v)
}

// WriterSink prints values as plain lines, for the CLI.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink creates a WriterSink.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Inspect writes "label: value".
func (s *WriterSink) Inspect(_ context.Context, label string, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "%s: %+v\n", label, v)
}
