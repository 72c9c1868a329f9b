package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/proppanel/internal/ports"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
	Component     string
}

// Logger implements ports.Logger on top of zerolog.
type Logger struct {
	base zerolog.Logger
}

var _ ports.Logger = (*Logger)(nil)

// New creates a configured Logger instance based on Options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	builder := zerolog.New(output).Level(level).With().Timestamp()
	if opts.Component != "" {
		builder = builder.Str("component", opts.Component)
	}
	return &Logger{base: builder.Logger()}, nil
}

// Debug writes a debug-level entry if enabled.
func (l *Logger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.write(ctx, zerolog.DebugLevel, msg, fields)
}

// Info writes an informational entry.
func (l *Logger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.write(ctx, zerolog.InfoLevel, msg, fields)
}

// Warn writes a warning entry.
func (l *Logger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.write(ctx, zerolog.WarnLevel, msg, fields)
}

// Error writes an error entry. An error value passed under the "error" key is
// rendered with zerolog's error marshaller.
func (l *Logger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.write(ctx, zerolog.ErrorLevel, msg, fields)
}

// With returns a derived logger that always writes the supplied fields.
func (l *Logger) With(fields ...interface{}) ports.Logger {
	if l == nil {
		return NewNoOp()
	}
	return &Logger{base: l.base.With().Fields(pairs(fields)).Logger()}
}

func (l *Logger) write(ctx context.Context, level zerolog.Level, msg string, fields []interface{}) {
	if l == nil {
		return
	}

	event := l.base.WithLevel(level)
	if event == nil {
		return
	}
	if len(fields) > 0 {
		event = event.Fields(pairs(fields))
	}
	if id := ports.GetCorrelationID(ctx); id != "" {
		event = event.Str("correlation_id", id)
	}
	event.Msg(msg)
}

// pairs drops a trailing key without value and any non-string key.
func pairs(fields []interface{}) []interface{} {
	out := make([]interface{}, 0, len(fields))
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok || key == "" {
			continue
		}
		out = append(out, key, fields[i+1])
	}
	return out
}
