package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Field is one structured key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value any
}

// String creates a Field holding a string value.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates a Field holding an int value.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Uint64 creates a Field holding a uint64 value.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 creates a Field holding a float64 value.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Err creates a Field holding an error under the "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the minimal structured logging surface used across the module.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// ZerologAdapter backs Logger with a zerolog.Logger.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// Verify interface compliance.
var _ Logger = (*ZerologAdapter)(nil)

// NewZerologAdapter wraps an existing zerolog logger.
func NewZerologAdapter(l zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: l}
}

// NewLogger creates a Logger writing JSON lines to w, tagged with the given
// component name.
func NewLogger(w io.Writer, component string) Logger {
	zl := zerolog.New(w).With().Timestamp().Str("component", component).Logger()
	return &ZerologAdapter{logger: zl}
}

// NewLeveled creates a Logger like NewLogger, filtered to the given level.
// Unknown or empty levels disable output entirely, which is the default for
// library-internal logging.
func NewLeveled(w io.Writer, component, level string) Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.Disabled
	}
	zl := zerolog.New(w).Level(lvl).With().Timestamp().Str("component", component).Logger()
	return &ZerologAdapter{logger: zl}
}

// NewDefaultLogger creates a Logger writing to standard error.
func NewDefaultLogger() Logger {
	return NewLogger(os.Stderr, "tracemem")
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return &ZerologAdapter{logger: zerolog.Nop()}
}

// Debug logs a message at debug level.
func (a *ZerologAdapter) Debug(msg string, fields ...Field) { emit(a.logger.Debug(), msg, fields) }

// Info logs a message at info level.
func (a *ZerologAdapter) Info(msg string, fields ...Field) { emit(a.logger.Info(), msg, fields) }

// Warn logs a message at warn level.
func (a *ZerologAdapter) Warn(msg string, fields ...Field) { emit(a.logger.Warn(), msg, fields) }

// Error logs a message at error level.
func (a *ZerologAdapter) Error(msg string, fields ...Field) { emit(a.logger.Error(), msg, fields) }

func emit(ev *zerolog.Event, msg string, fields []Field) {
	for _, f := range fields {
		if err, ok := f.Value.(error); ok {
			ev = ev.AnErr(f.Key, err)
			continue
		}
		ev = ev.Interface(f.Key, f.Value)
	}
	ev.Msg(msg)
}
