package tracemem

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

type traceConfig struct {
	before string
	after  string
}

// TraceOption adjusts the labels used by Trace and TraceFunc.
type TraceOption func(*traceConfig)

// WithBefore overrides the label of the sample taken before the wrapped
// function runs.
func WithBefore(label string) TraceOption {
	return func(c *traceConfig) { c.before = label }
}

// WithAfter overrides the label of the sample taken after the wrapped
// function returns.
func WithAfter(label string) TraceOption {
	return func(c *traceConfig) { c.after = label }
}

// Trace wraps fn so that every invocation records a sample before and after
// it runs, returning fn's result unchanged. Labels default to
// "Before <name>()" and "After <name>()" derived from the function's name.
// If fn panics, the panic propagates and the after sample is not recorded.
func Trace[T any](fn func() T, opts ...TraceOption) func() T {
	cfg := traceLabels(fn, opts)
	return func() T {
		Point(cfg.before)
		out := fn()
		Point(cfg.after)
		return out
	}
}

// TraceFunc is Trace for functions without a result.
func TraceFunc(fn func(), opts ...TraceOption) func() {
	cfg := traceLabels(fn, opts)
	return func() {
		Point(cfg.before)
		fn()
		Point(cfg.after)
	}
}

func traceLabels(fn any, opts []TraceOption) traceConfig {
	var cfg traceConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.before == "" || cfg.after == "" {
		name := funcName(fn)
		if cfg.before == "" {
			cfg.before = fmt.Sprintf("Before %s()", name)
		}
		if cfg.after == "" {
			cfg.after = fmt.Sprintf("After %s()", name)
		}
	}
	return cfg
}

// funcName resolves a short display name for fn. Anonymous functions keep
// the runtime's funcN suffix, which is still unambiguous within a report.
func funcName(fn any) string {
	f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if f == nil {
		return "func"
	}
	name := f.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}
