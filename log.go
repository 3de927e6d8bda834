package tracemem

import (
	"fmt"
	"iter"
	"slices"
	"sync"
)

// Sample is one labeled memory reading, in bytes. Immutable once stored.
type Sample struct {
	Label  string
	Memory uint64
}

// Log is an ordered, append-restricted collection of samples. The process
// owns exactly one Log, reachable through Logs; samples enter it only as a
// side effect of calling Point. All methods are safe for concurrent use.
type Log struct {
	mu      sync.RWMutex
	samples []Sample
	counts  map[string]int // submissions per raw label
}

func newLog() *Log {
	return &Log{counts: make(map[string]int)}
}

// append disambiguates the raw label and stores the sample. It is the only
// mutating path, reachable solely from Point and the bootstrap sample.
func (l *Log) append(label string, memory uint64) Sample {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.counts[label]++
	stored := label
	if n := l.counts[label]; n > 1 {
		stored = fmt.Sprintf("%s-%d", label, n)
	}

	s := Sample{Label: stored, Memory: memory}
	l.samples = append(l.samples, s)
	return s
}

// Append always fails with an UnauthorizedMutationError: the log grows only
// through Point. The log is left unchanged.
func (l *Log) Append(Sample) error {
	return UnauthorizedMutationError{Op: "append"}
}

// Set always fails with an IllegalMutationError, for any index, valid or
// not. The log is left unchanged.
func (l *Log) Set(i int, _ Sample) error {
	return IllegalMutationError{Index: i}
}

// Len returns the number of stored samples.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.samples)
}

// Get returns the sample at position i. Negative indices count from the
// end, so Get(-1) is the most recent sample. An index outside the log's
// bounds fails with an OutOfRangeError.
func (l *Log) Get(i int) (Sample, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	j := i
	if j < 0 {
		j += len(l.samples)
	}
	if j < 0 || j >= len(l.samples) {
		return Sample{}, OutOfRangeError{Index: i, Len: len(l.samples)}
	}
	return l.samples[j], nil
}

// Slice returns the samples in [lo, hi) as a plain slice, not a Log.
// Negative bounds count from the end; out-of-range bounds truncate to an
// empty or shorter result rather than failing.
func (l *Log) Slice(lo, hi int) []Sample {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n := len(l.samples)
	lo = clampIndex(lo, n)
	hi = clampIndex(hi, n)
	if lo >= hi {
		return nil
	}
	return slices.Clone(l.samples[lo:hi])
}

func clampIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	return min(max(i, 0), n)
}

// All returns an in-order iterator over the stored samples. The sequence is
// restartable: each range loop walks the log from the beginning.
func (l *Log) All() iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		for _, s := range l.snapshot() {
			if !yield(s) {
				return
			}
		}
	}
}

// Labels returns the stored, already-disambiguated labels in order.
func (l *Log) Labels() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	labels := make([]string, len(l.samples))
	for i, s := range l.samples {
		labels[i] = s.Label
	}
	return labels
}

// Memories returns the stored memory readings in order.
func (l *Log) Memories() []uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	memories := make([]uint64, len(l.samples))
	for i, s := range l.samples {
		memories[i] = s.Memory
	}
	return memories
}

// Filter returns the samples satisfying pred, in insertion order.
func (l *Log) Filter(pred func(Sample) bool) []Sample {
	var out []Sample
	for _, s := range l.snapshot() {
		if pred(s) {
			out = append(out, s)
		}
	}
	return out
}

// Map applies fn to every sample of l in insertion order and returns the
// results. It is a free function because methods cannot carry type
// parameters.
func Map[T any](l *Log, fn func(Sample) T) []T {
	samples := l.snapshot()
	out := make([]T, len(samples))
	for i, s := range samples {
		out[i] = fn(s)
	}
	return out
}

func (l *Log) snapshot() []Sample {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.samples)
}
