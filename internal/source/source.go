// Package source provides the measurement sources backing memory samples.
package source

import (
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v4/process"
)

// Source reads the current memory footprint of this process, in bytes.
// Implementations are bound to the current process at construction time and
// need no arguments afterwards.
type Source interface {
	// CurrentBytes returns the reading as of the call.
	CurrentBytes() (uint64, error)
	// Name identifies the source in logs.
	Name() string
}

// Names of the built-in sources, as accepted by New.
const (
	NameRSS  = "rss"
	NameHeap = "heap"
	NamePeak = "peak"
)

// New resolves a source by name, bound to the current process. An empty
// name selects the resident-memory source.
func New(name string) (Source, error) {
	switch name {
	case NameRSS, "":
		return NewRSS()
	case NameHeap:
		return Heap{}, nil
	case NamePeak:
		return newPeak()
	default:
		return nil, fmt.Errorf("unknown memory source %q", name)
	}
}

// RSS reads the resident set size of the current process. It is the primary
// source: it measures the full process footprint as the OS sees it.
type RSS struct {
	proc *process.Process
}

// NewRSS binds a resident-memory source to the current process.
func NewRSS() (*RSS, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("resolving process handle: %w", err)
	}
	return &RSS{proc: p}, nil
}

// Name returns "rss".
func (r *RSS) Name() string { return NameRSS }

// CurrentBytes returns the process resident set size.
func (r *RSS) CurrentBytes() (uint64, error) {
	info, err := r.proc.MemoryInfo()
	if err != nil {
		return 0, err
	}
	return info.RSS, nil
}
