//go:build linux

package source

import "golang.org/x/sys/unix"

// Peak reads the peak resident set size reported by getrusage. Linux
// reports MaxRSS in kilobytes.
type Peak struct{}

func newPeak() (Source, error) { return Peak{}, nil }

// Name returns "peak".
func (Peak) Name() string { return NamePeak }

// CurrentBytes returns the high-water resident set size of the process.
func (Peak) CurrentBytes() (uint64, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, err
	}
	return uint64(ru.Maxrss) * 1024, nil
}
