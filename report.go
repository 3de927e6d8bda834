package tracemem

import (
	"fmt"
	"io"
	"math"
	"os"
)

const bytesPerMB = 1 << 20

// RoundFunc rounds a megabyte value for display. A nil RoundFunc keeps full
// precision.
type RoundFunc func(float64) float64

// Round returns a RoundFunc keeping the given number of decimal digits.
func Round(digits int) RoundFunc {
	scale := math.Pow(10, float64(digits))
	return func(v float64) float64 {
		return math.Round(v*scale) / scale
	}
}

// Signif returns a RoundFunc keeping the given number of significant
// figures.
func Signif(figures int) RoundFunc {
	return func(v float64) float64 {
		if v == 0 || figures <= 0 {
			return v
		}
		exp := math.Ceil(math.Log10(math.Abs(v)))
		scale := math.Pow(10, float64(figures)-exp)
		return math.Round(v*scale) / scale
	}
}

// MB converts a byte count to megabytes, applying round when given.
func MB(memory uint64, round RoundFunc) float64 {
	mb := float64(memory) / bytesPerMB
	if round == nil {
		return mb
	}
	return round(mb)
}

// Print renders the sample log to standard output, one line per sample.
func Print() {
	Fprint(os.Stdout)
}

// Fprint renders the sample log to w. Each line carries the zero-based
// index, the reading rounded to two-decimal megabytes, and the stored
// label. A label recording an absent value renders empty.
func Fprint(w io.Writer) {
	fprintLog(w, Logs())
}

func fprintLog(w io.Writer, l *Log) {
	i := 0
	for s := range l.All() {
		label := s.Label
		if label == absentLabel {
			label = ""
		}
		fmt.Fprintf(w, "%-4d %-11s → %s\n", i, fmt.Sprintf("%.2f MB", MB(s.Memory, nil)), label)
		i++
	}
}
