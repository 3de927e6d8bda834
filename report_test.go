package tracemem

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestMB(t *testing.T) {
	const memory = 26046118 // 24.839513778686523 MB

	tests := []struct {
		name  string
		round RoundFunc
		want  float64
	}{
		{"full precision", nil, 24.839513778686523},
		{"round to integer", Round(0), 25},
		{"round to 2 decimals", Round(2), 24.84},
		{"2 significant figures", Signif(2), 25},
		{"4 significant figures", Signif(4), 24.84},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MB(memory, tt.round)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("MB(%d) = %v, want %v", memory, got, tt.want)
			}
		})
	}
}

func TestMB_Zero(t *testing.T) {
	if got := MB(0, Signif(3)); got != 0 {
		t.Errorf("MB(0) = %v, want 0", got)
	}
}

func TestSignif(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		figures int
		want    float64
	}{
		{"value below one", 0.046, 1, 0.05},
		{"integral value keeps magnitude", 1234, 2, 1200},
		{"figures exceeding precision keep the value", 24.84, 6, 24.84},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Signif(tt.figures)(tt.value)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Signif(%d)(%v) = %v, want %v", tt.figures, tt.value, got, tt.want)
			}
		})
	}
}

func TestFprint_Format(t *testing.T) {
	l := newLog()
	l.append("tracemem init", 26046118)
	l.append(absentLabel, 2<<20)
	l.append("Testing point", 3<<20)

	var buf bytes.Buffer
	fprintLog(&buf, l)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	want := []string{
		"0    24.84 MB    → tracemem init",
		"1    2.00 MB     → ",
		"2    3.00 MB     → Testing point",
	}
	if len(lines) != len(want) {
		t.Fatalf("rendered %d lines, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i, line := range lines {
		if line != want[i] {
			t.Errorf("line %d = %q, want %q", i, line, want[i])
		}
	}
}

func TestFprint_WritesOneLinePerSample(t *testing.T) {
	Point("fprint count/" + t.Name())

	var buf bytes.Buffer
	Fprint(&buf)

	lines := strings.Count(buf.String(), "\n")
	if got := Logs().Len(); lines != got {
		t.Errorf("rendered %d lines for %d samples", lines, got)
	}
}
