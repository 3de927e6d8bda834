package tracemem

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestCollector_Gather(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	if err := reg.Register(NewCollector()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}

	got := make(map[string]bool, len(families))
	for _, mf := range families {
		got[mf.GetName()] = true
	}
	for _, name := range []string{
		"tracemem_log_samples",
		"tracemem_last_sample_bytes",
		"tracemem_resident_bytes",
	} {
		if !got[name] {
			t.Errorf("missing metric family %q", name)
		}
	}
}

func TestCollector_SampleCountMatchesLog(t *testing.T) {
	Point("collector count/" + t.Name())

	reg := prometheus.NewPedanticRegistry()
	if err := reg.Register(NewCollector()); err != nil {
		t.Fatalf("Register: %v", err)
	}
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}

	for _, mf := range families {
		if mf.GetName() != "tracemem_log_samples" {
			continue
		}
		got := mf.GetMetric()[0].GetGauge().GetValue()
		if want := float64(Logs().Len()); got != want {
			t.Errorf("tracemem_log_samples = %v, want %v", got, want)
		}
		return
	}
	t.Fatal("tracemem_log_samples not gathered")
}

func TestCollector_DoesNotGrowLog(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	if err := reg.Register(NewCollector()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	before := Logs().Len()
	for range 3 {
		if _, err := reg.Gather(); err != nil {
			t.Fatalf("Gather: %v", err)
		}
	}
	if got := Logs().Len(); got != before {
		t.Errorf("log length changed from %d to %d across Gather calls", before, got)
	}
}
