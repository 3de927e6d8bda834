package source

import "testing"

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		wantName string
		wantErr  bool
	}{
		{"rss", NameRSS, NameRSS, false},
		{"empty defaults to rss", "", NameRSS, false},
		{"heap", NameHeap, NameHeap, false},
		{"unknown", "bogus", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := New(tt.source)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("New(%q) succeeded, want error", tt.source)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%q): %v", tt.source, err)
			}
			if src.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", src.Name(), tt.wantName)
			}
		})
	}
}

func TestRSS_ReadsNonZero(t *testing.T) {
	src, err := NewRSS()
	if err != nil {
		t.Fatalf("NewRSS: %v", err)
	}
	b, err := src.CurrentBytes()
	if err != nil {
		t.Fatalf("CurrentBytes: %v", err)
	}
	if b == 0 {
		t.Error("expected a non-zero resident size for a running process")
	}
}

func TestHeap_ReadsNonZero(t *testing.T) {
	b, err := Heap{}.CurrentBytes()
	if err != nil {
		t.Fatalf("CurrentBytes: %v", err)
	}
	if b == 0 {
		t.Error("expected a non-zero heap size in a running test binary")
	}
}
