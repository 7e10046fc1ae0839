package maze

import (
	"errors"
	"testing"
)

func TestSourceBool(t *testing.T) {
	src := NewSource(1)

	for _, prob := range []float64{-0.1, 1.1, 2} {
		if _, err := src.Bool(prob); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Bool(%v) err = %v, want ErrOutOfRange", prob, err)
		}
	}

	// Degenerate probabilities are valid and fully determined.
	for i := 0; i < 100; i++ {
		if v, err := src.Bool(0); err != nil || v {
			t.Fatalf("Bool(0) = (%v, %v), want (false, nil)", v, err)
		}
		if v, err := src.Bool(1); err != nil || !v {
			t.Fatalf("Bool(1) = (%v, %v), want (true, nil)", v, err)
		}
	}
}

func TestSourceIntN(t *testing.T) {
	src := NewSource(1)

	tests := []struct {
		name       string
		start, end int
		wantErr    bool
	}{
		{name: "Valid", start: 0, end: 10},
		{name: "NegativeStart", start: -5, end: 5},
		{name: "SingleValue", start: 3, end: 4},
		{name: "Empty", start: 5, end: 5, wantErr: true},
		{name: "Inverted", start: 10, end: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				v, err := src.IntN(tt.start, tt.end)
				if tt.wantErr {
					if !errors.Is(err, ErrOutOfRange) {
						t.Fatalf("IntN(%d, %d) err = %v, want ErrOutOfRange", tt.start, tt.end, err)
					}
					return
				}
				if err != nil {
					t.Fatalf("IntN(%d, %d): %v", tt.start, tt.end, err)
				}
				if v < tt.start || v >= tt.end {
					t.Fatalf("IntN(%d, %d) = %d, outside half-open interval", tt.start, tt.end, v)
				}
			}
		})
	}
}

func TestSample(t *testing.T) {
	src := NewSource(7)

	if _, err := Sample(src, []int(nil)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Sample(empty) err = %v, want ErrOutOfRange", err)
	}

	if v, err := Sample(src, []string{"only"}); err != nil || v != "only" {
		t.Errorf("Sample(single) = (%q, %v), want (only, nil)", v, err)
	}

	items := []int{10, 20, 30}
	for i := 0; i < 100; i++ {
		v, err := Sample(src, items)
		if err != nil {
			t.Fatalf("Sample: %v", err)
		}
		if v != 10 && v != 20 && v != 30 {
			t.Fatalf("Sample returned %d, not a member", v)
		}
	}
}

func TestSourceDeterminism(t *testing.T) {
	a, b := NewSource(42), NewSource(42)
	for i := 0; i < 200; i++ {
		va, _ := a.IntN(0, 1000)
		vb, _ := b.IntN(0, 1000)
		if va != vb {
			t.Fatalf("draw %d: %d != %d for identical seeds", i, va, vb)
		}
	}
}
