package scale

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBandScale(t *testing.T) {
	b := NewBand([]any{"A", "B", "C", "D"}, [2]float64{0, 100})

	if got := b.Bandwidth(); got != 25 {
		t.Errorf("Bandwidth() = %v, want 25", got)
	}
	for i, v := range []string{"A", "B", "C", "D"} {
		if got, want := b.Scale(v), float64(i)*25; got != want {
			t.Errorf("Scale(%q) = %v, want %v", v, got, want)
		}
	}
	if got := b.Scale("Z"); !math.IsNaN(got) {
		t.Errorf("Scale(unknown) = %v, want NaN", got)
	}
	if got := b.Scale([]int{1}); !math.IsNaN(got) {
		t.Errorf("Scale(uncomparable) = %v, want NaN", got)
	}
}

func TestBandScalePadding(t *testing.T) {
	b := NewBand([]any{"A", "B"}, [2]float64{0, 100}, WithPaddingInner(0.5))

	// step = 100 / (2 - 0.5) ; start offset centers the bands
	step := 100 / 1.5
	if got := b.Step(); math.Abs(got-step) > 1e-9 {
		t.Errorf("Step() = %v, want %v", got, step)
	}
	if got := b.Bandwidth(); math.Abs(got-step/2) > 1e-9 {
		t.Errorf("Bandwidth() = %v, want %v", got, step/2)
	}
	if got := b.Scale("A"); math.Abs(got) > 1e-9 {
		t.Errorf("Scale(A) = %v, want 0", got)
	}
}

func TestBandScaleReversedRange(t *testing.T) {
	b := NewBand([]any{"A", "B", "C"}, [2]float64{90, 0})
	want := map[string]float64{"A": 60, "B": 30, "C": 0}
	for v, pos := range want {
		if got := b.Scale(v); got != pos {
			t.Errorf("Scale(%q) = %v, want %v", v, got, pos)
		}
	}
}

func TestBandDomain(t *testing.T) {
	b := NewBand([]any{"A", "B", "A", "C"}, [2]float64{0, 30})
	got := b.Domain()
	if diff := cmp.Diff([]any{"A", "B", "C"}, got); diff != "" {
		t.Errorf("Domain() mismatch (-want +got):\n%s", diff)
	}

	// The returned slice is a copy.
	got[0] = "mutated"
	if b.Domain()[0] != "A" {
		t.Error("Domain() must not expose internal state")
	}
}

func TestBandHasNoTicker(t *testing.T) {
	var s Scale = NewBand([]any{"A"}, [2]float64{0, 10})
	if _, ok := s.(Ticker); ok {
		t.Error("band scales must not expose a tick generator")
	}
	if _, ok := s.(Bander); !ok {
		t.Error("band scales must expose a bandwidth")
	}
}
