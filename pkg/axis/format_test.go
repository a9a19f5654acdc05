package axis

import (
	"strings"
	"testing"

	"github.com/matzehuels/axisticks/pkg/scale"
)

func TestTrimLabel(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		budget int
		want   string
	}{
		{"short", "Germany", 0, "Germany"},
		{"exactly at budget", "abcdefghijklmnop", 0, "abcdefghijklmnop"},
		{"one over budget", "abcdefghijklmnopq", 0, "abcdefghijklmnop..."},
		{"long", "United Kingdom of Great Britain", 0, "United Kingdom o..."},
		{"surrounding whitespace", "  padded  ", 0, "padded"},
		{"whitespace before cut", "   abcdefghijklmnopqrstu", 0, "abcdefghijklmnop..."},
		{"custom budget", "abcdef", 4, "abcd..."},
		{"negative budget uses default", "abcdefghijklmnopq", -1, "abcdefghijklmnop..."},
		{"empty", "", 0, ""},
		{"wide runes", "東京都千代田区丸の内一丁目", 8, "東京都千..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimLabel(tt.in, tt.budget); got != tt.want {
				t.Errorf("TrimLabel(%q, %d) = %q, want %q", tt.in, tt.budget, got, tt.want)
			}
		})
	}
}

func TestTrimLabelIsIdempotentOnShortLabels(t *testing.T) {
	for _, s := range []string{"0", "1,000", "Q1 2024", strings.Repeat("x", 16)} {
		if got := TrimLabel(TrimLabel(s, 0), 0); got != s {
			t.Errorf("TrimLabel twice on %q = %q", s, got)
		}
	}
}

func TestResolveFormatter(t *testing.T) {
	linear := scale.NewLinear([2]float64{0, 1000}, [2]float64{0, 100})

	t.Run("custom wins", func(t *testing.T) {
		f := resolveFormatter(func(any) string { return "custom" }, linear, []any{5})
		if got := f(200.0); got != "custom" {
			t.Errorf("got %q, want %q", got, "custom")
		}
	})

	t.Run("scale default", func(t *testing.T) {
		f := resolveFormatter(nil, linear, []any{5})
		if got := f(1000.0); got != "1,000" {
			t.Errorf("got %q, want %q", got, "1,000")
		}
	})

	t.Run("identity", func(t *testing.T) {
		f := resolveFormatter(nil, ordinal{}, nil)
		if got := f("Q3"); got != "Q3" {
			t.Errorf("got %q, want %q", got, "Q3")
		}
		if got := f(7); got != "7" {
			t.Errorf("got %q, want %q", got, "7")
		}
	})
}
