package scale

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// DefaultTickCount is the count hint used when tick arguments carry none.
const DefaultTickCount = 10

// Tick step thresholds: sqrt(50), sqrt(10), sqrt(2).
var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// Linear is a continuous scale mapping [d0, d1] onto [r0, r1].
type Linear struct {
	domain [2]float64
	rng    [2]float64
}

// NewLinear returns a linear scale for the given domain and range.
func NewLinear(domain, rng [2]float64) *Linear {
	return &Linear{domain: domain, rng: rng}
}

// Scale maps a numeric value. Non-numeric values map to NaN and a
// degenerate domain maps everything to the middle of the range.
func (l *Linear) Scale(v any) float64 {
	x, ok := ToFloat(v)
	if !ok {
		return math.NaN()
	}
	d0, d1 := l.domain[0], l.domain[1]
	r0, r1 := l.rng[0], l.rng[1]
	if d1 == d0 {
		return r0 + (r1-r0)/2
	}
	return r0 + (x-d0)/(d1-d0)*(r1-r0)
}

// Domain returns the two domain bounds.
func (l *Linear) Domain() []any {
	return []any{l.domain[0], l.domain[1]}
}

// Range returns the two range bounds.
func (l *Linear) Range() [2]float64 { return l.rng }

// Ticks returns human-friendly values (multiples of 1, 2 or 5 × 10^k)
// spanning the domain. The first argument is the approximate count; a
// hint of zero or less produces no ticks.
func (l *Linear) Ticks(args ...any) []any {
	count, ok := CountHint(args)
	if !ok {
		count = DefaultTickCount
	}
	values := ticks(l.domain[0], l.domain[1], float64(count))
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// TickFormat returns a formatter whose fixed precision matches the step of
// the ticks generated with the same count. An optional second string
// argument overrides the pattern (see humanize.FormatFloat).
func (l *Linear) TickFormat(args ...any) func(any) string {
	count, ok := CountHint(args)
	if !ok {
		count = DefaultTickCount
	}
	pattern := ""
	if len(args) > 1 {
		pattern, _ = args[1].(string)
	}
	if pattern == "" {
		step := tickStep(l.domain[0], l.domain[1], float64(count))
		pattern = "#,###." + strings.Repeat("#", precisionFixed(step))
	}
	return func(v any) string {
		f, ok := ToFloat(v)
		if !ok {
			return ""
		}
		return humanize.FormatFloat(pattern, f)
	}
}

func ticks(start, stop, count float64) []float64 {
	if !(count > 0) {
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}
	i1, i2, inc := tickSpec(start, stop, count)
	if !(i2 >= i1) {
		return nil
	}
	n := int(i2-i1) + 1
	out := make([]float64, n)
	for i := range n {
		var k float64
		if reverse {
			k = i2 - float64(i)
		} else {
			k = i1 + float64(i)
		}
		if inc < 0 {
			out[i] = k / -inc
		} else {
			out[i] = k * inc
		}
	}
	return out
}

// tickSpec returns the integer bounds and increment of the tick sequence.
// A negative increment encodes 1/inc for sub-unit steps.
func tickSpec(start, stop, count float64) (i1, i2, inc float64) {
	step := (stop - start) / math.Max(0, count)
	power := math.Floor(math.Log10(step))
	errRatio := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case errRatio >= e10:
		factor = 10
	case errRatio >= e5:
		factor = 5
	case errRatio >= e2:
		factor = 2
	}
	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = jsRound(start * inc)
		i2 = jsRound(stop * inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = jsRound(start / inc)
		i2 = jsRound(stop / inc)
		if i1*inc < start {
			i1++
		}
		if i2*inc > stop {
			i2--
		}
	}
	if i2 < i1 && 0.5 <= count && count < 2 {
		return tickSpec(start, stop, count*2)
	}
	return i1, i2, inc
}

func tickStep(start, stop, count float64) float64 {
	if start == stop || !(count > 0) {
		return 0
	}
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}
	_, _, inc := tickSpec(start, stop, count)
	step := inc
	if inc < 0 {
		step = 1 / -inc
	}
	if reverse {
		return -step
	}
	return step
}

func precisionFixed(step float64) int {
	step = math.Abs(step)
	if step == 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return 0
	}
	return max(0, -exponent(step))
}

// exponent returns the decimal exponent of x in scientific notation.
func exponent(x float64) int {
	s := strconv.FormatFloat(x, 'e', -1, 64)
	i := strings.IndexByte(s, 'e')
	e, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return 0
	}
	return e
}

// jsRound rounds half up, matching the tick arithmetic of charting hosts.
func jsRound(x float64) float64 {
	return math.Floor(x + 0.5)
}
