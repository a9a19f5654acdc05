package axis

import (
	"math"

	"github.com/matzehuels/axisticks/pkg/scale"
)

// TickHeight is the vertical room, in pixels, each generated tick needs.
const TickHeight = 20.0

// DefaultTickArguments returns the generator hint used when none is given.
func DefaultTickArguments() []any { return []any{5} }

// MaxTicks returns how many generated ticks fit in height pixels.
// Zero, negative and NaN heights allow none.
func MaxTicks(height float64) int {
	if !(height > 0) {
		return 0
	}
	return int(math.Floor(height / TickHeight))
}

// SelectTicks decides which domain values get a tick.
//
// Explicit tickValues win and are returned verbatim, even when they
// overflow the available height. Otherwise the scale's native generator
// is used with tickArgs; when it produces more than MaxTicks(height)
// values the count hint is lowered to fit and the generator runs once
// more. Scales without a generator render their domain thinned with
// [ReduceTicks]. A scale offering neither yields no ticks.
//
// The returned arguments are the ones the final generation used; tickArgs
// itself is never modified.
func SelectTicks(s scale.Scale, tickValues, tickArgs []any, height float64) ([]any, []any) {
	args := append([]any(nil), tickArgs...)
	if tickValues != nil {
		return tickValues, args
	}

	maxTicks := MaxTicks(height)
	switch sc := s.(type) {
	case scale.Ticker:
		ticks := sc.Ticks(args...)
		if len(ticks) <= maxTicks {
			return ticks, args
		}
		if hint, ok := scale.CountHint(args); ok {
			args[0] = min(hint, maxTicks)
		} else if len(args) > 0 {
			args[0] = maxTicks
		} else {
			args = []any{maxTicks}
		}
		ticks = sc.Ticks(args...)
		// The retry assumes the generator is monotonic in its hint; thin
		// whatever a non-monotonic one returns.
		return ReduceTicks(ticks, maxTicks), args
	case scale.Domainer:
		return ReduceTicks(sc.Domain(), maxTicks), args
	}
	return nil, args
}

// ReduceTicks thins ticks to at most maxTicks evenly spaced entries,
// preserving order. The first entry is always kept and, when at least two
// fit, so is the last. A list that already fits is returned unchanged.
func ReduceTicks(ticks []any, maxTicks int) []any {
	n := len(ticks)
	if n <= maxTicks {
		return ticks
	}
	switch {
	case maxTicks <= 0:
		return []any{}
	case maxTicks == 1:
		return []any{ticks[0]}
	}
	reduced := make([]any, maxTicks)
	span := float64(n-1) / float64(maxTicks-1)
	for i := range maxTicks {
		reduced[i] = ticks[int(math.Round(float64(i)*span))]
	}
	return reduced
}
