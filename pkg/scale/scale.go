// Package scale defines the scale collaborators consumed by the axis
// renderer.
//
// A scale maps domain values to pixel positions. The renderer only
// requires [Scale]; everything else is an optional capability discovered
// with a type assertion, mirroring how charting hosts expose different
// scale kinds:
//
//   - [Ticker]: a native tick generator (continuous scales)
//   - [TickFormatter]: a default label formatter bound to tick arguments
//   - [Domainer]: the ordered domain (discrete scales)
//   - [Bander]: the band width of a band scale
//
// Two concrete scales are provided for hosts that do not bring their own:
// [Linear] and [Band].
package scale

import (
	"math"
	"reflect"
)

// Scale maps a domain value to a pixel position.
// Values outside the scale's domain type map to NaN.
type Scale interface {
	Scale(v any) float64
}

// Ticker is implemented by scales with a native tick generator.
// The first argument is conventionally a tick count hint.
type Ticker interface {
	Ticks(args ...any) []any
}

// TickFormatter is implemented by scales that supply a default formatter
// for the ticks produced with the same arguments.
type TickFormatter interface {
	TickFormat(args ...any) func(any) string
}

// Domainer is implemented by scales exposing their full ordered domain.
type Domainer interface {
	Domain() []any
}

// Bander is implemented by discrete scales dividing their range in bands.
type Bander interface {
	Bandwidth() float64
}

// MaxTickCount is the largest count hint generators honour.
const MaxTickCount = 1000

// CountHint extracts the tick count hint from tick arguments, clamped to
// MaxTickCount. It reports false when the first argument is missing or
// not numeric.
func CountHint(args []any) (int, bool) {
	if len(args) == 0 {
		return 0, false
	}
	f, ok := ToFloat(args[0])
	if !ok || math.IsNaN(f) {
		return 0, false
	}
	return int(max(min(f, MaxTickCount), -1)), true
}

// ToFloat converts any numeric value to float64.
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
