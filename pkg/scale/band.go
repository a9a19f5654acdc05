package scale

import (
	"math"
	"reflect"
)

// BandOption configures a [Band] scale.
type BandOption func(*Band)

// WithPaddingInner sets the fraction of the step reserved between bands.
func WithPaddingInner(p float64) BandOption {
	return func(b *Band) { b.paddingInner = clamp01(p) }
}

// WithPaddingOuter sets the padding before the first and after the last
// band, as a fraction of the step.
func WithPaddingOuter(p float64) BandOption {
	return func(b *Band) { b.paddingOuter = max(0, p) }
}

// WithPadding sets inner and outer padding to the same value.
func WithPadding(p float64) BandOption {
	return func(b *Band) {
		b.paddingInner = clamp01(p)
		b.paddingOuter = max(0, p)
	}
}

// WithAlign sets how outer space is distributed (0 = start, 1 = end).
func WithAlign(a float64) BandOption {
	return func(b *Band) { b.align = clamp01(a) }
}

// Band is a discrete scale dividing its range into equal-width bands, one
// per domain value. It has no native tick generator: axes render its
// domain, thinned to fit.
type Band struct {
	domain       []any
	index        map[any]int
	rng          [2]float64
	paddingInner float64
	paddingOuter float64
	align        float64

	step      float64
	bandwidth float64
	positions []float64
}

// NewBand returns a band scale over the given domain. Duplicate domain
// values keep their first position.
func NewBand(domain []any, rng [2]float64, opts ...BandOption) *Band {
	b := &Band{rng: rng, align: 0.5, index: make(map[any]int, len(domain))}
	for _, v := range domain {
		if !isComparable(v) {
			continue
		}
		if _, dup := b.index[v]; dup {
			continue
		}
		b.index[v] = len(b.domain)
		b.domain = append(b.domain, v)
	}
	for _, opt := range opts {
		opt(b)
	}
	b.rescale()
	return b
}

func (b *Band) rescale() {
	n := float64(len(b.domain))
	r0, r1 := b.rng[0], b.rng[1]
	reverse := r1 < r0
	start, stop := r0, r1
	if reverse {
		start, stop = r1, r0
	}
	b.step = (stop - start) / math.Max(1, n-b.paddingInner+b.paddingOuter*2)
	start += (stop - start - b.step*(n-b.paddingInner)) * b.align
	b.bandwidth = b.step * (1 - b.paddingInner)

	b.positions = make([]float64, len(b.domain))
	for i := range b.positions {
		b.positions[i] = start + b.step*float64(i)
	}
	if reverse {
		for i, j := 0, len(b.positions)-1; i < j; i, j = i+1, j-1 {
			b.positions[i], b.positions[j] = b.positions[j], b.positions[i]
		}
	}
}

// Scale returns the start of v's band, or NaN for values outside the domain.
func (b *Band) Scale(v any) float64 {
	if !isComparable(v) {
		return math.NaN()
	}
	i, ok := b.index[v]
	if !ok {
		return math.NaN()
	}
	return b.positions[i]
}

// Domain returns a copy of the ordered domain.
func (b *Band) Domain() []any {
	return append([]any(nil), b.domain...)
}

// Bandwidth returns the width of each band.
func (b *Band) Bandwidth() float64 { return b.bandwidth }

// Step returns the distance between the starts of adjacent bands.
func (b *Band) Step() float64 { return b.step }

func isComparable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.TypeOf(v).Comparable()
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
