package axis

import (
	"github.com/matzehuels/axisticks/pkg/errors"
	"github.com/matzehuels/axisticks/pkg/scale"
)

// Inputs are the values a host binds to an axis. Any change to them
// requires a new pass through [Compute].
type Inputs struct {
	Scale  scale.Scale
	Orient Orientation

	// TickArguments is passed to the scale's generator and formatter. The
	// first element is a count hint. Nil means DefaultTickArguments.
	TickArguments []any

	// TickValues, when non-nil, replaces generation entirely.
	TickValues []any

	TickFormatting Formatter

	ShowGridLines bool
	GridLineWidth float64

	// Height is the pixel height available to the axis; it caps the
	// number of generated ticks.
	Height float64

	// MaxLabelLength overrides DefaultMaxLabelLength when positive.
	MaxLabelLength int
}

// Layout is the result of one render pass.
type Layout struct {
	Orient        Orientation
	Geometry      Geometry
	Ticks         []Tick
	TickArguments []any
	GridLines     bool
	GridLineWidth float64
}

// Tick is the render descriptor of one tick.
type Tick struct {
	Value     any
	Position  float64 // band-adjusted scale output
	Transform string
	Title     string // full formatted label, used as tooltip
	Label     string // trimmed label
	GridLine  *GridLine
}

// GridLine is drawn inside the tick's transform, offset by its own
// Transform. Only the coordinate along the line direction is non-zero.
type GridLine struct {
	Class     string
	Offset    float64 // distance from the axis line, as applied by Transform
	Transform string
	X2, Y2    float64
}

// Compute runs one render pass: it selects the ticks, formats their
// labels and derives the geometry for the orientation. It has no side
// effects; the caller's slices are left untouched.
//
// Compute fails for a missing scale or an unknown orientation. Everything
// else degrades: no room means no generated ticks, and a scale with
// neither a generator nor a domain produces an empty layout. Panics raised
// by a formatter propagate.
func Compute(in Inputs) (Layout, error) {
	if in.Scale == nil {
		return Layout{}, errors.New(errors.ErrCodeInvalidInput, "axis has no scale")
	}
	geom, err := geometryFor(in.Orient)
	if err != nil {
		return Layout{}, err
	}

	args := in.TickArguments
	if args == nil {
		args = DefaultTickArguments()
	}
	values, args := SelectTicks(in.Scale, in.TickValues, args, in.Height)
	format := resolveFormatter(in.TickFormatting, in.Scale, args)
	position := adjustedScale(in.Scale)

	l := Layout{
		Orient:        in.Orient,
		Geometry:      geom,
		Ticks:         make([]Tick, 0, len(values)),
		TickArguments: args,
		GridLines:     in.ShowGridLines,
		GridLineWidth: in.GridLineWidth,
	}
	for _, v := range values {
		p := position(v)
		title := format(v)
		t := Tick{
			Value:     v,
			Position:  p,
			Transform: in.Orient.transform(p),
			Title:     title,
			Label:     TrimLabel(title, in.MaxLabelLength),
		}
		if in.ShowGridLines {
			t.GridLine = in.Orient.gridLine(in.GridLineWidth)
		}
		l.Ticks = append(l.Ticks, t)
	}
	return l, nil
}

// adjustedScale centers ticks within their band for band scales.
func adjustedScale(s scale.Scale) func(any) float64 {
	b, ok := s.(scale.Bander)
	if !ok {
		return s.Scale
	}
	half := b.Bandwidth() * 0.5
	return func(v any) float64 {
		return s.Scale(v) + half
	}
}

// TickTransform translates a tick at position p and pushes it down by the
// vertical spacing, for hosts that stack rotated labels under the axis.
func (l Layout) TickTransform(p float64) string {
	return "translate(" + FormatNumber(p) + "," + FormatNumber(l.Geometry.VerticalSpacing) + ")"
}

// Values returns the domain values of the layout's ticks.
func (l Layout) Values() []any {
	out := make([]any, len(l.Ticks))
	for i, t := range l.Ticks {
		out[i] = t.Value
	}
	return out
}
