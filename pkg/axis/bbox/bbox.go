// Package bbox measures the bounding box of an axis's tick labels using
// font metrics.
//
// Hosts that lay text out themselves (a browser, a canvas) should report
// their own measurements through [axis.MeasurerFunc]. Everything else,
// the CLI and server included, uses [Measurer], which reproduces the
// placement rules of the SVG output: each label is anchored at its tick
// transform plus the orientation's label offset and shifted by dy.
package bbox

import (
	"context"
	"math"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/axisticks/pkg/axis"
	"github.com/matzehuels/axisticks/pkg/fonts"
)

// Rect is an axis-aligned box in the coordinate space of the tick group.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Empty reports whether r encloses nothing.
func (r Rect) Empty() bool { return r.MaxX <= r.MinX && r.MaxY <= r.MinY }

func (r Rect) union(o Rect) Rect {
	return Rect{
		MinX: min(r.MinX, o.MinX),
		MinY: min(r.MinY, o.MinY),
		MaxX: max(r.MaxX, o.MaxX),
		MaxY: max(r.MaxY, o.MaxY),
	}
}

// Measurer implements [axis.Measurer] with a font face. It is safe for
// concurrent use.
type Measurer struct {
	mu   sync.Mutex
	face font.Face
	em   float64
}

var _ axis.Measurer = (*Measurer)(nil)

// Option configures a [Measurer].
type Option func(*Measurer)

// WithEm sets the font size dy offsets are relative to. It should match
// the size face was created with; the default is fonts.DefaultSize.
func WithEm(px float64) Option { return func(m *Measurer) { m.em = px } }

// NewMeasurer returns a measurer for text set in face.
func NewMeasurer(face font.Face, opts ...Option) *Measurer {
	m := &Measurer{face: face, em: fonts.DefaultSize}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewDefaultMeasurer returns a measurer using the embedded label font at
// fonts.DefaultSize.
func NewDefaultMeasurer() (*Measurer, error) {
	face, err := fonts.Face(fonts.DefaultSize)
	if err != nil {
		return nil, err
	}
	return NewMeasurer(face), nil
}

// TextWidth returns the advance width of s in pixels.
func (m *Measurer) TextWidth(s string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return toFloat(font.MeasureString(m.face, s))
}

// MeasureWidth returns the width of the label bounding box of l.
func (m *Measurer) MeasureWidth(ctx context.Context, l axis.Layout) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return m.Bounds(l).Width(), nil
}

// Bounds returns the box enclosing every non-empty label of l. Ticks the
// scale could not place (NaN or infinite positions) are skipped. A layout
// without labels yields the zero Rect.
func (m *Measurer) Bounds(l axis.Layout) Rect {
	m.mu.Lock()
	defer m.mu.Unlock()

	metrics := m.face.Metrics()
	ascent, descent := toFloat(metrics.Ascent), toFloat(metrics.Descent)
	g := l.Geometry
	dy := parseEm(g.Dy) * m.em

	var box Rect
	first := true
	for _, t := range l.Ticks {
		if t.Label == "" || math.IsNaN(t.Position) || math.IsInf(t.Position, 0) {
			continue
		}
		x, y := 0.0, 0.0
		if l.Orient.Horizontal() {
			x = t.Position
			if g.Y1 != nil {
				y = *g.Y1
			}
		} else {
			y = t.Position
			if g.X1 != nil {
				x = *g.X1
			}
		}
		w := toFloat(font.MeasureString(m.face, t.Label))
		switch g.TextAnchor {
		case axis.AnchorMiddle:
			x -= w / 2
		case axis.AnchorEnd:
			x -= w
		}
		baseline := y + dy
		r := Rect{MinX: x, MinY: baseline - ascent, MaxX: x + w, MaxY: baseline + descent}
		if first {
			box, first = r, false
			continue
		}
		box = box.union(r)
	}
	return box
}

// parseEm converts a dy attribute such as ".71em" to a factor of the font
// size. Unparseable values count as zero.
func parseEm(dy string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSuffix(dy, "em"), 64)
	if err != nil {
		return 0
	}
	return f
}

func toFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
