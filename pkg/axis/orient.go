package axis

import (
	"strconv"
	"strings"

	"github.com/matzehuels/axisticks/pkg/errors"
)

// Orientation names the chart edge an axis is drawn on.
type Orientation string

// Supported orientations.
const (
	Top    Orientation = "top"
	Bottom Orientation = "bottom"
	Left   Orientation = "left"
	Right  Orientation = "right"
)

// Text anchors used for tick labels.
const (
	AnchorStart  = "start"
	AnchorMiddle = "middle"
	AnchorEnd    = "end"
)

// Baseline nudges applied to labels through the dy attribute.
const (
	dyNone      = "0em"
	dyBelow     = ".71em"
	dyMidcenter = ".32em"
)

// Fixed tick geometry.
const (
	DefaultInnerTickSize   = 6.0
	DefaultTickPadding     = 3.0
	DefaultVerticalSpacing = 20.0

	// gridLineOffset is the gap between the axis line and a gridline start.
	gridLineOffset = 5.0
)

// orientSpec is everything that varies with the orientation.
type orientSpec struct {
	sign       float64
	anchor     string
	horizontal bool // top/bottom axes translate along x and offset labels along y
}

var orientations = map[Orientation]orientSpec{
	Top:    {sign: -1, anchor: AnchorMiddle, horizontal: true},
	Bottom: {sign: 1, anchor: AnchorMiddle, horizontal: true},
	Left:   {sign: 1, anchor: AnchorEnd},
	Right:  {sign: -1, anchor: AnchorStart},
}

// ParseOrientation converts a case-insensitive name into an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	o := Orientation(strings.ToLower(strings.TrimSpace(s)))
	if !o.Valid() {
		return "", errors.New(errors.ErrCodeInvalidOrientation,
			"unknown orientation %q (must be top, bottom, left or right)", s)
	}
	return o, nil
}

// Valid reports whether o is one of the four supported orientations.
func (o Orientation) Valid() bool {
	_, ok := orientations[o]
	return ok
}

// Horizontal reports whether the axis runs along the x axis (top/bottom).
func (o Orientation) Horizontal() bool {
	return orientations[o].horizontal
}

// Sign is -1 for top and right axes and +1 for bottom and left ones.
func (o Orientation) Sign() float64 {
	return orientations[o].sign
}

func (o Orientation) String() string { return string(o) }

// Geometry holds the label placement shared by every tick of one pass.
// Exactly one offset pair is set: Y1/Y2 for horizontal axes, X1/X2 for
// vertical ones.
type Geometry struct {
	Sign            float64
	TextAnchor      string
	Dy              string
	X1, X2          *float64 // label offset and tick mark end (vertical axes)
	Y1, Y2          *float64 // label offset and tick mark end (horizontal axes)
	InnerTickSize   float64
	TickPadding     float64
	TickSpacing     float64
	VerticalSpacing float64
}

// geometryFor derives the label geometry of an orientation.
func geometryFor(o Orientation) (Geometry, error) {
	spec, ok := orientations[o]
	if !ok {
		return Geometry{}, errors.New(errors.ErrCodeInvalidOrientation, "unknown orientation %q", string(o))
	}
	g := Geometry{
		Sign:            spec.sign,
		TextAnchor:      spec.anchor,
		InnerTickSize:   DefaultInnerTickSize,
		TickPadding:     DefaultTickPadding,
		TickSpacing:     max(DefaultInnerTickSize, 0) + DefaultTickPadding,
		VerticalSpacing: DefaultVerticalSpacing,
	}
	if spec.horizontal {
		g.Y2 = ptr(g.InnerTickSize * spec.sign)
		g.Y1 = ptr(g.TickSpacing * spec.sign)
		g.Dy = dyBelow
		if spec.sign < 0 {
			g.Dy = dyNone
		}
		return g, nil
	}
	g.X2 = ptr(g.InnerTickSize * -spec.sign)
	g.X1 = ptr(g.TickSpacing * -spec.sign)
	g.Dy = dyMidcenter
	return g, nil
}

// transform returns the translation of a tick group at position p.
func (o Orientation) transform(p float64) string {
	if o.Horizontal() {
		return "translate(" + FormatNumber(p) + ",0)"
	}
	return "translate(0," + FormatNumber(p) + ")"
}

// gridLine returns the gridline drawn from a tick into the plot area.
// Vertical axes draw horizontal lines and vice versa; the sign points the
// line away from the labels.
func (o Orientation) gridLine(width float64) *GridLine {
	spec := orientations[o]
	if spec.horizontal {
		dir := -spec.sign
		return &GridLine{
			Class:     "gridline-path gridline-path-vertical",
			Offset:    gridLineOffset * dir,
			Transform: "translate(0," + FormatNumber(gridLineOffset*dir) + ")",
			Y2:        width * dir,
		}
	}
	dir := spec.sign
	return &GridLine{
		Class:     "gridline-path gridline-path-horizontal",
		Offset:    gridLineOffset * dir,
		Transform: "translate(" + FormatNumber(gridLineOffset*dir) + ",0)",
		X2:        width * dir,
	}
}

// FormatNumber renders a coordinate in its shortest form ("25", "12.5").
func FormatNumber(f float64) string {
	if f == 0 {
		return "0" // avoids "-0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func ptr(f float64) *float64 { return &f }
