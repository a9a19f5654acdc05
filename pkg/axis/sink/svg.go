package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/axisticks/pkg/axis"
)

// DefaultTickStroke is the stroke of tick marks.
const DefaultTickStroke = "#ccc"

// labelFontSize is the inline font size of every tick label.
const labelFontSize = "12px"

// SVGOption configures SVG rendering via [RenderSVG] and [RenderDocument].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	tickMarks  bool
	tickStroke string
	class      string
	embedFont  bool
}

// WithTickMarks draws the tick mark line next to every label.
func WithTickMarks() SVGOption { return func(r *svgRenderer) { r.tickMarks = true } }

// WithTickStroke sets the tick mark stroke color.
func WithTickStroke(color string) SVGOption { return func(r *svgRenderer) { r.tickStroke = color } }

// WithClass adds a class to the root group.
func WithClass(class string) SVGOption { return func(r *svgRenderer) { r.class = class } }

// WithEmbeddedFont embeds the label font in standalone documents so
// viewers draw the glyphs the labels were measured with.
func WithEmbeddedFont() SVGOption { return func(r *svgRenderer) { r.embedFont = true } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{tickStroke: DefaultTickStroke}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG renders the layout as an SVG fragment: a root group holding
// the label group and, when enabled, one gridline group per tick. The
// fragment is positioned by the caller; its origin is the axis line.
func RenderSVG(l axis.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	var buf bytes.Buffer
	r.renderFragment(&buf, l, "")
	return buf.Bytes()
}

func (r *svgRenderer) renderFragment(buf *bytes.Buffer, l axis.Layout, indent string) {
	class := "axis-ticks axis-ticks-" + l.Orient.String()
	if r.class != "" {
		class += " " + r.class
	}
	fmt.Fprintf(buf, "%s<g class=\"%s\">\n", indent, EscapeXML(class))

	fmt.Fprintf(buf, "%s  <g class=\"ticks\">\n", indent)
	for _, t := range l.Ticks {
		r.renderTick(buf, l.Geometry, t, indent+"    ")
	}
	fmt.Fprintf(buf, "%s  </g>\n", indent)

	if l.GridLines {
		for _, t := range l.Ticks {
			renderGridLine(buf, t, l.Orient.Horizontal(), indent+"  ")
		}
	}
	fmt.Fprintf(buf, "%s</g>\n", indent)
}

func (r *svgRenderer) renderTick(buf *bytes.Buffer, g axis.Geometry, t axis.Tick, indent string) {
	fmt.Fprintf(buf, "%s<g class=\"tick\" transform=\"%s\">\n", indent, t.Transform)
	fmt.Fprintf(buf, "%s  <title>%s</title>\n", indent, EscapeXML(t.Title))
	if r.tickMarks {
		fmt.Fprintf(buf, "%s  <line stroke=\"%s\" %s/>\n", indent, EscapeXML(r.tickStroke), offsetAttrs(g.X2, g.Y2, "x2", "y2"))
	}
	fmt.Fprintf(buf, "%s  <text stroke-width=\"0.01\" dy=\"%s\" %stext-anchor=\"%s\" style=\"font-size:%s\">%s</text>\n",
		indent, g.Dy, offsetAttrs(g.X1, g.Y1, "x", "y"), g.TextAnchor, labelFontSize, EscapeXML(t.Label))
	fmt.Fprintf(buf, "%s</g>\n", indent)
}

// offsetAttrs writes whichever offset of the pair is set.
func offsetAttrs(x, y *float64, xName, yName string) string {
	switch {
	case x != nil:
		return fmt.Sprintf("%s=\"%s\" ", xName, axis.FormatNumber(*x))
	case y != nil:
		return fmt.Sprintf("%s=\"%s\" ", yName, axis.FormatNumber(*y))
	}
	return ""
}

// renderGridLine draws a tick's gridline. Horizontal axes get vertical
// lines and vice versa.
func renderGridLine(buf *bytes.Buffer, t axis.Tick, horizontal bool, indent string) {
	gl := t.GridLine
	if gl == nil {
		return
	}
	fmt.Fprintf(buf, "%s<g transform=\"%s\">\n", indent, t.Transform)
	fmt.Fprintf(buf, "%s  <g transform=\"%s\">\n", indent, gl.Transform)
	if horizontal {
		fmt.Fprintf(buf, "%s    <line class=\"%s\" y1=\"0\" y2=\"%s\"/>\n", indent, gl.Class, axis.FormatNumber(gl.Y2))
	} else {
		fmt.Fprintf(buf, "%s    <line class=\"%s\" x1=\"0\" x2=\"%s\"/>\n", indent, gl.Class, axis.FormatNumber(gl.X2))
	}
	fmt.Fprintf(buf, "%s  </g>\n", indent)
	fmt.Fprintf(buf, "%s</g>\n", indent)
}

// EscapeXML escapes s for use in SVG text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
