package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/axisticks/pkg/axis"
	"github.com/matzehuels/axisticks/pkg/axis/bbox"
	"github.com/matzehuels/axisticks/pkg/fonts"
)

const documentCSS = `
    .axis-ticks text { fill: #333; }
    .gridline-path { stroke: #ddd; stroke-width: 1; fill: none; }`

// Frame places an axis in a standalone document: the document size and
// where the axis origin sits inside it.
type Frame struct {
	Width, Height float64
	X, Y          float64
}

// FitFrame sizes a document around an axis of the given length (the
// scale's range extent) whose labels occupy labels, leaving pad pixels on
// every side. Gridlines, when enabled, are included.
func FitFrame(l axis.Layout, length float64, labels bbox.Rect, pad float64) Frame {
	content := labels
	if labels.Empty() {
		content = bbox.Rect{}
	}
	along := bbox.Rect{MaxY: length}
	if l.Orient.Horizontal() {
		along = bbox.Rect{MaxX: length}
	}
	content = union(content, along)

	if l.GridLines {
		for _, t := range l.Ticks {
			if t.GridLine == nil {
				continue
			}
			content = union(content, gridExtent(l.Orient, t.GridLine, length))
			break
		}
	}

	return Frame{
		Width:  content.Width() + 2*pad,
		Height: content.Height() + 2*pad,
		X:      pad - content.MinX,
		Y:      pad - content.MinY,
	}
}

// gridExtent is the region swept by the gridlines of an axis.
func gridExtent(o axis.Orientation, gl *axis.GridLine, length float64) bbox.Rect {
	if o.Horizontal() {
		return bbox.Rect{MinX: 0, MaxX: length, MinY: min(gl.Offset, gl.Offset+gl.Y2), MaxY: max(gl.Offset, gl.Offset+gl.Y2)}
	}
	return bbox.Rect{MinX: min(gl.Offset, gl.Offset+gl.X2), MaxX: max(gl.Offset, gl.Offset+gl.X2), MinY: 0, MaxY: length}
}

func union(a, b bbox.Rect) bbox.Rect {
	return bbox.Rect{
		MinX: min(a.MinX, b.MinX),
		MinY: min(a.MinY, b.MinY),
		MaxX: max(a.MaxX, b.MaxX),
		MaxY: max(a.MaxY, b.MaxY),
	}
}

// RenderDocument renders the layout as a standalone SVG document with the
// axis origin translated to the frame's origin.
func RenderDocument(l axis.Layout, f Frame, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%.0f" height="%.0f">`+"\n",
		axis.FormatNumber(f.Width), axis.FormatNumber(f.Height), f.Width, f.Height)

	buf.WriteString("  <defs>\n    <style>")
	if r.embedFont {
		fmt.Fprintf(&buf, "\n    @font-face { font-family: '%s'; src: url(data:font/ttf;base64,%s); }",
			fonts.FontFamily, fonts.RegularTTFBase64())
	}
	buf.WriteString(documentCSS)
	buf.WriteString("\n    </style>\n  </defs>\n")

	fmt.Fprintf(&buf, "  <g transform=\"translate(%s,%s)\" font-family=\"%s\">\n",
		axis.FormatNumber(f.X), axis.FormatNumber(f.Y), EscapeXML(fonts.FallbackFontFamily))
	r.renderFragment(&buf, l, "    ")
	buf.WriteString("  </g>\n")

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
