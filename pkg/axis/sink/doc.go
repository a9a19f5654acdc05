// Package sink provides output format renderers for axis layouts.
//
// # Overview
//
// A "sink" transforms a computed [axis.Layout] into a final output format:
//
//   - SVG fragment: the tick group to embed in a host chart
//   - SVG document: a standalone file sized by a [Frame]
//   - JSON: the layout for other renderers
//   - PDF/PNG: documents converted with rsvg-convert
//
// # SVG Output
//
// [RenderSVG] writes one `<g class="tick">` per tick, translated to the
// tick position. Each holds a `<title>` with the full label (the tooltip)
// and a `<text>` with the trimmed label, anchored and offset according to
// the axis orientation. Gridlines, when the layout has them, follow in
// their own groups so they are not part of the measured label box.
//
//	svg := sink.RenderSVG(layout, sink.WithTickMarks())
//
// # Documents
//
// [RenderDocument] wraps the fragment in an `<svg>` element. [FitFrame]
// computes a frame from the measured label box:
//
//	m, _ := bbox.NewDefaultMeasurer()
//	frame := sink.FitFrame(layout, 300, m.Bounds(layout), 10)
//	doc := sink.RenderDocument(layout, frame, sink.WithEmbeddedFont())
//
// [RenderPDF] and [RenderPNG] convert documents and require librsvg:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [WithPDFConverter] and [WithPNGConverter] route conversions through a
// caching [render.Converter].
package sink
