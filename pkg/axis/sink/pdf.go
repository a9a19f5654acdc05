package sink

import (
	"context"

	"github.com/matzehuels/axisticks/pkg/axis"
	"github.com/matzehuels/axisticks/pkg/render"
)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	svgOpts   []SVGOption
	converter *render.Converter
}

// WithPDFSVGOptions passes options through to the underlying SVG renderer.
func WithPDFSVGOptions(opts ...SVGOption) PDFOption {
	return func(r *pdfRenderer) { r.svgOpts = opts }
}

// WithPDFConverter converts through c instead of the uncached default.
func WithPDFConverter(c *render.Converter) PDFOption {
	return func(r *pdfRenderer) { r.converter = c }
}

// RenderPDF renders the layout as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, l axis.Layout, f Frame, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	svg := RenderDocument(l, f, r.svgOpts...)
	if r.converter != nil {
		return r.converter.ToPDF(ctx, svg)
	}
	return render.ToPDF(ctx, svg)
}
