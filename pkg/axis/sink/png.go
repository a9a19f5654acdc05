package sink

import (
	"context"

	"github.com/matzehuels/axisticks/pkg/axis"
	"github.com/matzehuels/axisticks/pkg/render"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts   []SVGOption
	scale     float64
	converter *render.Converter
}

// WithPNGSVGOptions passes options through to the underlying SVG renderer.
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.svgOpts = opts }
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithPNGConverter converts through c instead of the uncached default.
func WithPNGConverter(c *render.Converter) PNGOption {
	return func(r *pngRenderer) { r.converter = c }
}

// RenderPNG renders the layout as PNG via SVG conversion.
func RenderPNG(ctx context.Context, l axis.Layout, f Frame, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	svg := RenderDocument(l, f, r.svgOpts...)
	if r.converter != nil {
		return r.converter.ToPNG(ctx, svg, r.scale)
	}
	return render.ToPNG(ctx, svg, r.scale)
}
