// Package render converts rendered axis documents to other formats.
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG using the external rsvg-convert tool
// (from librsvg). The axis sink uses them for its PDF and PNG output:
//
//	svg := sink.RenderDocument(layout, frame)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// A missing rsvg-convert yields an error coded UNSUPPORTED; [Available]
// reports it up front. Conversions are bound to the context and killed when
// it is cancelled.
//
// # Caching
//
// A [Converter] stores results in a [cache.Cache], keyed by the format,
// the extra arguments and a hash of the SVG. Failed conversions are not
// cached. The package functions use an uncached converter.
//
//	conv := render.NewConverter(fileCache, 7*24*time.Hour)
//	png, err := conv.ToPNG(ctx, svg, 2.0)
package render
