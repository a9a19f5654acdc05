// Package pkg holds the axisticks libraries.
//
// # Overview
//
// Axisticks lays out chart axes: it picks ticks that fit the available
// height, formats and trims their labels, positions them for one of four
// orientations and optionally extends gridlines across the plot. The
// libraries are organized as:
//
//  1. [scale] - the scales an axis is drawn for (linear, band) and the
//     capability interfaces a host scale may implement
//  2. [axis] - tick selection, label formatting, geometry and the
//     stateful component with its width feedback loop
//  3. [axis/bbox] and [fonts] - text measurement of rendered labels
//  4. [axis/sink] and [render] - SVG, JSON, PDF and PNG output
//  5. [config] - TOML axis definition files
//  6. [cache], [errors], [observability], [buildinfo] - support
//
// # Data flow
//
//	axis definition (TOML, query string, or Go code)
//	         ↓
//	axis.Inputs ──→ axis.Compute ──→ axis.Layout
//	                                    ↓
//	                 bbox.Measurer ──→ width fed back to the host
//	                                    ↓
//	                 sink.RenderSVG / RenderDocument / RenderJSON / RenderPDF / RenderPNG
//
// # Quick start
//
//	y := scale.NewLinear([2]float64{0, 100}, [2]float64{300, 0})
//	l, err := axis.Compute(axis.Inputs{Scale: y, Orient: axis.Left, Height: 300})
//	if err != nil {
//	    return err
//	}
//	svg := sink.RenderSVG(l)
package pkg
