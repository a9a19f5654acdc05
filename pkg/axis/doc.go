// Package axis computes the ticks, labels and gridlines of a chart axis.
//
// # Overview
//
// An axis is bound to a [scale.Scale], an [Orientation] and the pixel
// height available to it. Every input change triggers one pass through
// [Compute], which returns a [Layout]: the selected ticks with their
// transforms and labels plus the geometry shared by all labels. Nothing
// is cached between passes.
//
// # Tick Selection
//
// Explicit tick values are rendered verbatim. Otherwise the scale's
// generator is asked for ticks with the tick arguments (default [5]) and,
// when they would not fit at 20px per tick, asked again with a smaller
// count hint. Scales without a generator (band scales) have their domain
// thinned by [ReduceTicks].
//
// # Geometry
//
// Orientation decides everything else through a small table:
//
//	orient  sign  anchor  offsets          dy
//	top     -1    middle  y1=-9  y2=-6     0em
//	bottom  +1    middle  y1=9   y2=6      .71em
//	left    +1    end     x1=-9  x2=-6     .32em
//	right   -1    start   x1=9   x2=6      .32em
//
// Band scales are positioned at the center of each band.
//
// # Size Feedback
//
// [Component] wraps Compute for hosts that reserve layout space from the
// rendered label width. [Component.Settle] measures the current layout
// through a [Measurer] until two consecutive measurements agree, calling
// the dimensions listener once per observed change:
//
//	c := axis.New(
//	    axis.WithMeasurer(bbox.NewMeasurer(face)),
//	    axis.WithOnDimensionsChanged(func(d axis.Dimensions) { margin.Left = d.Width }),
//	)
//	defer c.Close()
//	l, err := c.Update(ctx, axis.Inputs{Scale: y, Orient: axis.Left, Height: 300})
//	go c.Settle(ctx)
//
// [scale.Scale]: github.com/matzehuels/axisticks/pkg/scale.Scale
package axis
