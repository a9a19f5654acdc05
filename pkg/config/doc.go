// Package config loads axis definition files.
//
// Definitions are TOML documents with one [[axis]] table per axis:
//
//	[output]
//	formats = ["svg", "json"]
//	padding = 12
//
//	[[axis]]
//	name = "revenue"
//	orient = "left"
//	height = 300
//	format = "$%.0f"
//	grid_lines = true
//	width = 640
//
//	[axis.scale]
//	type = "linear"
//	domain = [0, 12000]
//	range = [300, 0]
//
//	[[axis]]
//	name = "quarter"
//	orient = "bottom"
//
//	[axis.scale]
//	type = "band"
//	domain = ["Q1", "Q2", "Q3", "Q4"]
//	range = [0, 640]
//	padding_inner = 0.1
//
// Unknown keys are rejected, as are definitions the renderer could not
// draw (unknown orientation, malformed scale, negative sizes). Errors carry
// the INVALID_CONFIG, INVALID_SCALE, INVALID_FORMAT or INVALID_ORIENTATION
// codes of package errors.
//
// [Axis.Inputs] turns a definition into [axis.Inputs]. A missing height
// defaults to the range extent; a missing grid_line_width to width.
package config
