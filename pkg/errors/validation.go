package errors

import (
	"math"
	"strings"
	"unicode"
)

// maxAxisNameLength bounds names used to derive output file names.
const maxAxisNameLength = 64

// maxTickCount bounds the tick count hint accepted from definitions and
// requests.
const maxTickCount = 1000

// ValidateHeight checks the pixel height available to an axis.
// Zero is allowed (it renders no generated ticks); negative, NaN and
// infinite values are rejected.
func ValidateHeight(h float64) error {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return New(ErrCodeInvalidInput, "height must be a finite number")
	}
	if h < 0 {
		return New(ErrCodeInvalidInput, "height cannot be negative (got %g)", h)
	}
	return nil
}

// ValidateGridLineWidth checks the gridline span.
func ValidateGridLineWidth(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return New(ErrCodeInvalidInput, "grid line width must be a finite number")
	}
	if w < 0 {
		return New(ErrCodeInvalidInput, "grid line width cannot be negative (got %g)", w)
	}
	return nil
}

// ValidateTickCount checks a tick count hint: zero asks for no generated
// ticks, anything above 1000 is rejected.
func ValidateTickCount(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidInput, "tick count cannot be negative (got %d)", n)
	}
	if n > maxTickCount {
		return New(ErrCodeInvalidInput, "tick count too large (max %d, got %d)", maxTickCount, n)
	}
	return nil
}

// ValidateAxisName validates an axis name for use in output file names.
//
// Validation rules:
//   - Name cannot be empty
//   - Maximum length of 64 characters
//   - No control characters
//   - No path separators or traversal sequences
func ValidateAxisName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidConfig, "axis name cannot be empty")
	}
	if len(name) > maxAxisNameLength {
		return New(ErrCodeInvalidConfig, "axis name too long (max %d characters)", maxAxisNameLength)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "axis name contains invalid control characters")
		}
	}
	for _, pattern := range []string{"..", "/", "\\"} {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidConfig, "axis name contains invalid characters: %q", pattern)
		}
	}
	return nil
}

// ValidateRange checks a two-element numeric extent.
func ValidateRange(what string, r []float64) error {
	if len(r) != 2 {
		return New(ErrCodeInvalidScale, "%s must have exactly 2 elements (got %d)", what, len(r))
	}
	for _, v := range r {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return New(ErrCodeInvalidScale, "%s must contain finite numbers", what)
		}
	}
	return nil
}
