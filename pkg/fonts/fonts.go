// Package fonts provides the embedded font tick labels are laid out with.
//
// The Go Regular font ships with golang.org/x/image, so label widths can be
// measured without any font installed on the host. The same bytes can be
// embedded into standalone SVG documents so viewers render exactly the
// glyphs that were measured.
package fonts

import (
	"encoding/base64"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// DefaultSize is the label font size in pixels.
const DefaultSize = 12.0

// FontFamily is the CSS font-family name of the embedded font.
const FontFamily = "Go"

// FallbackFontFamily lists fallbacks for viewers without the embedded font.
const FallbackFontFamily = `'Go', 'Helvetica Neue', Helvetica, Arial, sans-serif`

// RegularTTF returns the TTF font data.
func RegularTTF() []byte {
	return goregular.TTF
}

// Parsed font and base64 encoding are computed once on first access.
var (
	regular     *opentype.Font
	regularErr  error
	regularOnce sync.Once

	ttfBase64     string
	ttfBase64Once sync.Once
)

// Regular returns the parsed Go Regular font.
func Regular() (*opentype.Font, error) {
	regularOnce.Do(func() {
		regular, regularErr = opentype.Parse(goregular.TTF)
	})
	return regular, regularErr
}

// Face returns a new face of the regular font at size pixels. Faces are
// not safe for concurrent use; callers needing one per goroutine should
// create one per goroutine.
func Face(size float64) (font.Face, error) {
	f, err := Regular()
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72, // 1pt == 1px
		Hinting: font.HintingNone,
	})
}

// RegularTTFBase64 returns the TTF font data as a base64 string.
func RegularTTFBase64() string {
	ttfBase64Once.Do(func() {
		ttfBase64 = base64.StdEncoding.EncodeToString(goregular.TTF)
	})
	return ttfBase64
}
