package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/matzehuels/axisticks/pkg/cache"
	"github.com/matzehuels/axisticks/pkg/errors"
)

// converter is the librsvg command line tool used for all conversions.
const converter = "rsvg-convert"

// lookPath is replaced in tests.
var lookPath = exec.LookPath

// Format is an output format reachable from SVG.
type Format string

// Supported conversion targets.
const (
	FormatPDF Format = "pdf"
	FormatPNG Format = "png"
)

// Available reports whether rsvg-convert is installed.
func Available() bool {
	_, err := lookPath(converter)
	return err == nil
}

// Converter runs rsvg-convert with results cached by input. Cache
// failures fall back to converting.
type Converter struct {
	cache cache.Cache
	ttl   time.Duration
	run   func(ctx context.Context, svg []byte, format Format, extraArgs ...string) ([]byte, error)
}

var defaultConverter = NewConverter(nil, 0)

// NewConverter returns a converter storing results in c for ttl. A nil
// cache disables caching.
func NewConverter(c cache.Cache, ttl time.Duration) *Converter {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Converter{cache: c, ttl: ttl, run: rsvgConvert}
}

// ToPDF converts SVG bytes to PDF using rsvg-convert.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return defaultConverter.ToPDF(ctx, svg)
}

// ToPNG converts SVG bytes to PNG using rsvg-convert with the given scale
// factor. Scale of 2.0 produces a 2x resolution image; zero or less means 1.
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	return defaultConverter.ToPNG(ctx, svg, scale)
}

func (c *Converter) ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return c.convert(ctx, svg, FormatPDF)
}

func (c *Converter) ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = 1
	}
	return c.convert(ctx, svg, FormatPNG, "-z", fmt.Sprintf("%.2f", scale))
}

func (c *Converter) convert(ctx context.Context, svg []byte, format Format, extraArgs ...string) ([]byte, error) {
	key := cache.Key("convert", format, extraArgs, cache.Hash(svg))
	if data, ok, err := c.cache.Get(ctx, key); err == nil && ok {
		return data, nil
	}
	data, err := c.run(ctx, svg, format, extraArgs...)
	if err != nil {
		return nil, err
	}
	_ = c.cache.Set(ctx, key, data, c.ttl)
	return data, nil
}

func rsvgConvert(ctx context.Context, svg []byte, format Format, extraArgs ...string) ([]byte, error) {
	path, err := lookPath(converter)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnsupported, err,
			"%s export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", format)
	}

	args := append([]string{"-f", string(format)}, extraArgs...)
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "%s: %s", converter, strings.TrimSpace(errBuf.String()))
	}
	return out.Bytes(), nil
}
