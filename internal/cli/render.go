package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/axisticks/pkg/axis"
	"github.com/matzehuels/axisticks/pkg/axis/bbox"
	"github.com/matzehuels/axisticks/pkg/axis/sink"
	"github.com/matzehuels/axisticks/pkg/cache"
	"github.com/matzehuels/axisticks/pkg/config"
	"github.com/matzehuels/axisticks/pkg/errors"
	"github.com/matzehuels/axisticks/pkg/render"
)

// conversionTTL is how long PDF and PNG conversions stay in the CLI cache.
const conversionTTL = 7 * 24 * time.Hour

// renderOpts holds the render command's flags. Zero values defer to the
// definition file's [output] table.
type renderOpts struct {
	output    string   // base path; files are written as <base>_<axis>.<format>
	formats   []string // svg, json, pdf, png
	axes      []string // subset of axis names
	padding   float64  // document padding; negative means the file's value
	tickMarks bool
	embedFont bool
	pngScale  float64
	jobs      int
	noCache   bool
}

func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{padding: -1, jobs: runtime.GOMAXPROCS(0)}

	cmd := &cobra.Command{
		Use:   "render <axes.toml>",
		Short: "Render the axes of a definition file",
		Long: `Render lays out every [[axis]] of a definition file and writes one file
per axis and format, named <base>_<axis>.<format>. The base defaults to the
definition file's path without its extension.

PDF and PNG output require rsvg-convert on the PATH.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if formatsStr != "" {
				opts.formats = strings.Split(formatsStr, ",")
			}
			for _, f := range opts.formats {
				if err := config.ValidateFormat(f); err != nil {
					return err
				}
			}
			return runRender(cmd.Context(), args[0], opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output base path")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg, json, pdf, png (comma-separated)")
	cmd.Flags().StringSliceVar(&opts.axes, "axis", nil, "render only the named axes")
	cmd.Flags().Float64Var(&opts.padding, "padding", opts.padding, "document padding in pixels (default from file, else 10)")
	cmd.Flags().BoolVar(&opts.tickMarks, "tick-marks", false, "draw tick marks on every axis")
	cmd.Flags().BoolVar(&opts.embedFont, "embed-font", false, "embed the label font in SVG documents")
	cmd.Flags().Float64Var(&opts.pngScale, "scale", 0, "PNG scale factor (default from file, else 2)")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", opts.jobs, "number of axes rendered in parallel")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "do not reuse cached PDF/PNG conversions")

	return cmd
}

// runRender renders the selected axes of the definition at path.
func runRender(ctx context.Context, path string, opts renderOpts, cmd *cobra.Command) error {
	logger := loggerFromContext(ctx)

	file, err := config.Load(path)
	if err != nil {
		return err
	}
	axes, err := file.Select(opts.axes...)
	if err != nil {
		return err
	}
	enc := newEncoder(file.Output, opts)
	store := newCache(opts.noCache, logger)
	defer store.Close()
	enc.converter = render.NewConverter(store, conversionTTL)

	m, err := bbox.NewDefaultMeasurer()
	if err != nil {
		return err
	}

	base := opts.output
	if base == "" {
		base = strings.TrimSuffix(path, filepath.Ext(path))
	}

	prog := newProgress(logger)
	spin := newSpinner(ctx, cmd.ErrOrStderr(), fmt.Sprintf("Rendering %d axes...", len(axes)))
	spin.Start()

	written := make([][]string, len(axes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(opts.jobs, len(axes))))
	for i, a := range axes {
		g.Go(func() error {
			paths, err := renderAxis(gctx, a, m, enc, base, logger.With("axis", a.Name))
			if err != nil {
				return fmt.Errorf("axis %q: %w", a.Name, err)
			}
			written[i] = paths
			return nil
		})
	}
	err = g.Wait()
	spin.Stop()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var total int
	for _, paths := range written {
		for _, p := range paths {
			printFile(out, p)
			total++
		}
	}
	printSuccess(out, "Rendered %d axes to %d files", len(axes), total)
	prog.done("render finished")
	return nil
}

// renderAxis settles one axis and writes it in every requested format.
func renderAxis(ctx context.Context, a config.Axis, m *bbox.Measurer, enc encoder, base string, logger *log.Logger) ([]string, error) {
	in, err := a.Inputs()
	if err != nil {
		return nil, err
	}
	l, width, err := settleAxis(ctx, in, m, logger)
	if err != nil {
		return nil, err
	}
	frame := sink.FitFrame(l, a.Length(), m.Bounds(l), enc.padding)
	enc.name, enc.width = a.Name, width
	enc.tickMarks = enc.tickMarks || a.TickMarks

	paths := make([]string, 0, len(enc.formats))
	for _, format := range enc.formats {
		data, err := enc.encode(ctx, format, l, frame)
		if err != nil {
			return nil, err
		}
		p := fmt.Sprintf("%s_%s.%s", base, a.Name, format)
		if err := os.WriteFile(p, data, 0o644); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to write %s", p)
		}
		logger.Debug("wrote axis", "path", p, "size", humanize.Bytes(uint64(len(data))))
		paths = append(paths, p)
	}
	return paths, nil
}

// settleAxis mounts a component for in, runs the size feedback loop and
// returns the final layout and width. A loop that does not converge is
// logged and its last width kept.
func settleAxis(ctx context.Context, in axis.Inputs, m axis.Measurer, logger *log.Logger) (axis.Layout, int, error) {
	c := axis.New(axis.WithMeasurer(m), axis.WithLogger(logger))
	defer c.Close()

	l, err := c.Update(ctx, in)
	if err != nil {
		return axis.Layout{}, 0, err
	}
	if err := c.Settle(ctx); err != nil {
		if !errors.Is(err, errors.ErrCodeNotConverged) {
			return axis.Layout{}, 0, err
		}
		logger.Warn("axis width did not settle", "width", c.Width())
	}
	logger.Debug("axis settled", "ticks", len(l.Ticks), "width", c.Width())
	return l, c.Width(), nil
}

// encoder turns a settled layout into output bytes.
type encoder struct {
	formats   []string
	padding   float64
	tickMarks bool
	embedFont bool
	pngScale  float64
	converter *render.Converter
	name      string
	width     int
}

// newEncoder merges flag values over the file's [output] table.
func newEncoder(out config.Output, opts renderOpts) encoder {
	e := encoder{
		formats:   out.Formats,
		padding:   out.PaddingOr(config.DefaultPadding),
		tickMarks: opts.tickMarks,
		embedFont: opts.embedFont || out.EmbedFont,
		pngScale:  out.PNGScale,
	}
	if len(opts.formats) > 0 {
		e.formats = opts.formats
	}
	if opts.padding >= 0 {
		e.padding = opts.padding
	}
	if opts.pngScale > 0 {
		e.pngScale = opts.pngScale
	}
	return e
}

func (e encoder) svgOptions() []sink.SVGOption {
	var opts []sink.SVGOption
	if e.tickMarks {
		opts = append(opts, sink.WithTickMarks())
	}
	if e.embedFont {
		opts = append(opts, sink.WithEmbeddedFont())
	}
	return opts
}

func (e encoder) encode(ctx context.Context, format string, l axis.Layout, frame sink.Frame) ([]byte, error) {
	switch format {
	case config.FormatSVG:
		return sink.RenderDocument(l, frame, e.svgOptions()...), nil
	case config.FormatJSON:
		return sink.RenderJSON(l, sink.WithJSONName(e.name), sink.WithJSONWidth(e.width))
	case config.FormatPDF:
		opts := []sink.PDFOption{sink.WithPDFSVGOptions(e.svgOptions()...)}
		if e.converter != nil {
			opts = append(opts, sink.WithPDFConverter(e.converter))
		}
		return sink.RenderPDF(ctx, l, frame, opts...)
	case config.FormatPNG:
		opts := []sink.PNGOption{sink.WithPNGSVGOptions(e.svgOptions()...)}
		if e.converter != nil {
			opts = append(opts, sink.WithPNGConverter(e.converter))
		}
		if e.pngScale > 0 {
			opts = append(opts, sink.WithScale(e.pngScale))
		}
		return sink.RenderPNG(ctx, l, frame, opts...)
	}
	return nil, config.ValidateFormat(format)
}

// newCache opens the conversion cache under the user cache directory,
// falling back to no caching when it cannot be created.
func newCache(noCache bool, logger *log.Logger) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err == nil {
		var fc *cache.FileCache
		if fc, err = cache.NewFileCache(dir); err == nil {
			return fc
		}
	}
	logger.Debug("conversion cache disabled", "err", err)
	return cache.NewNullCache()
}

// cacheDir follows XDG: $XDG_CACHE_HOME/axisticks or ~/.cache/axisticks.
func cacheDir() (string, error) {
	if home := os.Getenv("XDG_CACHE_HOME"); home != "" {
		return filepath.Join(home, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
