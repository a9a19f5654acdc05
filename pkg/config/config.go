package config

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/axisticks/pkg/axis"
	"github.com/matzehuels/axisticks/pkg/errors"
	"github.com/matzehuels/axisticks/pkg/scale"
)

// Scale types.
const (
	ScaleLinear = "linear"
	ScaleBand   = "band"
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatPDF  = "pdf"
	FormatPNG  = "png"
)

// DefaultPadding is the document padding around an axis, in pixels.
const DefaultPadding = 10.0

// File is a decoded axis definition file.
type File struct {
	Output Output `toml:"output"`
	Axes   []Axis `toml:"axis"`
}

// Output holds rendering defaults the CLI flags override.
type Output struct {
	Formats   []string `toml:"formats"`
	Padding   *float64 `toml:"padding"`
	EmbedFont bool     `toml:"embed_font"`
	PNGScale  float64  `toml:"png_scale"`
}

// Axis is one [[axis]] table.
type Axis struct {
	Name   string `toml:"name"`
	Orient string `toml:"orient"`

	// Height caps generated ticks; it defaults to the range extent.
	Height *float64 `toml:"height"`

	// Width is the plot width gridlines span unless grid_line_width is set.
	Width float64 `toml:"width"`

	TickCount      *int     `toml:"tick_count"`
	TickValues     []any    `toml:"tick_values"`
	Format         string   `toml:"format"`
	GridLines      bool     `toml:"grid_lines"`
	GridLineWidth  *float64 `toml:"grid_line_width"`
	MaxLabelLength int      `toml:"max_label_length"`
	TickMarks      bool     `toml:"tick_marks"`

	Scale Scale `toml:"scale"`
}

// Scale is the [axis.scale] table.
type Scale struct {
	Type         string    `toml:"type"`
	Domain       []any     `toml:"domain"`
	Range        []float64 `toml:"range"`
	PaddingInner float64   `toml:"padding_inner"`
	PaddingOuter float64   `toml:"padding_outer"`
}

// Load reads and validates the definition file at path.
func Load(path string) (*File, error) {
	var f File
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s: failed to parse TOML", path)
	}
	if err := f.check(meta); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &f, nil
}

// Parse decodes and validates a definition from TOML text.
func Parse(data string) (*File, error) {
	var f File
	meta, err := toml.Decode(data, &f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to parse TOML")
	}
	if err := f.check(meta); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) check(meta toml.MetaData) error {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	f.applyDefaults()
	return f.Validate()
}

func (f *File) applyDefaults() {
	for i := range f.Axes {
		a := &f.Axes[i]
		if a.Name == "" {
			a.Name = fmt.Sprintf("axis%d", i+1)
		}
		if a.Scale.Type == "" {
			a.Scale.Type = ScaleLinear
		}
	}
	if len(f.Output.Formats) == 0 {
		f.Output.Formats = []string{FormatSVG}
	}
}

// Validate checks every axis and the output table.
func (f *File) Validate() error {
	if len(f.Axes) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "no [[axis]] defined")
	}
	seen := make(map[string]bool, len(f.Axes))
	for _, a := range f.Axes {
		if err := errors.ValidateAxisName(a.Name); err != nil {
			return err
		}
		if seen[a.Name] {
			return errors.New(errors.ErrCodeInvalidConfig, "duplicate axis name %q", a.Name)
		}
		seen[a.Name] = true
		if err := a.Validate(); err != nil {
			return fmt.Errorf("axis %q: %w", a.Name, err)
		}
	}
	for _, format := range f.Output.Formats {
		if err := ValidateFormat(format); err != nil {
			return err
		}
	}
	if p := f.Output.Padding; p != nil && (*p < 0 || math.IsNaN(*p)) {
		return errors.New(errors.ErrCodeInvalidConfig, "output padding cannot be negative")
	}
	if f.Output.PNGScale < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "png_scale cannot be negative")
	}
	return nil
}

// ValidateFormat checks an output format name.
func ValidateFormat(format string) error {
	switch format {
	case FormatSVG, FormatJSON, FormatPDF, FormatPNG:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unknown output format %q (must be svg, json, pdf or png)", format)
}

// PaddingOr returns the configured document padding, or def when unset.
func (o Output) PaddingOr(def float64) float64 {
	if o.Padding == nil {
		return def
	}
	return *o.Padding
}

// Select returns the axes named in names, in file order. No names selects
// every axis.
func (f *File) Select(names ...string) ([]Axis, error) {
	if len(names) == 0 {
		return f.Axes, nil
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	var out []Axis
	for _, a := range f.Axes {
		if want[a.Name] {
			out = append(out, a)
			delete(want, a.Name)
		}
	}
	if len(want) > 0 {
		missing := slices.Sorted(maps.Keys(want))
		return nil, errors.New(errors.ErrCodeInvalidInput, "no axis named %s", strings.Join(missing, ", "))
	}
	return out, nil
}

// Validate checks a single axis definition.
func (a Axis) Validate() error {
	if _, err := axis.ParseOrientation(a.Orient); err != nil {
		return err
	}
	if a.Height != nil {
		if err := errors.ValidateHeight(*a.Height); err != nil {
			return err
		}
	}
	if err := errors.ValidateGridLineWidth(a.Width); err != nil {
		return err
	}
	if a.GridLineWidth != nil {
		if err := errors.ValidateGridLineWidth(*a.GridLineWidth); err != nil {
			return err
		}
	}
	if a.TickCount != nil {
		if err := errors.ValidateTickCount(*a.TickCount); err != nil {
			return err
		}
	}
	if a.MaxLabelLength < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max_label_length cannot be negative")
	}
	if a.Format != "" {
		if _, err := Formatter(a.Format); err != nil {
			return err
		}
	}
	_, err := a.BuildScale()
	return err
}

// Length returns the pixel extent of the axis's range.
func (a Axis) Length() float64 {
	if len(a.Scale.Range) != 2 {
		return 0
	}
	return math.Abs(a.Scale.Range[1] - a.Scale.Range[0])
}

// BuildScale constructs the scale described by the [axis.scale] table.
func (a Axis) BuildScale() (scale.Scale, error) {
	s := a.Scale
	if err := errors.ValidateRange("range", s.Range); err != nil {
		return nil, err
	}
	rng := [2]float64{s.Range[0], s.Range[1]}

	switch s.Type {
	case ScaleLinear:
		if len(s.Domain) != 2 {
			return nil, errors.New(errors.ErrCodeInvalidScale, "linear domain must have exactly 2 elements (got %d)", len(s.Domain))
		}
		var d [2]float64
		for i, v := range s.Domain {
			f, ok := scale.ToFloat(v)
			if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
				return nil, errors.New(errors.ErrCodeInvalidScale, "linear domain must contain finite numbers (got %v)", v)
			}
			d[i] = f
		}
		return scale.NewLinear(d, rng), nil
	case ScaleBand:
		if len(s.Domain) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidScale, "band domain cannot be empty")
		}
		for _, v := range s.Domain {
			switch v.(type) {
			case string, int64, float64, bool:
			default:
				return nil, errors.New(errors.ErrCodeInvalidScale, "band domain values must be strings, numbers or booleans (got %T)", v)
			}
		}
		if s.PaddingInner < 0 || s.PaddingInner > 1 || s.PaddingOuter < 0 {
			return nil, errors.New(errors.ErrCodeInvalidScale, "band padding out of bounds")
		}
		return scale.NewBand(s.Domain, rng,
			scale.WithPaddingInner(s.PaddingInner),
			scale.WithPaddingOuter(s.PaddingOuter),
		), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidScale, "unknown scale type %q (must be linear or band)", s.Type)
}

// Inputs converts the definition into renderer inputs.
func (a Axis) Inputs() (axis.Inputs, error) {
	orient, err := axis.ParseOrientation(a.Orient)
	if err != nil {
		return axis.Inputs{}, err
	}
	s, err := a.BuildScale()
	if err != nil {
		return axis.Inputs{}, err
	}

	in := axis.Inputs{
		Scale:          s,
		Orient:         orient,
		TickValues:     a.TickValues,
		ShowGridLines:  a.GridLines,
		GridLineWidth:  a.Width,
		Height:         a.Length(),
		MaxLabelLength: a.MaxLabelLength,
	}
	if a.Height != nil {
		in.Height = *a.Height
	}
	if a.GridLineWidth != nil {
		in.GridLineWidth = *a.GridLineWidth
	}
	if a.TickCount != nil {
		in.TickArguments = []any{*a.TickCount}
	}
	if a.Format != "" {
		if in.TickFormatting, err = Formatter(a.Format); err != nil {
			return axis.Inputs{}, err
		}
	}
	return in, nil
}
