package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/axisticks/pkg/axis"
	"github.com/matzehuels/axisticks/pkg/errors"
)

const twoAxes = `
[output]
formats = ["svg", "json"]
padding = 12

[[axis]]
name = "revenue"
orient = "left"
height = 300
tick_count = 4
format = "$%.0f"
grid_lines = true
width = 640

[axis.scale]
domain = [0, 12000]
range = [300, 0]

[[axis]]
orient = "Bottom"
tick_values = ["Q1", "Q3"]

[axis.scale]
type = "band"
domain = ["Q1", "Q2", "Q3", "Q4"]
range = [0, 640]
`

func TestParse(t *testing.T) {
	f, err := Parse(twoAxes)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if diff := cmp.Diff([]string{"svg", "json"}, f.Output.Formats); diff != "" {
		t.Errorf("formats mismatch (-want +got):\n%s", diff)
	}
	if got := f.Output.PaddingOr(DefaultPadding); got != 12 {
		t.Errorf("padding = %v, want 12", got)
	}
	if len(f.Axes) != 2 {
		t.Fatalf("len(Axes) = %d, want 2", len(f.Axes))
	}
	if f.Axes[0].Scale.Type != ScaleLinear {
		t.Errorf("default scale type = %q, want %q", f.Axes[0].Scale.Type, ScaleLinear)
	}
	if f.Axes[1].Name != "axis2" {
		t.Errorf("default name = %q, want axis2", f.Axes[1].Name)
	}
}

func TestAxisInputs(t *testing.T) {
	f, err := Parse(twoAxes)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	revenue, err := f.Axes[0].Inputs()
	if err != nil {
		t.Fatalf("Inputs() error = %v", err)
	}
	if revenue.Orient != axis.Left || revenue.Height != 300 || revenue.GridLineWidth != 640 || !revenue.ShowGridLines {
		t.Errorf("unexpected inputs %+v", revenue)
	}
	if diff := cmp.Diff([]any{4}, revenue.TickArguments); diff != "" {
		t.Errorf("tick arguments mismatch (-want +got):\n%s", diff)
	}
	l, err := axis.Compute(revenue)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	var labels []string
	for _, tick := range l.Ticks {
		labels = append(labels, tick.Label)
	}
	want := []string{"$0", "$2000", "$4000", "$6000", "$8000", "$10000", "$12000"}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}

	quarter, err := f.Axes[1].Inputs()
	if err != nil {
		t.Fatalf("Inputs() error = %v", err)
	}
	if quarter.Orient != axis.Bottom {
		t.Errorf("Orient = %q, want bottom", quarter.Orient)
	}
	if quarter.Height != 640 {
		t.Errorf("Height = %v, want the range extent 640", quarter.Height)
	}
	if quarter.TickArguments != nil {
		t.Errorf("TickArguments = %v, want nil for the renderer default", quarter.TickArguments)
	}
	l, _ = axis.Compute(quarter)
	if diff := cmp.Diff([]any{"Q1", "Q3"}, l.Values()); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestGridLineWidthOverridesWidth(t *testing.T) {
	f, err := Parse(`
[[axis]]
orient = "left"
width = 640
grid_line_width = 500
[axis.scale]
domain = [0, 1]
range = [100, 0]
`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	in, _ := f.Axes[0].Inputs()
	if in.GridLineWidth != 500 {
		t.Errorf("GridLineWidth = %v, want 500", in.GridLineWidth)
	}
}

func TestParseErrors(t *testing.T) {
	const scaleOK = "\n[axis.scale]\ndomain = [0, 1]\nrange = [0, 100]\n"
	tests := []struct {
		name string
		toml string
		code errors.Code
	}{
		{"syntax", "[[axis]\n", errors.ErrCodeInvalidConfig},
		{"no axes", "[output]\npadding = 1\n", errors.ErrCodeInvalidConfig},
		{"unknown key", "[[axis]]\norient = \"left\"\ncolour = \"red\"" + scaleOK, errors.ErrCodeInvalidConfig},
		{"bad orientation", "[[axis]]\norient = \"diagonal\"" + scaleOK, errors.ErrCodeInvalidOrientation},
		{"huge tick count", "[[axis]]\norient = \"left\"\ntick_count = 2000000000" + scaleOK, errors.ErrCodeInvalidInput},
		{"negative height", "[[axis]]\norient = \"left\"\nheight = -1" + scaleOK, errors.ErrCodeInvalidInput},
		{"bad name", "[[axis]]\nname = \"../x\"\norient = \"left\"" + scaleOK, errors.ErrCodeInvalidConfig},
		{"duplicate name", "[[axis]]\nname = \"a\"\norient = \"left\"" + scaleOK + "[[axis]]\nname = \"a\"\norient = \"top\"" + scaleOK, errors.ErrCodeInvalidConfig},
		{"bad format", "[[axis]]\norient = \"left\"\nformat = \"%d and %d\"" + scaleOK, errors.ErrCodeInvalidFormat},
		{"bad output format", "[output]\nformats = [\"gif\"]\n[[axis]]\norient = \"left\"" + scaleOK, errors.ErrCodeInvalidFormat},
		{"scale type", "[[axis]]\norient = \"left\"\n[axis.scale]\ntype = \"log\"\ndomain = [1, 10]\nrange = [0, 1]\n", errors.ErrCodeInvalidScale},
		{"linear domain", "[[axis]]\norient = \"left\"\n[axis.scale]\ndomain = [\"a\", \"b\"]\nrange = [0, 1]\n", errors.ErrCodeInvalidScale},
		{"range length", "[[axis]]\norient = \"left\"\n[axis.scale]\ndomain = [0, 1]\nrange = [0]\n", errors.ErrCodeInvalidScale},
		{"empty band", "[[axis]]\norient = \"left\"\n[axis.scale]\ntype = \"band\"\ndomain = []\nrange = [0, 1]\n", errors.ErrCodeInvalidScale},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.toml)
			if !errors.Is(err, tt.code) {
				t.Errorf("Parse() error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "axes.toml")
	if err := os.WriteFile(path, []byte(twoAxes), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(f.Axes) != 2 {
		t.Errorf("len(Axes) = %d, want 2", len(f.Axes))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Load() of missing file error = %v, want %v", err, errors.ErrCodeInvalidConfig)
	}
}

func TestSelect(t *testing.T) {
	f, err := Parse(twoAxes)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	all, _ := f.Select()
	if len(all) != 2 {
		t.Errorf("Select() = %d axes, want 2", len(all))
	}
	one, err := f.Select("revenue")
	if err != nil || len(one) != 1 || one[0].Name != "revenue" {
		t.Errorf("Select(revenue) = %v, %v", one, err)
	}
	if _, err := f.Select("revenue", "nope"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Select(nope) error = %v, want %v", err, errors.ErrCodeInvalidInput)
	}
}

func TestFormatter(t *testing.T) {
	tests := []struct {
		format string
		in     any
		want   string
	}{
		{"%.1f%%", 12.345, "12.3%"},
		{"%.1f%%", int64(12), "12.0%"},
		{"$%d", 1500.0, "$1500"},
		{"%s units", "ten", "ten units"},
		{"%v", int64(3), "3"},
		{"[%5.2f]", 1.0, "[ 1.00]"},
	}
	for _, tt := range tests {
		f, err := Formatter(tt.format)
		if err != nil {
			t.Fatalf("Formatter(%q) error = %v", tt.format, err)
		}
		if got := f(tt.in); got != tt.want {
			t.Errorf("Formatter(%q)(%v) = %q, want %q", tt.format, tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "plain", "%d %d", "%", "%.2", "%z"} {
		if _, err := Formatter(bad); !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("Formatter(%q) error = %v, want %v", bad, err, errors.ErrCodeInvalidFormat)
		}
	}
}
