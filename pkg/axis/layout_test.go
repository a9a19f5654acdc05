package axis

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/axisticks/pkg/errors"
	"github.com/matzehuels/axisticks/pkg/scale"
)

// fixedBand maps every value to the same band start.
type fixedBand struct {
	start, bandwidth float64
	domain           []any
}

func (b fixedBand) Scale(any) float64  { return b.start }
func (b fixedBand) Bandwidth() float64 { return b.bandwidth }
func (b fixedBand) Domain() []any      { return b.domain }

func TestComputeLinearLeft(t *testing.T) {
	y := scale.NewLinear([2]float64{0, 100}, [2]float64{300, 0})

	l, err := Compute(Inputs{Scale: y, Orient: Left, Height: 300})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	wantValues := []any{0.0, 20.0, 40.0, 60.0, 80.0, 100.0}
	if diff := cmp.Diff(wantValues, l.Values()); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}

	var transforms, labels []string
	for _, tick := range l.Ticks {
		transforms = append(transforms, tick.Transform)
		labels = append(labels, tick.Label)
	}
	wantTransforms := []string{
		"translate(0,300)", "translate(0,240)", "translate(0,180)",
		"translate(0,120)", "translate(0,60)", "translate(0,0)",
	}
	if diff := cmp.Diff(wantTransforms, transforms); diff != "" {
		t.Errorf("transforms mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"0", "20", "40", "60", "80", "100"}, labels); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{5}, l.TickArguments); diff != "" {
		t.Errorf("tick arguments mismatch (-want +got):\n%s", diff)
	}
	if l.Geometry.TextAnchor != AnchorEnd || *l.Geometry.X1 != -9 || *l.Geometry.X2 != -6 {
		t.Errorf("unexpected geometry %+v", l.Geometry)
	}
}

func TestComputeExplicitValuesIgnoreHeight(t *testing.T) {
	for _, s := range []scale.Scale{
		scale.NewLinear([2]float64{0, 10}, [2]float64{0, 100}),
		bare{},
	} {
		l, err := Compute(Inputs{Scale: s, Orient: Bottom, TickValues: []any{1, 2, 3}, Height: 0})
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		if diff := cmp.Diff([]any{1, 2, 3}, l.Values()); diff != "" {
			t.Errorf("%T: values mismatch (-want +got):\n%s", s, diff)
		}
	}
}

func TestComputeBandCentering(t *testing.T) {
	s := fixedBand{start: 20, bandwidth: 10, domain: []any{"x"}}

	l, err := Compute(Inputs{Scale: s, Orient: Bottom, Height: 100})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if len(l.Ticks) != 1 {
		t.Fatalf("len(Ticks) = %d, want 1", len(l.Ticks))
	}
	if got := l.Ticks[0].Position; got != 25 {
		t.Errorf("Position = %v, want 25", got)
	}
	if got := l.Ticks[0].Transform; got != "translate(25,0)" {
		t.Errorf("Transform = %q, want %q", got, "translate(25,0)")
	}
}

func TestComputeBandScale(t *testing.T) {
	x := scale.NewBand([]any{"A", "B", "C", "D", "E", "F"}, [2]float64{0, 600})

	l, err := Compute(Inputs{Scale: x, Orient: Bottom, Height: 40})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if diff := cmp.Diff([]any{"A", "F"}, l.Values()); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
	if got := l.Ticks[1].Position; got != 550 {
		t.Errorf("F position = %v, want 550", got)
	}
}

func TestComputeNoRoom(t *testing.T) {
	y := scale.NewLinear([2]float64{0, 100}, [2]float64{0, 100})
	for _, h := range []float64{0, -10, 19} {
		l, err := Compute(Inputs{Scale: y, Orient: Left, Height: h})
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		if len(l.Ticks) != 0 {
			t.Errorf("height %v: got %d ticks, want none", h, len(l.Ticks))
		}
	}
}

func TestComputeCapsGeneratedTicks(t *testing.T) {
	y := scale.NewLinear([2]float64{0, 100}, [2]float64{0, 100})
	for h := 0.0; h <= 500; h += 5 {
		l, err := Compute(Inputs{Scale: y, Orient: Right, TickArguments: []any{20}, Height: h})
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		if len(l.Ticks) > MaxTicks(h) {
			t.Errorf("height %v: %d ticks exceed %d", h, len(l.Ticks), MaxTicks(h))
		}
	}
}

func TestComputeLeavesInputsUntouched(t *testing.T) {
	args := []any{50}
	in := Inputs{
		Scale:         scale.NewLinear([2]float64{0, 100}, [2]float64{0, 100}),
		Orient:        Left,
		TickArguments: args,
		Height:        100,
	}
	l, err := Compute(in)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if args[0] != 50 {
		t.Errorf("caller tick arguments modified to %v", args)
	}
	if diff := cmp.Diff([]any{5}, l.TickArguments); diff != "" {
		t.Errorf("effective tick arguments mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeLabels(t *testing.T) {
	long := "A very long category name"
	l, err := Compute(Inputs{
		Scale:          bare{},
		Orient:         Bottom,
		TickValues:     []any{long, 3},
		TickFormatting: func(v any) string { return "  " + identity(v) + "  " },
	})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if got := l.Ticks[0].Title; got != "  "+long+"  " {
		t.Errorf("Title = %q, want untrimmed formatter output", got)
	}
	if got := l.Ticks[0].Label; got != "A very long cate..." {
		t.Errorf("Label = %q, want %q", got, "A very long cate...")
	}
	if got := l.Ticks[1].Label; got != "3" {
		t.Errorf("Label = %q, want %q", got, "3")
	}

	l, _ = Compute(Inputs{Scale: bare{}, Orient: Bottom, TickValues: []any{long}, MaxLabelLength: 6})
	if got := l.Ticks[0].Label; got != "A very..." {
		t.Errorf("Label with budget 6 = %q, want %q", got, "A very...")
	}
}

func TestComputeFormatterPanicPropagates(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected formatter panic to propagate")
		}
	}()
	_, _ = Compute(Inputs{
		Scale:          bare{},
		Orient:         Left,
		TickValues:     []any{1},
		TickFormatting: func(any) string { panic("boom") },
	})
}

func TestComputeGridLines(t *testing.T) {
	in := Inputs{
		Scale:         scale.NewLinear([2]float64{0, 10}, [2]float64{100, 0}),
		Orient:        Left,
		TickValues:    []any{0, 5, 10},
		ShowGridLines: true,
		GridLineWidth: 640,
	}
	l, err := Compute(in)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	want := &GridLine{
		Class:     "gridline-path gridline-path-horizontal",
		Offset:    5,
		Transform: "translate(5,0)",
		X2:        640,
	}
	for i, tick := range l.Ticks {
		if diff := cmp.Diff(want, tick.GridLine); diff != "" {
			t.Errorf("tick %d gridline mismatch (-want +got):\n%s", i, diff)
		}
	}

	in.ShowGridLines = false
	l, _ = Compute(in)
	for i, tick := range l.Ticks {
		if tick.GridLine != nil {
			t.Errorf("tick %d has a gridline while gridlines are off", i)
		}
	}
}

func TestComputeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   Inputs
		code errors.Code
	}{
		{"nil scale", Inputs{Orient: Left}, errors.ErrCodeInvalidInput},
		{"unknown orientation", Inputs{Scale: bare{}, Orient: "diagonal"}, errors.ErrCodeInvalidOrientation},
		{"empty orientation", Inputs{Scale: bare{}}, errors.ErrCodeInvalidOrientation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(tt.in)
			if !errors.Is(err, tt.code) {
				t.Errorf("Compute() error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestTickTransform(t *testing.T) {
	l, _ := Compute(Inputs{Scale: bare{}, Orient: Bottom})
	if got := l.TickTransform(42); got != "translate(42,20)" {
		t.Errorf("TickTransform(42) = %q, want %q", got, "translate(42,20)")
	}
}
