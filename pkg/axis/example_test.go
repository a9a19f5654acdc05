package axis_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/axisticks/pkg/axis"
	"github.com/matzehuels/axisticks/pkg/scale"
)

func ExampleCompute() {
	y := scale.NewLinear([2]float64{0, 1000}, [2]float64{60, 0})

	// 60px leave room for three ticks, so the default hint of 5 is lowered.
	l, err := axis.Compute(axis.Inputs{Scale: y, Orient: axis.Left, Height: 60})
	if err != nil {
		panic(err)
	}
	for _, t := range l.Ticks {
		fmt.Println(t.Transform, t.Label)
	}
	fmt.Println(l.TickArguments)
	// Output:
	// translate(0,60) 0
	// translate(0,30) 500
	// translate(0,0) 1,000
	// [3]
}

func ExampleCompute_band() {
	x := scale.NewBand([]any{"Mon", "Tue", "Wed", "Thu"}, [2]float64{0, 400})

	l, _ := axis.Compute(axis.Inputs{Scale: x, Orient: axis.Bottom, Height: 200})
	for _, t := range l.Ticks {
		fmt.Println(t.Transform, t.Label)
	}
	fmt.Println(l.Geometry.TextAnchor, *l.Geometry.Y1, l.Geometry.Dy)
	// Output:
	// translate(50,0) Mon
	// translate(150,0) Tue
	// translate(250,0) Wed
	// translate(350,0) Thu
	// middle 9 .71em
}

func ExampleReduceTicks() {
	fmt.Println(axis.ReduceTicks([]any{"A", "B", "C", "D", "E", "F"}, 2))
	// Output: [A F]
}

func ExampleTrimLabel() {
	fmt.Println(axis.TrimLabel("Northern Territories", 0))
	// Output: Northern Territo...
}

func ExampleComponent() {
	widths := []float64{28.4, 31.9, 31.2}
	calls := 0
	measure := axis.MeasurerFunc(func(context.Context, axis.Layout) (float64, error) {
		w := widths[min(calls, len(widths)-1)]
		calls++
		return w, nil
	})

	c := axis.New(
		axis.WithMeasurer(measure),
		axis.WithFeedback(axis.Feedback{MaxAttempts: 4}),
		axis.WithOnDimensionsChanged(func(d axis.Dimensions) { fmt.Println("width", d.Width) }),
	)
	defer c.Close()

	y := scale.NewLinear([2]float64{0, 1}, [2]float64{200, 0})
	if _, err := c.Update(context.Background(), axis.Inputs{Scale: y, Orient: axis.Left, Height: 200}); err != nil {
		panic(err)
	}
	if err := c.Settle(context.Background()); err != nil {
		panic(err)
	}
	// Output:
	// width 28
	// width 31
}
