package sink

import (
	"encoding/json"
	"math"

	"github.com/matzehuels/axisticks/pkg/axis"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	name  string
	width int
}

// WithJSONName records the axis name in the output.
func WithJSONName(name string) JSONOption { return func(r *jsonRenderer) { r.name = name } }

// WithJSONWidth records the settled label width in the output.
func WithJSONWidth(w int) JSONOption { return func(r *jsonRenderer) { r.width = w } }

type jsonOutput struct {
	Name          string       `json:"name,omitempty"`
	Orient        string       `json:"orient"`
	Width         int          `json:"width,omitempty"`
	TickArguments []any        `json:"tick_arguments,omitempty"`
	GridLines     bool         `json:"grid_lines,omitempty"`
	GridLineWidth float64      `json:"grid_line_width,omitempty"`
	Geometry      jsonGeometry `json:"geometry"`
	Ticks         []jsonTick   `json:"ticks"`
}

type jsonGeometry struct {
	Sign            float64  `json:"sign"`
	TextAnchor      string   `json:"text_anchor"`
	Dy              string   `json:"dy"`
	X1              *float64 `json:"x1,omitempty"`
	X2              *float64 `json:"x2,omitempty"`
	Y1              *float64 `json:"y1,omitempty"`
	Y2              *float64 `json:"y2,omitempty"`
	InnerTickSize   float64  `json:"inner_tick_size"`
	TickPadding     float64  `json:"tick_padding"`
	TickSpacing     float64  `json:"tick_spacing"`
	VerticalSpacing float64  `json:"vertical_spacing"`
}

type jsonTick struct {
	Value     any           `json:"value"`
	Position  *float64      `json:"position"` // null when the scale cannot place the value
	Transform string        `json:"transform"`
	Title     string        `json:"title"`
	Label     string        `json:"label"`
	GridLine  *jsonGridLine `json:"grid_line,omitempty"`
}

type jsonGridLine struct {
	Class     string  `json:"class"`
	Transform string  `json:"transform"`
	X2        float64 `json:"x2,omitempty"`
	Y2        float64 `json:"y2,omitempty"`
}

// RenderJSON exports the layout as a pretty-printed JSON document.
//
// Positions a scale could not compute (NaN) are written as null. Tick
// values must be JSON-encodable; RenderJSON returns the marshaling error
// otherwise. It does not modify l and is safe to call concurrently.
func RenderJSON(l axis.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	g := l.Geometry
	out := jsonOutput{
		Name:          r.name,
		Orient:        l.Orient.String(),
		Width:         r.width,
		TickArguments: l.TickArguments,
		GridLines:     l.GridLines,
		GridLineWidth: l.GridLineWidth,
		Geometry: jsonGeometry{
			Sign:            g.Sign,
			TextAnchor:      g.TextAnchor,
			Dy:              g.Dy,
			X1:              g.X1,
			X2:              g.X2,
			Y1:              g.Y1,
			Y2:              g.Y2,
			InnerTickSize:   g.InnerTickSize,
			TickPadding:     g.TickPadding,
			TickSpacing:     g.TickSpacing,
			VerticalSpacing: g.VerticalSpacing,
		},
		Ticks: buildJSONTicks(l.Ticks),
	}
	return json.MarshalIndent(out, "", "  ")
}

func buildJSONTicks(ticks []axis.Tick) []jsonTick {
	out := make([]jsonTick, 0, len(ticks))
	for _, t := range ticks {
		jt := jsonTick{
			Value:     jsonValue(t.Value),
			Transform: t.Transform,
			Title:     t.Title,
			Label:     t.Label,
		}
		if !math.IsNaN(t.Position) && !math.IsInf(t.Position, 0) {
			p := t.Position
			jt.Position = &p
		}
		if gl := t.GridLine; gl != nil {
			jt.GridLine = &jsonGridLine{Class: gl.Class, Transform: gl.Transform, X2: gl.X2, Y2: gl.Y2}
		}
		out = append(out, jt)
	}
	return out
}

// jsonValue replaces non-finite floats, which encoding/json rejects.
func jsonValue(v any) any {
	if f, ok := v.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return nil
	}
	return v
}
