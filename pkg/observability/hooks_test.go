package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	a := NoopAxisHooks{}
	a.OnRender(ctx, "left", 5, time.Millisecond, nil)
	a.OnDimensionsChanged(ctx, "left", 42)
	a.OnSettle(ctx, "left", 2, time.Millisecond, nil)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "/axis.svg")
	h.OnResponse(ctx, "GET", "/axis.svg", 200, time.Millisecond)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Axis().(NoopAxisHooks); !ok {
		t.Error("Axis() should return NoopAxisHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customAxis := &testAxisHooks{}
	SetAxisHooks(customAxis)
	if Axis() != customAxis {
		t.Error("SetAxisHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Axis().(NoopAxisHooks); !ok {
		t.Error("Reset() should restore NoopAxisHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	custom := &testAxisHooks{}
	SetAxisHooks(custom)
	SetAxisHooks(nil)
	if Axis() != custom {
		t.Error("SetAxisHooks(nil) should keep the previous hooks")
	}
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	custom := &testAxisHooks{}
	SetAxisHooks(custom)

	Axis().OnRender(context.Background(), "bottom", 3, time.Millisecond, nil)
	Axis().OnDimensionsChanged(context.Background(), "bottom", 120)

	if custom.renders != 1 {
		t.Errorf("renders = %d, want 1", custom.renders)
	}
	if custom.lastWidth != 120 {
		t.Errorf("lastWidth = %d, want 120", custom.lastWidth)
	}
}

type testAxisHooks struct {
	renders   int
	lastWidth int
}

func (h *testAxisHooks) OnRender(context.Context, string, int, time.Duration, error) {
	h.renders++
}
func (h *testAxisHooks) OnDimensionsChanged(_ context.Context, _ string, width int) {
	h.lastWidth = width
}
func (h *testAxisHooks) OnSettle(context.Context, string, int, time.Duration, error) {}

type testHTTPHooks struct{}

func (testHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (testHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
