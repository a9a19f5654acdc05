// Package observability provides hooks for metrics, tracing, and logging.
//
// Instrumentation is optional: the renderer and the preview server call
// the registered hooks, which default to no-ops. Binaries register their
// own implementations at startup.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetAxisHooks(&myAxisHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Axis().OnRender(ctx, "left", len(ticks), time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Axis Hooks
// =============================================================================

// AxisHooks receives events from axis components.
type AxisHooks interface {
	// OnRender records one layout pass.
	OnRender(ctx context.Context, orient string, tickCount int, duration time.Duration, err error)

	// OnDimensionsChanged records a notified width change.
	OnDimensionsChanged(ctx context.Context, orient string, width int)

	// OnSettle records the end of a size feedback loop.
	OnSettle(ctx context.Context, orient string, attempts int, duration time.Duration, err error)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the preview server.
type HTTPHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records a completed response.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopAxisHooks is a no-op implementation of AxisHooks.
type NoopAxisHooks struct{}

func (NoopAxisHooks) OnRender(context.Context, string, int, time.Duration, error) {}
func (NoopAxisHooks) OnDimensionsChanged(context.Context, string, int)            {}
func (NoopAxisHooks) OnSettle(context.Context, string, int, time.Duration, error) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	axisHooks AxisHooks = NoopAxisHooks{}
	httpHooks HTTPHooks = NoopHTTPHooks{}
	hooksMu   sync.RWMutex
)

// SetAxisHooks registers custom axis hooks. Nil is ignored.
func SetAxisHooks(h AxisHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		axisHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks. Nil is ignored.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Axis returns the registered axis hooks.
func Axis() AxisHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return axisHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	axisHooks = NoopAxisHooks{}
	httpHooks = NoopHTTPHooks{}
}
