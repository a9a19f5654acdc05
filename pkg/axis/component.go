package axis

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/axisticks/pkg/errors"
	"github.com/matzehuels/axisticks/pkg/observability"
)

// Option configures a [Component].
type Option func(*Component)

// WithMeasurer sets how rendered widths are measured.
func WithMeasurer(m Measurer) Option { return func(c *Component) { c.measurer = m } }

// WithOnDimensionsChanged registers the width change listener.
func WithOnDimensionsChanged(fn func(Dimensions)) Option {
	return func(c *Component) { c.onDimensions = fn }
}

// WithFeedback overrides the size feedback loop bounds.
func WithFeedback(f Feedback) Option { return func(c *Component) { c.feedback = f.normalized() } }

// WithLogger sets the logger used for pass and size events.
func WithLogger(l *log.Logger) Option { return func(c *Component) { c.logger = l } }

// Component is a mounted axis. Hosts call Update whenever an input
// changes, Settle once the output has been laid out, and Close when the
// axis goes away.
//
// Component is safe for concurrent use; Settle typically runs on its own
// goroutine while the host keeps calling Update.
type Component struct {
	measurer     Measurer
	onDimensions func(Dimensions)
	feedback     Feedback
	logger       *log.Logger

	mu        sync.Mutex
	layout    Layout
	hasLayout bool
	width     int
	closed    bool
	cancel    context.CancelFunc // stops the running Settle, if any
	settleID  uint64
}

// New creates an unmounted component.
func New(opts ...Option) *Component {
	c := &Component{feedback: DefaultFeedback()}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.Default()
	}
	return c
}

// Update recomputes the layout for in and keeps it as the current one.
// On error the previous layout stays current.
func (c *Component) Update(ctx context.Context, in Inputs) (Layout, error) {
	start := time.Now()
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return Layout{}, errors.New(errors.ErrCodeClosed, "axis component is closed")
	}

	l, err := Compute(in)
	observability.Axis().OnRender(ctx, string(in.Orient), len(l.Ticks), time.Since(start), err)
	if err != nil {
		return Layout{}, err
	}
	c.logger.Debug("computed axis layout", "orient", l.Orient, "ticks", len(l.Ticks), "args", l.TickArguments)

	c.mu.Lock()
	c.layout, c.hasLayout = l, true
	c.mu.Unlock()
	return l, nil
}

// Layout returns the current layout and whether one has been computed.
func (c *Component) Layout() (Layout, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.layout, c.hasLayout
}

// Width returns the last notified width.
func (c *Component) Width() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.width
}

// Settle measures the current layout until its width stops changing.
//
// Each attempt is deferred (InitialDelay, doubling up to MaxDelay) so the
// host can finish laying out text. A measurement differing from the last
// known width is stored and reported to the listener; the first one that
// matches ends the loop. Settle returns an error coded NOT_CONVERGED
// after MaxAttempts changing measurements. Close or ctx cancellation stop
// the loop before its next measurement; a closed component is never
// measured. Starting a new Settle stops the previous one.
func (c *Component) Settle(ctx context.Context) error {
	ctx, done, err := c.beginSettle(ctx)
	if err != nil {
		return err
	}
	defer done()
	if c.measurer == nil {
		return errors.New(errors.ErrCodeUnsupported, "axis component has no measurer")
	}

	start := time.Now()
	attempts, err := c.settle(ctx)
	if err != nil && c.isClosed() {
		err = nil // torn down mid-loop
	}
	l, _ := c.Layout()
	observability.Axis().OnSettle(ctx, string(l.Orient), attempts, time.Since(start), err)
	return err
}

func (c *Component) settle(ctx context.Context) (int, error) {
	delay := c.feedback.InitialDelay
	for attempt := 1; attempt <= c.feedback.MaxAttempts; attempt++ {
		if err := wait(ctx, delay); err != nil {
			return attempt - 1, err
		}

		c.mu.Lock()
		l, ok := c.layout, c.hasLayout && !c.closed
		c.mu.Unlock()
		if !ok {
			return attempt - 1, nil
		}

		w, err := c.measurer.MeasureWidth(ctx, l)
		if err != nil {
			return attempt, errors.Wrap(errors.ErrCodeInternal, err, "measure axis ticks")
		}
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return attempt, errors.New(errors.ErrCodeInternal, "measured axis width is not finite (%g)", w)
		}
		width := int(w)

		c.mu.Lock()
		changed := width != c.width && !c.closed
		if changed {
			c.width = width
		}
		c.mu.Unlock()
		if !changed {
			return attempt, nil
		}

		c.logger.Debug("axis width changed", "orient", l.Orient, "width", width, "attempt", attempt)
		observability.Axis().OnDimensionsChanged(ctx, string(l.Orient), width)
		if c.onDimensions != nil {
			c.onDimensions(Dimensions{Width: width})
		}
		delay = c.feedback.next(delay)
	}
	return c.feedback.MaxAttempts, errors.New(errors.ErrCodeNotConverged,
		"axis width still changing after %d measurements", c.feedback.MaxAttempts)
}

// beginSettle registers a cancellable context for a new loop, stopping
// any loop already running.
func (c *Component) beginSettle(parent context.Context) (context.Context, func(), error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, nil, errors.New(errors.ErrCodeClosed, "axis component is closed")
	}
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	c.cancel = cancel
	c.settleID++
	id := c.settleID
	return ctx, func() {
		cancel()
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.settleID == id {
			c.cancel = nil
		}
	}, nil
}

func (c *Component) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Close tears the component down and stops a running Settle. It is safe
// to call more than once.
func (c *Component) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	return nil
}
