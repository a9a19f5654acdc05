package axis

import (
	"context"
	"time"
)

// Dimensions is the payload of a size notification.
type Dimensions struct {
	Width int `json:"width"`
}

// Measurer measures the rendered width of a layout's tick labels.
// Hosts with a real layout engine report the settled bounding box; the
// bbox package measures text with font metrics.
type Measurer interface {
	MeasureWidth(ctx context.Context, l Layout) (float64, error)
}

// MeasurerFunc adapts a function to the Measurer interface.
type MeasurerFunc func(ctx context.Context, l Layout) (float64, error)

// MeasureWidth calls f.
func (f MeasurerFunc) MeasureWidth(ctx context.Context, l Layout) (float64, error) {
	return f(ctx, l)
}

// Feedback bounds the size feedback loop run by [Component.Settle].
type Feedback struct {
	// MaxAttempts is the number of measurements allowed to report a new
	// width before the loop gives up.
	MaxAttempts int

	// InitialDelay defers the first measurement; it doubles after every
	// changed measurement up to MaxDelay.
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

// DefaultFeedback returns the loop bounds used by [New].
func DefaultFeedback() Feedback {
	return Feedback{
		MaxAttempts:  8,
		InitialDelay: 10 * time.Millisecond,
		MaxDelay:     250 * time.Millisecond,
	}
}

func (f Feedback) normalized() Feedback {
	def := DefaultFeedback()
	if f.MaxAttempts <= 0 {
		f.MaxAttempts = def.MaxAttempts
	}
	if f.InitialDelay < 0 {
		f.InitialDelay = 0
	}
	if f.MaxDelay < f.InitialDelay {
		f.MaxDelay = f.InitialDelay
	}
	return f
}

// next returns the delay after d.
func (f Feedback) next(d time.Duration) time.Duration {
	return min(d*2, f.MaxDelay)
}

// wait yields for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return nil
		}
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
