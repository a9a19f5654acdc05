package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner animates a message on w until stopped or its context ends.
type spinner struct {
	w       io.Writer
	message string
	cancel  context.CancelFunc
	ctx     context.Context
	stopped chan struct{}
	started bool
	once    sync.Once
	mu      sync.Mutex
}

// newSpinner returns a spinner on w, or nil when w is not a terminal.
// A nil spinner's methods are no-ops.
func newSpinner(ctx context.Context, w io.Writer, message string) *spinner {
	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return nil
	}
	sctx, cancel := context.WithCancel(ctx)
	return &spinner{w: w, message: message, ctx: sctx, cancel: cancel, stopped: make(chan struct{})}
}

func (s *spinner) Start() {
	if s == nil {
		return
	}
	s.started = true
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()
		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-ticker.C:
				s.mu.Lock()
				fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(spinnerFrames[i%len(spinnerFrames)]), StyleDim.Render(s.message))
				s.mu.Unlock()
			}
		}
	}()
}

// Stop halts the animation and clears the line. It is safe to call twice.
func (s *spinner) Stop() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.cancel()
		if s.started {
			<-s.stopped
		}
	})
}

func (s *spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
}
