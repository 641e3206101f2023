package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner shows which configuration is being checked, as
// "[2/5] Checking com.example:app (runtime)...". It stops drawing when its
// context is cancelled.
type spinner struct {
	w      io.Writer
	total  int
	parent context.Context
	ctx    context.Context
	cancel context.CancelFunc

	mu    sync.Mutex
	step  int
	label string
	width int // visible width of the last drawn line

	once    sync.Once
	started bool
	stopped chan struct{}
}

// newSpinner creates a spinner for total steps writing to w.
func newSpinner(parent context.Context, w io.Writer, total int) *spinner {
	ctx, cancel := context.WithCancel(parent)
	return &spinner{
		w:       w,
		total:   total,
		parent:  parent,
		ctx:     ctx,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
}

// Start begins the animation.
func (s *spinner) Start() {
	s.mu.Lock()
	s.started = true
	s.mu.Unlock()

	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				s.clear()
				return
			case <-ticker.C:
				s.draw(spinnerFrames[i%len(spinnerFrames)])
			}
		}
	}()
}

// Step advances to the next configuration and redraws immediately.
func (s *spinner) Step(label string) {
	s.mu.Lock()
	s.step++
	s.label = label
	s.mu.Unlock()
	s.draw(spinnerFrames[0])
}

// messageLocked returns the progress line without styling. s.mu must be held.
func (s *spinner) messageLocked() string {
	return fmt.Sprintf("[%d/%d] Checking %s...", s.step, s.total, s.label)
}

func (s *spinner) draw(frame string) {
	if s.ctx.Err() != nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step == 0 {
		return
	}
	msg := s.messageLocked()
	pad := max(s.width-len(msg)-2, 0)
	fmt.Fprintf(s.w, "\r%s %s%s", styleIconSpinner.Render(frame), StyleDim.Render(msg), strings.Repeat(" ", pad))
	s.width = len(msg) + 2
}

func (s *spinner) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.width > 0 {
		fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.width))
		s.width = 0
	}
}

// Stop stops the animation and clears the line. It is safe to call more
// than once.
func (s *spinner) Stop() {
	s.once.Do(func() {
		s.mu.Lock()
		started := s.started
		s.mu.Unlock()

		s.cancel()
		if started {
			<-s.stopped
		}
		s.clear()
	})
}

// Cancelled reports whether the context the spinner was created with has
// been cancelled. Stop alone does not count.
func (s *spinner) Cancelled() bool {
	return s.parent.Err() != nil
}
