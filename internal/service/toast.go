package service

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/trifall/link-shortener-ui/internal/domain/passkey"
)

// Timer is a scheduled callback that can be canceled.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d. The zero-config ToastNotifier uses
// time.AfterFunc.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type clockScheduler struct{}

func (clockScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// ToastOption customizes a single Show call.
type ToastOption func(*passkey.ToastState)

// WithDuration sets how long the toast stays visible. Non-positive values
// keep the notifier default.
func WithDuration(d time.Duration) ToastOption {
	return func(s *passkey.ToastState) {
		if d > 0 {
			s.Duration = d
		}
	}
}

// WithType sets the toast category. Unknown types are ignored.
func WithType(t passkey.ToastType) ToastOption {
	return func(s *passkey.ToastState) {
		if t.Valid() {
			s.Type = t
		}
	}
}

// ToastNotifierOptions groups dependencies for ToastNotifier.
type ToastNotifierOptions struct {
	Scheduler       Scheduler     // Optional: defaults to time.AfterFunc
	DefaultDuration time.Duration // Optional: defaults to passkey.DefaultToastDuration
	Logger          *slog.Logger  // Optional: structured logger
}

// ToastNotifier drives the single notification surface. At most one toast
// is visible; a new Show replaces the current one and restarts its timer.
type ToastNotifier struct {
	mu        sync.Mutex
	state     passkey.ToastState
	timer     Timer
	gen       uint64
	onDismiss func(passkey.ToastState)

	scheduler       Scheduler
	defaultDuration time.Duration
	logger          *slog.Logger
}

// NewToastNotifier constructs an idle ToastNotifier.
func NewToastNotifier(opts ToastNotifierOptions) *ToastNotifier {
	sched := opts.Scheduler
	if sched == nil {
		sched = clockScheduler{}
	}
	d := opts.DefaultDuration
	if d <= 0 {
		d = passkey.DefaultToastDuration
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ToastNotifier{
		state:           passkey.ToastState{Type: passkey.ToastSuccess, Duration: d},
		scheduler:       sched,
		defaultDuration: d,
		logger:          logger.With("component", "toast_notifier"),
	}
}

// OnDismiss registers fn to run after each automatic dismissal. It is called
// without the notifier lock held.
func (n *ToastNotifier) OnDismiss(fn func(passkey.ToastState)) {
	n.mu.Lock()
	n.onDismiss = fn
	n.mu.Unlock()
}

// Show displays text and schedules its automatic dismissal. Any pending
// dismissal of the previous toast is canceled first.
func (n *ToastNotifier) Show(text string, opts ...ToastOption) passkey.ToastState {
	next := passkey.ToastState{
		ID:       uuid.NewString(),
		Show:     true,
		Text:     text,
		Duration: n.defaultDuration,
		Type:     passkey.ToastSuccess,
	}
	for _, opt := range opts {
		opt(&next)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.stopLocked()
	n.gen++
	gen := n.gen
	n.state = next
	n.timer = n.scheduler.AfterFunc(next.Duration, func() { n.expire(gen) })

	n.logger.Debug("toast shown", "id", next.ID, "type", next.Type, "duration_ms", next.DurationMillis())
	return next
}

// Dismiss hides the current toast immediately and cancels its timer.
func (n *ToastNotifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.stopLocked()
	n.gen++
	n.state.Show = false
}

// Snapshot returns the current toast state.
func (n *ToastNotifier) Snapshot() passkey.ToastState {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

func (n *ToastNotifier) stopLocked() {
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}

// expire hides the toast scheduled as generation gen. A timer that fired
// after being superseded finds a newer generation and does nothing.
func (n *ToastNotifier) expire(gen uint64) {
	n.mu.Lock()
	if gen != n.gen || !n.state.Show {
		n.mu.Unlock()
		return
	}
	n.state.Show = false
	n.timer = nil
	hidden := n.state
	cb := n.onDismiss
	n.mu.Unlock()

	if cb != nil {
		cb(hidden)
	}
}
