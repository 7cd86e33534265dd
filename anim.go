package ggchart

import (
	"math"
	"sync"
	"time"
)

// RenderFunc receives the current animation state once per frame:
// entrance progress in [0, 1] and one visibility factor per series. The
// visibility slice is owned by the caller of the callback and must not be
// retained or mutated.
type RenderFunc func(entrance float64, visibility []float64)

// FrameClock schedules animation frames. The default implementation
// ticks on a timer; hosts with their own frame loop provide a clock that
// forwards their vsync, and tests drive Advance directly with synthetic
// timestamps.
type FrameClock interface {
	// Request schedules fn to run once on the next frame, replacing any
	// previously requested frame.
	Request(fn func(now time.Time))

	// Cancel drops a pending frame request, if any.
	Cancel()

	// Now returns the clock's current time.
	Now() time.Time
}

// defaultFrameInterval approximates a 60 Hz display for the ticker clock.
const defaultFrameInterval = 16 * time.Millisecond

// tickerClock is the default FrameClock, backed by time.AfterFunc.
type tickerClock struct {
	mu    sync.Mutex
	timer *time.Timer
}

func (c *tickerClock) Request(fn func(now time.Time)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(defaultFrameInterval, func() {
		fn(time.Now())
	})
}

func (c *tickerClock) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *tickerClock) Now() time.Time { return time.Now() }

// visibilityEpsilon is the convergence distance at which a visibility
// factor snaps to its target and the track ends.
const visibilityEpsilon = 1e-3

// easeOutCubic is the easing curve for both animation tracks.
func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// Animator drives chart animations through two independent tracks sharing
// one redraw loop:
//
//   - Entrance: a one-shot progress ramp from 0 to 1 when the chart first
//     becomes ready, used to grow bars and sweep lines in.
//   - Visibility: per-series fade factors animating toward 1 (shown) or 0
//     (hidden) whenever the hidden set changes, used for legend toggles.
//
// Both tracks are advanced before the callback runs, so each frame sees a
// consistent pair. The loop self-stops when no track is active and
// restarts on the next trigger; starting while running is a no-op.
//
// With animations disabled every transition is instant: state snaps to
// its target and the callback runs exactly once per trigger.
type Animator struct {
	mu       sync.Mutex
	clock    FrameClock
	duration time.Duration
	enabled  bool
	cb       RenderFunc

	entranceActive   bool
	entranceStart    time.Time
	entranceProgress float64

	vis       []float64
	visFrom   []float64
	visTo     []float64
	visActive bool
	visStart  time.Time
	hidden    map[int]bool

	loopActive bool
	closed     bool
}

// NewAnimator creates an animator with no series and entrance progress at
// full scale (hosts that never trigger the entrance draw complete charts).
func NewAnimator(opts ...AnimOption) *Animator {
	o := defaultAnimOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.clock == nil {
		o.clock = &tickerClock{}
	}
	return &Animator{
		clock:            o.clock,
		duration:         o.duration,
		enabled:          o.enabled,
		entranceProgress: 1,
		hidden:           map[int]bool{},
	}
}

// SetCallback installs the render callback. Swapping the callback while
// an animation runs takes effect on the next frame.
func (a *Animator) SetCallback(cb RenderFunc) {
	a.mu.Lock()
	a.cb = cb
	a.mu.Unlock()
}

// SetSeriesCount resizes the visibility track to n series. Existing
// factors are preserved; new slots start at 0 when the current hidden set
// marks them hidden and 1 otherwise.
func (a *Animator) SetSeriesCount(n int) {
	if n < 0 {
		n = 0
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	a.vis = resizeVisibility(a.vis, n, a.hidden)
	a.visFrom = resizeVisibility(a.visFrom, n, a.hidden)
	a.visTo = resizeVisibility(a.visTo, n, a.hidden)
}

// resizeVisibility grows or shrinks a factor slice to n entries, filling
// new slots from the hidden set.
func resizeVisibility(vis []float64, n int, hidden map[int]bool) []float64 {
	if n <= len(vis) {
		return vis[:n]
	}
	out := make([]float64, n)
	copy(out, vis)
	for i := len(vis); i < n; i++ {
		if hidden[i] {
			out[i] = 0
		} else {
			out[i] = 1
		}
	}
	return out
}

// SetHiddenSeries applies a new hidden set and animates each series'
// visibility toward its target (0 hidden, 1 shown). Every call counts as
// a toggle, even if the set contents match the previous one. With
// animations disabled the factors snap and the callback runs once.
func (a *Animator) SetHiddenSeries(hidden map[int]bool) {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}

	a.hidden = make(map[int]bool, len(hidden))
	for k, v := range hidden {
		if v {
			a.hidden[k] = true
		}
	}

	a.visFrom = append(a.visFrom[:0], a.vis...)
	a.visTo = a.visTo[:0]
	for i := range a.vis {
		if a.hidden[i] {
			a.visTo = append(a.visTo, 0)
		} else {
			a.visTo = append(a.visTo, 1)
		}
	}

	if !a.enabled {
		copy(a.vis, a.visTo)
		a.visActive = false
		a.mu.Unlock()
		a.DrawOnce()
		return
	}

	a.visActive = true
	a.visStart = a.clock.Now()
	a.startLoopLocked()
	a.mu.Unlock()
}

// StartEntrance triggers the one-shot entrance ramp. With animations
// disabled the progress snaps to 1 and the callback runs once.
func (a *Animator) StartEntrance() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}

	if !a.enabled {
		a.entranceProgress = 1
		a.entranceActive = false
		a.mu.Unlock()
		a.DrawOnce()
		return
	}

	a.entranceActive = true
	a.entranceStart = a.clock.Now()
	a.entranceProgress = 0
	a.startLoopLocked()
	a.mu.Unlock()
}

// startLoopLocked starts the redraw loop unless it is already running.
// Caller holds a.mu.
func (a *Animator) startLoopLocked() {
	if a.loopActive {
		return
	}
	a.loopActive = true
	a.clock.Request(a.tick)
}

// tick is the frame-clock callback: advance both tracks, redraw, and
// request the next frame while anything is still animating.
func (a *Animator) tick(now time.Time) {
	active := a.Advance(now)

	a.mu.Lock()
	if active && !a.closed {
		a.clock.Request(a.tick)
	} else {
		a.loopActive = false
	}
	a.mu.Unlock()
}

// Advance moves both tracks to the given timestamp and invokes the
// callback once with the converged state. It returns whether any track is
// still animating. Hosts with their own frame loop call Advance directly;
// the built-in loop calls it from the frame clock.
func (a *Animator) Advance(now time.Time) bool {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return false
	}

	if a.entranceActive {
		t := progress(now.Sub(a.entranceStart), a.duration)
		a.entranceProgress = easeOutCubic(t)
		if t >= 1 {
			a.entranceProgress = 1
			a.entranceActive = false
		}
	}

	if a.visActive {
		t := progress(now.Sub(a.visStart), a.duration)
		e := easeOutCubic(t)
		converged := true
		for i := range a.vis {
			a.vis[i] = a.visFrom[i] + (a.visTo[i]-a.visFrom[i])*e
			if math.Abs(a.vis[i]-a.visTo[i]) >= visibilityEpsilon {
				converged = false
			}
		}
		if t >= 1 || converged {
			copy(a.vis, a.visTo)
			a.visActive = false
		}
	}

	cb := a.cb
	entrance := a.entranceProgress
	vis := append([]float64(nil), a.vis...)
	active := a.entranceActive || a.visActive
	a.mu.Unlock()

	if cb != nil {
		cb(entrance, vis)
	}
	return active
}

// progress converts elapsed time to a [0, 1] fraction of the duration.
func progress(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return 1
	}
	t := elapsed.Seconds() / duration.Seconds()
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Entrance returns the current entrance progress.
func (a *Animator) Entrance() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.entranceProgress
}

// Visibility returns a copy of the current per-series visibility factors.
func (a *Animator) Visibility() []float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]float64(nil), a.vis...)
}

// Animating reports whether any track is currently active.
func (a *Animator) Animating() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.entranceActive || a.visActive
}

// DrawOnce invokes the callback synchronously with the current state.
// It never starts the redraw loop; use it for non-animated invalidation
// such as window resizes or zoom changes.
func (a *Animator) DrawOnce() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	cb := a.cb
	entrance := a.entranceProgress
	vis := append([]float64(nil), a.vis...)
	a.mu.Unlock()

	if cb != nil {
		cb(entrance, vis)
	}
}

// Close cancels any pending frame and stops all animation. No callbacks
// run after Close returns. Idempotent.
func (a *Animator) Close() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.closed = true
	a.entranceActive = false
	a.visActive = false
	a.loopActive = false
	clock := a.clock
	a.mu.Unlock()

	clock.Cancel()
}
