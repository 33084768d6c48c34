// Package playback implements the auto-advance state machine layered on the
// step navigator. Instead of owning a raw timer handle, the controller owns
// an epoch counter: arming bumps the epoch and tells the host what interval
// to schedule, and any tick carrying an older epoch is recognized as stale
// and absorbed. Stop therefore "cancels the timer" without a goroutine racing
// the single-threaded core, and a disposed controller can never advance a
// navigator it no longer matches.
package playback

import "time"

// DefaultInterval is the auto-play speed used until the user changes it.
const DefaultInterval = 800 * time.Millisecond

// Advancer is the navigator capability the controller needs: advance one
// step, reporting false when the trace is exhausted.
type Advancer interface {
	Advance() bool
}

// TickResult describes how a delivered tick was handled.
type TickResult int

const (
	// TickStale means the tick belonged to a cancelled schedule and was
	// absorbed. The host must not reschedule.
	TickStale TickResult = iota
	// TickAdvanced means the navigator moved and the step-update callback
	// ran. The host schedules the next tick at the current interval.
	TickAdvanced
	// TickExhausted means the trace ran out; the controller stopped itself.
	TickExhausted
)

// Controller is the two-state (stopped/playing) playback machine. No method
// fails: redundant stops and starts are idempotent transitions.
type Controller struct {
	nav      Advancer
	onStep   func()
	interval time.Duration
	playing  bool
	epoch    int
}

// New creates a stopped controller. onStep runs after every successful
// tick-driven advance; the owner uses it to refresh hover state and notify
// observers, in that order.
func New(nav Advancer, interval time.Duration, onStep func()) *Controller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Controller{nav: nav, onStep: onStep, interval: interval}
}

// Start arms playback and returns the epoch the host must attach to the tick
// it schedules, plus the interval to schedule it at. Calling Start while
// playing fully stops first, so a changed speed takes effect immediately.
func (c *Controller) Start() (epoch int, interval time.Duration) {
	if c.playing {
		c.Stop()
	}
	c.playing = true
	c.epoch++
	return c.epoch, c.interval
}

// Stop disarms playback. The epoch bump invalidates any tick already in
// flight. Safe to call in any state, any number of times.
func (c *Controller) Stop() {
	c.playing = false
	c.epoch++
}

// Toggle flips between playing and stopped. When it starts playback it
// returns the schedule the host must install.
func (c *Controller) Toggle() (playing bool, epoch int, interval time.Duration) {
	if c.playing {
		c.Stop()
		return false, 0, 0
	}
	epoch, interval = c.Start()
	return true, epoch, interval
}

// SetSpeed stores the new interval. While playing it performs a full
// stop+start so the new interval governs the next tick rather than the one
// in flight; the returned schedule replaces the old one.
func (c *Controller) SetSpeed(interval time.Duration) (restarted bool, epoch int, newInterval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	c.interval = interval
	if !c.playing {
		return false, 0, c.interval
	}
	epoch, newInterval = c.Start()
	return true, epoch, newInterval
}

// Tick delivers one timer tick. Stale or post-stop ticks are absorbed; live
// ticks advance the navigator and run the step-update callback, and
// exhaustion stops playback without waiting for another tick.
func (c *Controller) Tick(epoch int) TickResult {
	if !c.playing || epoch != c.epoch {
		return TickStale
	}
	if !c.nav.Advance() {
		c.Stop()
		return TickExhausted
	}
	if c.onStep != nil {
		c.onStep()
	}
	return TickAdvanced
}

// Playing reports whether playback is armed.
func (c *Controller) Playing() bool {
	return c.playing
}

// Interval reports the current speed.
func (c *Controller) Interval() time.Duration {
	return c.interval
}

// Dispose tears the controller down; equivalent to Stop and just as
// idempotent. Owners call it when the view goes away so no schedule outlives
// its state.
func (c *Controller) Dispose() {
	c.Stop()
}
