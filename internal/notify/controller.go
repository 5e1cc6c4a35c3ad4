package notify

import (
	"sync"

	"go.uber.org/zap"
)

// Controller owns the one notification of a view. A new Show replaces the
// current notification in place; there is no queue.
//
// Every transition bumps a generation counter, and an auto-close callback
// only fires if the generation it was scheduled for is still current, so a
// timer that loses the race with Stop cannot close newer content.
type Controller struct {
	mu       sync.Mutex
	state    State
	gen      uint64
	timer    Timer
	closed   bool
	sched    Scheduler
	onChange func(State)
	logger   *zap.Logger
}

type Option func(*Controller)

func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.sched = s }
}

// WithOnChange registers a callback invoked after every transition, outside
// the controller lock.
func WithOnChange(f func(State)) Option {
	return func(c *Controller) { c.onChange = f }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

func New(opts ...Option) *Controller {
	c := &Controller{sched: WallClock, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Show opens cfg, replacing whatever is open. It is a no-op after Close.
func (c *Controller) Show(cfg Config) {
	cfg = cfg.withDefaults()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		c.logger.Debug("Show after close ignored", zap.String("title", cfg.Title))
		return
	}
	c.stopTimerLocked()
	c.gen++
	c.state = State{IsOpen: true, Config: &cfg}
	if cfg.AutoClose {
		gen := c.gen
		c.timer = c.sched.AfterFunc(cfg.AutoCloseDelay, func() { c.expire(gen) })
	}
	st := c.snapshot()
	c.mu.Unlock()

	c.logger.Debug("Notification shown",
		zap.String("kind", string(cfg.Kind)),
		zap.String("title", cfg.Title),
		zap.Bool("auto_close", cfg.AutoClose))
	c.notify(st)
}

// ShowTrigger opens the canned notification for t.
func (c *Controller) ShowTrigger(t Trigger) {
	c.Show(t.Config())
}

// Hide closes the notification, if any.
func (c *Controller) Hide() {
	c.mu.Lock()
	if !c.state.IsOpen {
		c.mu.Unlock()
		return
	}
	c.closeLocked()
	st := c.snapshot()
	c.mu.Unlock()
	c.notify(st)
}

// Action runs the open notification's OnAction and then closes it. If the
// callback itself shows a new notification, that one stays open. It
// reports whether a notification was open.
func (c *Controller) Action() bool {
	c.mu.Lock()
	if !c.state.IsOpen {
		c.mu.Unlock()
		return false
	}
	gen := c.gen
	cb := c.state.Config.OnAction
	c.mu.Unlock()

	if cb != nil {
		cb()
	}

	c.mu.Lock()
	if c.gen != gen || !c.state.IsOpen {
		c.mu.Unlock()
		return true
	}
	c.closeLocked()
	st := c.snapshot()
	c.mu.Unlock()
	c.notify(st)
	return true
}

// Close tears the controller down and cancels any pending auto-close.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopTimerLocked()
	c.gen++
	c.closed = true
	c.state = State{}
}

func (c *Controller) expire(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || !c.state.IsOpen {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.closeLocked()
	st := c.snapshot()
	c.mu.Unlock()

	c.logger.Debug("Notification auto-closed")
	c.notify(st)
}

func (c *Controller) closeLocked() {
	c.stopTimerLocked()
	c.gen++
	c.state = State{}
}

func (c *Controller) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) snapshot() State {
	st := State{IsOpen: c.state.IsOpen}
	if c.state.Config != nil {
		cfg := *c.state.Config
		st.Config = &cfg
	}
	return st
}

func (c *Controller) notify(st State) {
	if c.onChange != nil {
		c.onChange(st)
	}
}
