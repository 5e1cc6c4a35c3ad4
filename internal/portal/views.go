package portal

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"careerportal/internal/notify"
)

var ErrViewNotFound = errors.New("view not found")

// View is one open page. It owns its notification controller; closing the
// view cancels in-flight submissions and pending auto-close timers.
type View struct {
	ID            string
	Notifications *notify.Controller

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	lastSeen time.Time
}

// Done is closed when the view is torn down.
func (v *View) Done() <-chan struct{} { return v.ctx.Done() }

func (v *View) touch(now time.Time) {
	v.mu.Lock()
	v.lastSeen = now
	v.mu.Unlock()
}

func (v *View) idleSince() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastSeen
}

func (v *View) close() {
	v.cancel()
	v.Notifications.Close()
}

// Views is the registry of open views keyed by uuid.
type Views struct {
	mu     sync.Mutex
	views  map[string]*View
	sched  notify.Scheduler
	now    func() time.Time
	logger *zap.Logger
}

func NewViews(sched notify.Scheduler, logger *zap.Logger) *Views {
	if sched == nil {
		sched = notify.WallClock
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Views{
		views:  make(map[string]*View),
		sched:  sched,
		now:    time.Now,
		logger: logger,
	}
}

// Create opens a new view with a fresh notification controller.
func (vs *Views) Create() *View {
	ctx, cancel := context.WithCancel(context.Background())
	v := &View{
		ID:       uuid.NewString(),
		ctx:      ctx,
		cancel:   cancel,
		lastSeen: vs.now(),
	}
	v.Notifications = notify.New(
		notify.WithScheduler(vs.sched),
		notify.WithLogger(vs.logger.With(zap.String("view", v.ID))),
	)

	vs.mu.Lock()
	vs.views[v.ID] = v
	vs.mu.Unlock()
	vs.logger.Debug("view opened", zap.String("view", v.ID))
	return v
}

// Get returns the view and marks it as recently used.
func (vs *Views) Get(id string) (*View, error) {
	vs.mu.Lock()
	v, ok := vs.views[id]
	vs.mu.Unlock()
	if !ok {
		return nil, ErrViewNotFound
	}
	v.touch(vs.now())
	return v, nil
}

// Remove tears the view down.
func (vs *Views) Remove(id string) error {
	vs.mu.Lock()
	v, ok := vs.views[id]
	delete(vs.views, id)
	vs.mu.Unlock()
	if !ok {
		return ErrViewNotFound
	}
	v.close()
	vs.logger.Debug("view closed", zap.String("view", id))
	return nil
}

// Sweep tears down views idle for longer than ttl and returns how many.
func (vs *Views) Sweep(ttl time.Duration) int {
	cutoff := vs.now().Add(-ttl)
	var stale []*View
	vs.mu.Lock()
	for id, v := range vs.views {
		if v.idleSince().Before(cutoff) {
			stale = append(stale, v)
			delete(vs.views, id)
		}
	}
	vs.mu.Unlock()
	for _, v := range stale {
		v.close()
	}
	if len(stale) > 0 {
		vs.logger.Info("swept idle views", zap.Int("count", len(stale)))
	}
	return len(stale)
}

func (vs *Views) Len() int {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	return len(vs.views)
}

// CloseAll tears down every view.
func (vs *Views) CloseAll() {
	vs.mu.Lock()
	views := vs.views
	vs.views = make(map[string]*View)
	vs.mu.Unlock()
	for _, v := range views {
		v.close()
	}
}
