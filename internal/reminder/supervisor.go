// Package reminder runs the background supervisor that announces upcoming
// pickups and flags approved orders nobody collected.
package reminder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/desk"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/domain"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/logger"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/metrics"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/pickup"
)

// Source lists the orders the supervisor watches. *desk.Desk satisfies it.
type Source interface {
	Upcoming(ctx context.Context, within time.Duration) ([]desk.Entry, error)
	Overdue(ctx context.Context, grace time.Duration) ([]desk.Entry, error)
}

// Option configures the supervisor.
type Option func(*Supervisor)

// WithTickInterval sets how often the supervisor checks orders.
func WithTickInterval(d time.Duration) Option {
	return func(s *Supervisor) {
		s.tickInterval = d
	}
}

// WithLookahead sets how far ahead of a pickup the reminder fires.
func WithLookahead(d time.Duration) Option {
	return func(s *Supervisor) {
		s.lookahead = d
	}
}

// WithOverdueGrace sets how long after its pickup an approved order is
// reported as not collected.
func WithOverdueGrace(d time.Duration) Option {
	return func(s *Supervisor) {
		s.overdueGrace = d
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Supervisor) {
		s.now = now
	}
}

// WithMetrics counts delivered reminders in reg.
func WithMetrics(reg *metrics.Registry) Option {
	return func(s *Supervisor) {
		s.metrics = reg
	}
}

// Supervisor polls the desk in the background. Each order is announced
// once per pickup time: rescheduling an order makes it eligible again.
type Supervisor struct {
	source       Source
	notifier     domain.Notifier
	log          *logger.Logger
	tickInterval time.Duration
	lookahead    time.Duration
	overdueGrace time.Duration
	now          func() time.Time
	metrics      *metrics.Registry

	mu       sync.Mutex
	running  bool
	cancel   context.CancelFunc
	reminded map[string]time.Time // announced pickup key → pickup time
	overdue  map[string]time.Time
}

// New creates a reminder supervisor with the given dependencies and options.
func New(source Source, notifier domain.Notifier, log *logger.Logger, opts ...Option) *Supervisor {
	s := &Supervisor{
		source:       source,
		notifier:     notifier,
		log:          log,
		tickInterval: time.Minute,
		lookahead:    2 * time.Hour,
		overdueGrace: time.Hour,
		now:          time.Now,
		reminded:     make(map[string]time.Time),
		overdue:      make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins the background loop. Non-blocking.
func (s *Supervisor) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		s.log.Warn("reminder supervisor already running")
		return
	}

	childCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.running = true

	go s.loop(childCtx)

	s.log.Info("reminder supervisor started (tick=%s, lookahead=%s)", s.tickInterval, s.lookahead)
}

// Stop shuts the supervisor down.
func (s *Supervisor) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.cancel()
	s.running = false
	s.log.Info("reminder supervisor stopped")
}

func (s *Supervisor) loop(ctx context.Context) {
	// Check once right away so a fresh start does not wait a full tick.
	s.Check(ctx)

	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Check(ctx)
		}
	}
}

// Check runs one pass: announce upcoming pickups and report overdue ones.
// An order is marked only once its notification was delivered, so a
// failed send is retried on the next pass.
func (s *Supervisor) Check(ctx context.Context) {
	now := s.now()

	upcoming, err := s.source.Upcoming(ctx, s.lookahead)
	if err != nil {
		s.log.Error("listing upcoming pickups: %v", err)
	}
	for _, e := range upcoming {
		key := pickupKey(e)
		if s.seen(s.reminded, key) {
			continue
		}
		if s.send(ctx, false, s.upcomingMessage(e)) {
			at, _ := e.Pickup.Time()
			s.mark(s.reminded, key, at)
		}
	}
	s.pruneBefore(s.reminded, now)

	late, err := s.source.Overdue(ctx, s.overdueGrace)
	if err != nil {
		s.log.Error("listing overdue pickups: %v", err)
		return
	}
	current := make(map[string]bool, len(late))
	for _, e := range late {
		key := pickupKey(e)
		current[key] = true
		if s.seen(s.overdue, key) {
			continue
		}
		if s.send(ctx, true, s.overdueMessage(e)) {
			at, _ := e.Pickup.Time()
			s.mark(s.overdue, key, at)
		}
	}
	s.pruneMissing(s.overdue, current)
}

func (s *Supervisor) seen(m map[string]time.Time, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := m[key]
	return ok
}

func (s *Supervisor) mark(m map[string]time.Time, key string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m[key] = at
}

// pruneBefore drops keys whose pickup is before now. Those pickups can
// no longer fall inside the lookahead window.
func (s *Supervisor) pruneBefore(m map[string]time.Time, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, at := range m {
		if at.Before(now) {
			delete(m, key)
		}
	}
}

// pruneMissing drops keys no longer reported, such as orders completed,
// cancelled or rescheduled since their notice.
func (s *Supervisor) pruneMissing(m map[string]time.Time, current map[string]bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range m {
		if !current[key] {
			delete(m, key)
		}
	}
}

// tracked reports how many pickups are remembered as announced.
func (s *Supervisor) tracked() (reminded, overdue int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reminded), len(s.overdue)
}

func (s *Supervisor) send(ctx context.Context, urgent bool, msg string) bool {
	var err error
	if urgent {
		err = s.notifier.NotifyUrgent(ctx, msg)
	} else {
		err = s.notifier.Notify(ctx, msg)
	}
	if err != nil {
		s.log.Error("sending reminder: %v", err)
		return false
	}
	if s.metrics != nil {
		s.metrics.RemindersSent.Inc()
	}
	s.log.Debug("reminder sent: %s", msg)
	return true
}

func (s *Supervisor) upcomingMessage(e desk.Entry) string {
	at, _ := e.Pickup.Time()
	return fmt.Sprintf("Pickup in %s: %s (%s), %d items, %s",
		formatRemaining(at.Sub(s.now())), e.Order.CustomerName, shortID(e.Order.ID),
		e.Order.ItemCount(), "$"+e.Quote.Total.StringFixed(2))
}

func (s *Supervisor) overdueMessage(e desk.Entry) string {
	at, _ := e.Pickup.Time()
	return fmt.Sprintf("Not picked up: %s (%s) was due %s, %s ago",
		e.Order.CustomerName, shortID(e.Order.ID), pickup.Format(e.Pickup),
		formatRemaining(s.now().Sub(at)))
}

func pickupKey(e desk.Entry) string {
	return e.Order.ID + "@" + e.Pickup.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// formatRemaining renders a duration as "1h05m" or "25m".
func formatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Minute)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh%02dm", h, m)
}
