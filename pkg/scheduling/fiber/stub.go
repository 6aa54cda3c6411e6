package fiber

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/vnykmshr/stubfiber/pkg/disposable"
	"github.com/vnykmshr/stubfiber/pkg/metrics"
)

var (
	_ Fiber                  = (*Stub)(nil)
	_ metrics.Instrumentable = (*Stub)(nil)
)

// Stub is a Fiber that never starts a goroutine. Work is either run on the
// caller's stack or held until the test driver executes it.
//
// Stub is not safe for concurrent use.
type Stub struct {
	name      string
	immediate bool

	pending     pendingQueue
	scheduled   scheduledList
	disposables *disposable.Registry

	logger   zerolog.Logger
	metrics  *metrics.Registry
	location *time.Location
	now      func() time.Time
	parser   cron.Parser
}

// New creates a stub fiber in immediate mode.
func New() *Stub {
	return NewWithConfig(Config{})
}

// NewWithConfig creates a stub fiber with custom configuration.
func NewWithConfig(cfg Config) *Stub {
	cfg = cfg.withDefaults()

	logger := cfg.Logger.With().Str("fiber", cfg.Name).Logger()

	s := &Stub{
		name:      cfg.Name,
		immediate: !cfg.Deferred,
		logger:    logger,
		metrics:   cfg.Metrics,
		location:  cfg.Location,
		now:       cfg.Now,
		parser:    cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor),
	}
	s.scheduled.onCancel = s.timerCancelled
	s.disposables = disposable.NewRegistry(logger, disposable.WithFailureHook(s.disposeFailed))
	s.syncGauges()
	return s
}

// Name returns the configured fiber name.
func (s *Stub) Name() string {
	return s.name
}

// Start is a no-op; a stub has no background resources to acquire.
func (s *Stub) Start() error {
	return nil
}

// Dispose releases every registered disposable. Pending and scheduled
// entries are left in place.
func (s *Stub) Dispose() error {
	err := s.disposables.DisposeAll()
	s.syncGauges()
	return err
}

// SetImmediate selects whether later Enqueue calls run the action at once.
// Entries already queued are not affected.
func (s *Stub) SetImmediate(immediate bool) {
	s.immediate = immediate
}

// Immediate reports the current execution mode.
func (s *Stub) Immediate() bool {
	return s.immediate
}

// Enqueue runs action now in immediate mode, otherwise appends it to the
// pending queue. Nil actions are ignored.
func (s *Stub) Enqueue(action Action) {
	if action == nil {
		return
	}

	if s.immediate {
		s.countEnqueued("immediate")
		s.run(action, "immediate")
		return
	}

	s.pending.enqueue(action)
	s.countEnqueued("deferred")
	s.syncGauges()
}

// EnqueueAll applies Enqueue to each action in order.
func (s *Stub) EnqueueAll(actions ...Action) {
	for _, action := range actions {
		s.Enqueue(action)
	}
}

// ExecuteAllPendingUntilEmpty runs pending actions until none are left,
// including actions enqueued while draining. An action that always
// re-enqueues itself makes this loop forever.
//
// If an action panics the panic propagates; actions not yet reached stay queued.
func (s *Stub) ExecuteAllPendingUntilEmpty() {
	s.countPass("pending", "drain")
	ran := s.pending.drain(s.runPending)
	s.logger.Debug().Int("ran", ran).Msg("pending drained")
}

// ExecuteAllPending runs the actions that were pending when it was called.
// Actions enqueued during the pass stay queued for a later call.
func (s *Stub) ExecuteAllPending() {
	s.countPass("pending", "snapshot")
	ran := s.pending.runGeneration(s.runPending)
	s.logger.Debug().Int("ran", ran).Int("left", s.pending.len()).Msg("pending generation executed")
}

// ClearPending drops every pending action without running it.
func (s *Stub) ClearPending() int {
	n := s.pending.clear()
	s.syncGauges()
	return n
}

// Pending returns a copy of the pending queue.
func (s *Stub) Pending() []Action {
	return s.pending.actions()
}

// PendingCount returns the pending queue length.
func (s *Stub) PendingCount() int {
	return s.pending.len()
}

// Schedule appends a one-shot entry. The delay is recorded as a label only.
func (s *Stub) Schedule(action Action, delay time.Duration) Timer {
	return s.schedule(Entry{Action: action, Delay: nonNegative(delay)})
}

// ScheduleOnInterval appends a recurring entry.
//
// The entry is not re-armed after it runs: both execution methods remove it,
// and the interval is kept only as a label. Whether the real fiber would
// fire it again is left to the caller, who can schedule it anew.
func (s *Stub) ScheduleOnInterval(action Action, firstDelay, interval time.Duration) Timer {
	return s.schedule(Entry{
		Action:   action,
		Delay:    nonNegative(firstDelay),
		Interval: nonNegative(interval),
	})
}

// A nil action yields an inert handle and no entry.
func (s *Stub) schedule(e Entry) Timer {
	if e.Action == nil {
		return &Handle{}
	}

	h := s.scheduled.add(e)
	if s.metrics != nil {
		s.metrics.TimersScheduled.WithLabelValues(s.name, string(e.Kind())).Inc()
	}
	s.syncGauges()
	s.logger.Debug().
		Uint64("timer", h.id).
		Str("kind", string(e.Kind())).
		Dur("delay", e.Delay).
		Dur("interval", e.Interval).
		Msg("entry scheduled")
	return h
}

// ExecuteAllScheduledUntilEmpty runs scheduled entries until none are left,
// including entries scheduled while draining.
func (s *Stub) ExecuteAllScheduledUntilEmpty() {
	s.countPass("scheduled", "drain")
	ran := s.scheduled.drain(s.runScheduled)
	s.logger.Debug().Int("ran", ran).Msg("scheduled drained")
}

// ExecuteAllScheduled runs the entries that were scheduled when it was
// called. Entries scheduled during the pass stay; entries cancelled during
// the pass do not run.
func (s *Stub) ExecuteAllScheduled() {
	s.countPass("scheduled", "snapshot")
	ran := s.scheduled.runGeneration(s.runScheduled)
	s.logger.Debug().Int("ran", ran).Int("left", s.scheduled.len()).Msg("scheduled generation executed")
}

// CancelAllScheduled drops every scheduled entry without running it.
// Outstanding handles become inert.
func (s *Stub) CancelAllScheduled() int {
	n := s.scheduled.clear()
	s.syncGauges()
	return n
}

// Scheduled returns a copy of the scheduled list.
func (s *Stub) Scheduled() []Entry {
	return s.scheduled.entries()
}

// ScheduledCount returns the scheduled list length.
func (s *Stub) ScheduledCount() int {
	return s.scheduled.len()
}

// Add registers d to be released by Dispose.
func (s *Stub) Add(d disposable.Disposable) {
	s.disposables.Add(d)
	s.syncGauges()
}

// Remove unregisters the first entry equal to d.
func (s *Stub) Remove(d disposable.Disposable) bool {
	removed := s.disposables.Remove(d)
	s.syncGauges()
	return removed
}

// Count returns the number of registered disposables.
func (s *Stub) Count() int {
	return s.disposables.Count()
}

// Disposables returns a copy of the registered disposables.
func (s *Stub) Disposables() []disposable.Disposable {
	return s.disposables.Items()
}

func (s *Stub) runPending(action Action) {
	s.syncGauges()
	s.run(action, "pending")
}

func (s *Stub) runScheduled(e Entry) {
	s.syncGauges()
	s.run(e.Action, "scheduled")
}

func (s *Stub) run(action Action, source string) {
	action()
	if s.metrics != nil {
		s.metrics.ActionsExecuted.WithLabelValues(s.name, source).Inc()
	}
}

func (s *Stub) timerCancelled(id uint64) {
	if s.metrics != nil {
		s.metrics.TimersCancelled.WithLabelValues(s.name).Inc()
	}
	s.syncGauges()
	s.logger.Debug().Uint64("timer", id).Msg("entry cancelled")
}
