package fiber

import (
	"time"

	"github.com/vnykmshr/stubfiber/pkg/disposable"
)

// Action is a unit of work. Faults are panics; they propagate to whichever
// call ran the action.
type Action func()

// Executor accepts actions for immediate or deferred execution.
type Executor interface {
	Enqueue(action Action)
	EnqueueAll(actions ...Action)
}

// Timer controls one scheduled entry.
type Timer interface {
	// Cancel removes the entry if it has not run yet.
	// It reports false when the entry is already gone.
	Cancel() bool
}

// Scheduler accepts actions tagged with a nominal delay.
type Scheduler interface {
	Schedule(action Action, delay time.Duration) Timer
	ScheduleOnInterval(action Action, firstDelay, interval time.Duration) Timer
}

// Fiber is the executor capability a messaging layer needs from its
// execution context.
type Fiber interface {
	Executor
	Scheduler
	disposable.Registrar

	// Lifecycle
	Start() error
	Dispose() error
}
