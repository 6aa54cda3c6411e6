/*
Package fiber provides a deterministic stand-in for a threaded fiber.

A Stub accepts the same actions and timers as a real execution context, but
it never starts a goroutine. Work either runs synchronously on the caller's
stack (immediate mode, the default) or is held in ordered collections until
the test driver runs it explicitly.

Immediate mode:

	f := fiber.New()
	f.Enqueue(func() { fmt.Println("runs before Enqueue returns") })

Deferred mode:

	f := fiber.NewWithConfig(fiber.Config{Deferred: true})
	f.Enqueue(handleMessage)

	f.ExecuteAllPending()           // one generation: what was queued at call time
	f.ExecuteAllPendingUntilEmpty() // fixed point: also runs work queued while draining

Timers:

Schedule, ScheduleOnInterval and ScheduleCron append entries to the
scheduled list and return a Timer whose Cancel removes the entry. Delays and
intervals are labels; no clock decides when entries run. ExecuteAllScheduled
and ExecuteAllScheduledUntilEmpty follow the same two disciplines as the
pending queue. Every entry, recurring or not, is removed once it has run.

	t := f.Schedule(retry, 30*time.Second)
	t.Cancel()

Faults:

Actions report failure by panicking. The panic reaches whichever call ran
the action. The action that panicked has already been removed; entries not
yet reached stay queued for a later call.

Disposables:

Add registers resources tied to the fiber's lifetime. Dispose releases all of
them, continuing past failures, and returns the failures joined. Queued and
scheduled work is left untouched.

A Stub is not safe for concurrent use.
*/
package fiber
