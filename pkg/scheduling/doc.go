/*
Package scheduling groups the execution primitives of stubfiber.

  - fiber: a deterministic, caller-driven execution context that stands in
    for a threaded fiber in unit tests

Actions given to a fiber either run on the caller's stack or wait in a FIFO
pending queue. Timers wait in a scheduled list whose delays are labels only.
The test driver decides when queued work runs and how much of it:

	f := fiber.NewWithConfig(fiber.Config{Deferred: true})
	f.Enqueue(task)
	t := f.Schedule(timeout, time.Minute)

	f.ExecuteAllPending()
	t.Cancel()

Nothing in this package spawns goroutines or reads a clock to decide when
work runs.
*/
package scheduling
