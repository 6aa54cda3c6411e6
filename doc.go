/*
Package stubfiber provides a deterministic execution context for testing
asynchronous, message-driven Go code.

Code that normally hands work to a fiber, event loop or worker goroutine can
be given a stub instead. The stub captures actions and timers into ordered
collections and the test drives them explicitly, so every run executes the
same work in the same order.

Scheduling (pkg/scheduling):
  - fiber: the stub execution context, pending queue, scheduled list and timers

Resources (pkg/disposable):
  - Registry of releasable resources tied to a fiber's lifetime

Observability (pkg/metrics):
  - Prometheus counters and gauges for enqueue, schedule, run and dispose

Example usage:

	import (
		"github.com/vnykmshr/stubfiber/pkg/scheduling/fiber"
	)

	f := fiber.NewWithConfig(fiber.Config{Deferred: true})
	subscriber := NewSubscriber(f) // code under test enqueues onto f

	subscriber.OnMessage("hello")
	f.ExecuteAllPendingUntilEmpty()
*/
package stubfiber
