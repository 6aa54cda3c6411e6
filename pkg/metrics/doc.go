// Package metrics provides Prometheus instrumentation for stubfiber components.
//
// A stub fiber runs no background work, so every series here moves only when
// the test driver or a producer calls into the fiber. That makes the counters
// useful as assertions: a test can check that exactly N actions were executed
// by a drain, or that a shutdown path released every disposable.
//
// # Quick Start
//
//	reg := prometheus.NewRegistry()
//	m, err := metrics.NewRegistry(reg)
//	if err != nil {
//		return err
//	}
//
//	f := fiber.NewWithConfig(fiber.Config{Name: "orders", Metrics: m})
//
// Or attach metrics later through the Instrumentable interface:
//
//	f := fiber.New()
//	_ = f.EnableMetrics(metrics.Config{Enabled: true, Registry: reg})
//
// # Available Metrics
//
//   - stubfiber_pending_actions_enqueued_total{fiber_name, mode}: mode is "immediate" or "deferred"
//   - stubfiber_pending_actions_executed_total{fiber_name, source}: source is "immediate", "pending" or "scheduled"
//   - stubfiber_pending_actions{fiber_name}: current pending queue length
//   - stubfiber_scheduled_timers_created_total{fiber_name, kind}: kind is "once", "interval" or "cron"
//   - stubfiber_scheduled_timers_cancelled_total{fiber_name}
//   - stubfiber_scheduled_entries{fiber_name}: current scheduled list length
//   - stubfiber_fiber_execution_passes_total{fiber_name, collection, discipline}: discipline is "drain" or "snapshot"
//   - stubfiber_disposable_registered{fiber_name}
//   - stubfiber_disposable_failures_total{fiber_name}
//
// Several fibers may share one registerer. NewRegistry reuses collectors that
// are already registered, so each fiber only adds its own label values.
package metrics
