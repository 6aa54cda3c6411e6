// Package metrics provides Prometheus instrumentation for stubfiber components.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	sferrors "github.com/vnykmshr/stubfiber/pkg/common/errors"
	"github.com/vnykmshr/stubfiber/pkg/common/validation"
)

// DefaultNamespace is used when no namespace is configured.
const DefaultNamespace = "stubfiber"

// Registry holds all metric instances for stubfiber components.
// Several fibers may share one Registry; series are split by the fiber_name label.
type Registry struct {
	// Pending queue
	ActionsEnqueued *prometheus.CounterVec
	ActionsExecuted *prometheus.CounterVec
	PendingActions  *prometheus.GaugeVec

	// Scheduled list
	TimersScheduled  *prometheus.CounterVec
	TimersCancelled  *prometheus.CounterVec
	ScheduledEntries *prometheus.GaugeVec

	// Execution passes
	ExecutionPasses *prometheus.CounterVec

	// Disposables
	Disposables     *prometheus.GaugeVec
	DisposeFailures *prometheus.CounterVec
}

// NewRegistry creates the stubfiber collectors and registers them with reg.
// Collectors already registered under the same descriptor are reused, so
// calling NewRegistry twice against one registerer is safe.
func NewRegistry(reg prometheus.Registerer) (*Registry, error) {
	return NewRegistryWithConfig(Config{Enabled: true, Registry: reg})
}

// NewRegistryWithConfig is like NewRegistry but honours Namespace and Labels.
func NewRegistryWithConfig(cfg Config) (*Registry, error) {
	if err := validation.ValidateNotNil("metrics", "registerer", cfg.Registry); err != nil {
		return nil, err
	}

	ns := cfg.Namespace
	if ns == "" {
		ns = DefaultNamespace
	}

	f := factory{reg: cfg.Registry, namespace: ns, labels: cfg.Labels}

	r := &Registry{
		ActionsEnqueued: f.counter("pending", "actions_enqueued_total",
			"Total number of actions handed to a fiber", "fiber_name", "mode"),
		ActionsExecuted: f.counter("pending", "actions_executed_total",
			"Total number of actions run by a fiber", "fiber_name", "source"),
		PendingActions: f.gauge("pending", "actions",
			"Actions currently waiting in the pending queue", "fiber_name"),

		TimersScheduled: f.counter("scheduled", "timers_created_total",
			"Total number of scheduled entries created", "fiber_name", "kind"),
		TimersCancelled: f.counter("scheduled", "timers_cancelled_total",
			"Total number of scheduled entries removed through a timer handle", "fiber_name"),
		ScheduledEntries: f.gauge("scheduled", "entries",
			"Entries currently waiting in the scheduled list", "fiber_name"),

		ExecutionPasses: f.counter("fiber", "execution_passes_total",
			"Total number of driver execution calls", "fiber_name", "collection", "discipline"),

		Disposables: f.gauge("disposable", "registered",
			"Disposables currently registered with a fiber", "fiber_name"),
		DisposeFailures: f.counter("disposable", "failures_total",
			"Total number of disposables that failed to release", "fiber_name"),
	}

	if f.err != nil {
		return nil, f.err
	}
	return r, nil
}

// factory builds collectors and keeps the first registration error.
type factory struct {
	reg       prometheus.Registerer
	namespace string
	labels    prometheus.Labels
	err       error
}

func (f *factory) counter(subsystem, name, help string, labels ...string) *prometheus.CounterVec {
	c := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   f.namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: f.labels,
	}, labels)
	if existing, ok := f.register(c).(*prometheus.CounterVec); ok {
		return existing
	}
	return c
}

func (f *factory) gauge(subsystem, name, help string, labels ...string) *prometheus.GaugeVec {
	g := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   f.namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: f.labels,
	}, labels)
	if existing, ok := f.register(g).(*prometheus.GaugeVec); ok {
		return existing
	}
	return g
}

// register returns the previously registered collector when c is a duplicate.
func (f *factory) register(c prometheus.Collector) prometheus.Collector {
	err := f.reg.Register(c)
	if err == nil {
		return c
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		return are.ExistingCollector
	}

	if f.err == nil {
		f.err = sferrors.NewOperationError("metrics", "Register", err)
	}
	return c
}
