package fiber

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/stubfiber/pkg/metrics"
)

// EnableMetrics implements metrics.Instrumentable.
func (s *Stub) EnableMetrics(config metrics.Config) error {
	if !config.Enabled {
		s.DisableMetrics()
		return nil
	}
	if config.Registry == nil {
		config.Registry = prometheus.DefaultRegisterer
	}

	m, err := metrics.NewRegistryWithConfig(config)
	if err != nil {
		return err
	}
	s.metrics = m
	s.syncGauges()
	return nil
}

// DisableMetrics implements metrics.Instrumentable.
func (s *Stub) DisableMetrics() {
	s.metrics = nil
}

// MetricsEnabled implements metrics.Instrumentable.
func (s *Stub) MetricsEnabled() bool {
	return s.metrics != nil
}

func (s *Stub) countEnqueued(mode string) {
	if s.metrics == nil {
		return
	}
	s.metrics.ActionsEnqueued.WithLabelValues(s.name, mode).Inc()
}

func (s *Stub) countPass(collection, discipline string) {
	if s.metrics == nil {
		return
	}
	s.metrics.ExecutionPasses.WithLabelValues(s.name, collection, discipline).Inc()
}

func (s *Stub) disposeFailed(int, error) {
	if s.metrics == nil {
		return
	}
	s.metrics.DisposeFailures.WithLabelValues(s.name).Inc()
}

func (s *Stub) syncGauges() {
	if s.metrics == nil {
		return
	}
	s.metrics.PendingActions.WithLabelValues(s.name).Set(float64(s.pending.len()))
	s.metrics.ScheduledEntries.WithLabelValues(s.name).Set(float64(s.scheduled.len()))
	s.metrics.Disposables.WithLabelValues(s.name).Set(float64(s.disposables.Count()))
}
