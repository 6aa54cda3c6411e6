package fiber

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/vnykmshr/stubfiber/pkg/metrics"
)

// Config holds stub fiber configuration.
type Config struct {
	// Name labels log events and metric series (default: "stub").
	Name string

	// Deferred starts the fiber with immediate execution turned off, so
	// Enqueue appends to the pending queue instead of running the action.
	Deferred bool

	// Logger receives debug events and release failures (default: no-op).
	Logger *zerolog.Logger

	// Metrics, when set, is updated on every enqueue, schedule and run.
	Metrics *metrics.Registry

	// Location is used to evaluate cron expressions (default: time.Local).
	Location *time.Location

	// Now is read only to derive delay labels for cron entries (default: time.Now).
	Now func() time.Time
}

func (cfg Config) withDefaults() Config {
	if cfg.Name == "" {
		cfg.Name = "stub"
	}
	if cfg.Logger == nil {
		nop := zerolog.Nop()
		cfg.Logger = &nop
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return cfg
}
