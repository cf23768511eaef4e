// Package engine implements the aggregation core: the Search, Latest,
// and Trending orchestrators that fan out to source adapters in
// parallel, collect partial results under failure isolation, and
// post-process the aggregate.
package engine

import (
	"time"

	"github.com/jonesrussell/news-aggregator/internal/source"
	"github.com/jonesrussell/news-aggregator/internal/telemetry"
	"github.com/jonesrussell/news-aggregator/pkg/logger"
)

// Defaults for the fan-out resource model.
const (
	// DefaultMaxConcurrency bounds how many adapter calls run at once.
	DefaultMaxConcurrency = 4

	// DefaultFanoutTimeout is the engine-level hard deadline on one
	// fan-out. Adapters still pending at expiry are abandoned and
	// omitted from active_sources; the request itself still succeeds.
	DefaultFanoutTimeout = 30 * time.Second
)

// Options tune the engine's concurrency and deadline.
type Options struct {
	MaxConcurrency int
	FanoutTimeout  time.Duration
}

// Engine holds the three orchestrators' shared dependencies. It is
// safe for concurrent use; no mutable state is shared across requests.
type Engine struct {
	registry       *source.Registry
	logger         logger.Logger
	metrics        *telemetry.Metrics
	maxConcurrency int
	fanoutTimeout  time.Duration
}

// New creates an Engine over the given registry.
func New(registry *source.Registry, log logger.Logger, metrics *telemetry.Metrics, opts Options) *Engine {
	if opts.MaxConcurrency <= 0 {
		opts.MaxConcurrency = DefaultMaxConcurrency
	}
	if opts.FanoutTimeout <= 0 {
		opts.FanoutTimeout = DefaultFanoutTimeout
	}
	return &Engine{
		registry:       registry,
		logger:         log,
		metrics:        metrics,
		maxConcurrency: opts.MaxConcurrency,
		fanoutTimeout:  opts.FanoutTimeout,
	}
}
