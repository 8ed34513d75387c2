package edges

import "runtime"

// minRowsPerWorker keeps goroutine overhead below the cost of the rows a
// worker sweeps.
const minRowsPerWorker = 32

// config holds builder knobs resolved from Options.
type config struct {
	workers int
}

// Option customizes Compute.
type Option func(*config)

// WithWorkers sets how many goroutines share the interior sweep.
// 1 keeps the sweep on the calling goroutine; 0 means runtime.GOMAXPROCS(0).
// Panics on negative n.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("edges: WithWorkers(n<0)")
	}
	return func(c *config) {
		c.workers = n
	}
}

func newConfig(opts ...Option) config {
	cfg := config{workers: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers == 0 {
		cfg.workers = runtime.GOMAXPROCS(0)
	}
	return cfg
}
