package haar

import "runtime"

type config struct {
	workers int
}

// Option configures a transform call.
type Option func(*config)

func applyOptions(opts ...Option) config {
	cfg := config{workers: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithWorkers spreads the per-row pyramids across up to n goroutines.
// n == 0 selects runtime.NumCPU(); n == 1 (the default) keeps the transform
// sequential. Results are identical regardless of worker count, since rows
// never interact.
func WithWorkers(n int) Option {
	return func(cfg *config) {
		if n == 0 {
			n = runtime.NumCPU()
		}
		if n > 0 {
			cfg.workers = n
		}
	}
}
