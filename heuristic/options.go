package heuristic

// Option configures a single call of a constructor or of LocalSearch.
type Option func(*config)

// config is resolved per call and never shared.
type config struct {
	seed int64
	hook func(IterationReport)
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed fixes the seed of the call-local generator. 0 keeps the default
// (fresh entropy per call).
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithIterationHook installs fn to be called after every LocalSearch
// iteration. Constructors ignore it. Panics on nil.
func WithIterationHook(fn func(IterationReport)) Option {
	if fn == nil {
		panic("heuristic: WithIterationHook(nil)")
	}
	return func(c *config) { c.hook = fn }
}
