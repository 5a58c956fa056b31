package mdp

import "github.com/rs/zerolog"

// Option customizes a solver at construction time.
// Options that do not apply to a solver are ignored by it.
type Option func(*settings)

type settings struct {
	log       zerolog.Logger
	policy    NodePolicy
	hasPolicy bool
	observer  func(iteration int, bestZ float64)
}

func newSettings(opts []Option) settings {
	s := settings{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// WithLogger attaches a logger. Solvers emit Debug events only; the
// default is a no-op logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *settings) { s.log = l }
}

// WithNodePolicy overrides the node-selection policy of branch-and-bound.
// Panics on an unknown policy.
func WithNodePolicy(p NodePolicy) Option {
	if !p.valid() {
		panic("mdp: WithNodePolicy(" + p.String() + ")")
	}
	return func(s *settings) { s.policy, s.hasPolicy = p, true }
}

// WithTabuObserver registers fn to be called by TabuSearch after every
// inner iteration with the iteration number (within the current start) and
// the best-known z. Panics on nil.
func WithTabuObserver(fn func(iteration int, bestZ float64)) Option {
	if fn == nil {
		panic("mdp: WithTabuObserver(nil)")
	}
	return func(s *settings) { s.observer = fn }
}
