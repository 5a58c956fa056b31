package instance

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/diversity/geom"
)

// Default generator settings.
const (
	defaultSeed int64 = 1
	defaultLow        = 0.0
	defaultHigh       = 10.0
	defaultPrec       = 2

	// maxRandomTries bounds redraws per requested point when the range
	// and precision leave too few distinct values.
	maxRandomTries = 64
)

// RandomOption customizes Random.
type RandomOption func(*randomConfig)

type randomConfig struct {
	rng       *rand.Rand
	low, high float64
	precision int
}

// WithRand makes Random draw from r. Panics on nil.
func WithRand(r *rand.Rand) RandomOption {
	if r == nil {
		panic("instance: WithRand(nil)")
	}
	return func(c *randomConfig) { c.rng = r }
}

// WithSeed makes Random draw from a fresh stream seeded with seed.
func WithSeed(seed int64) RandomOption {
	return func(c *randomConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRange sets the coordinate interval [low, high). Rounding to the
// configured precision may yield high itself.
func WithRange(low, high float64) RandomOption {
	return func(c *randomConfig) { c.low, c.high = low, high }
}

// WithPrecision rounds coordinates to the given number of decimals.
// A negative value disables rounding.
func WithPrecision(decimals int) RandomOption {
	return func(c *randomConfig) { c.precision = decimals }
}

// Random generates n distinct points of dimensionality d with coordinates
// drawn uniformly from the configured range.
//
// Errors: ErrEmpty (n ≤ 0), ErrZeroDimension (d ≤ 0), ErrBadRange.
//
// Complexity: O(n·d) expected.
func Random(n, d int, opts ...RandomOption) (*Instance, error) {
	cfg := randomConfig{low: defaultLow, high: defaultHigh, precision: defaultPrec}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}
	if n <= 0 {
		return nil, ErrEmpty
	}
	if d <= 0 {
		return nil, ErrZeroDimension
	}
	if !(cfg.high > cfg.low) || math.IsInf(cfg.high-cfg.low, 0) || math.IsNaN(cfg.high-cfg.low) {
		return nil, ErrBadRange
	}

	var (
		points = make([]geom.Point, 0, n)
		seen   = make(map[string]struct{}, n)
		coords = make([]float64, d)
		scale  = math.Pow(10, float64(cfg.precision))
		span   = cfg.high - cfg.low
		j      int
		tries  int
	)
	for len(points) < n {
		if tries++; tries > maxRandomTries*n {
			return nil, fmt.Errorf("cannot draw %d distinct points: %w", n, ErrBadRange)
		}
		for j = 0; j < d; j++ {
			v := cfg.low + cfg.rng.Float64()*span
			if cfg.precision >= 0 {
				v = math.Round(v*scale) / scale
			}
			coords[j] = v
		}
		p := geom.New(coords...)
		key := p.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		points = append(points, p)
	}

	return New(points)
}
