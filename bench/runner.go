package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/diversity/config"
	"github.com/katalvlaran/diversity/instance"
	"github.com/katalvlaran/diversity/mdp"
)

// Record is the outcome of one run.
type Record struct {
	ID        uuid.UUID
	Run       int
	Seed      int64
	Z         float64
	Solution  string
	Elapsed   time.Duration
	Generated int
}

// Summary aggregates the runs of one Case.
type Summary struct {
	Case Case

	// N and K are the report labels of the instance: the configured ones,
	// or its point count and dimensionality.
	N, K int

	Z    Stats // z per run; Best is the maximum
	CPU  Stats // microseconds per run; Best is the minimum
	Best Record

	Records []Record
}

// Runner executes cases.
type Runner struct {
	// Runs is the number of repetitions per case (minimum 1).
	Runs int

	// BaseSeed feeds DeriveSeed for every run.
	BaseSeed int64

	// Dir resolves relative instance paths.
	Dir string

	// Log receives progress at Info and solver events at Debug;
	// nil disables logging.
	Log *zerolog.Logger

	// Metrics, when non-nil, observes every run.
	Metrics *Metrics

	cache map[string]*instance.Instance
}

// NewRunner returns a runner configured from a sweep.
func NewRunner(s *config.Sweep, dir string, log *zerolog.Logger, metrics *Metrics) *Runner {
	return &Runner{Runs: s.Runs, BaseSeed: s.Seed, Dir: dir, Log: log, Metrics: metrics}
}

func (r *Runner) logger() zerolog.Logger {
	if r.Log == nil {
		return zerolog.Nop()
	}

	return *r.Log
}

// instance loads ci once per runner.
func (r *Runner) instance(ci config.Instance) (*instance.Instance, error) {
	if r.cache == nil {
		r.cache = make(map[string]*instance.Instance)
	}
	if inst, ok := r.cache[ci.Name]; ok {
		return inst, nil
	}
	inst, err := Open(ci, r.Dir)
	if err != nil {
		return nil, err
	}
	r.cache[ci.Name] = inst

	return inst, nil
}

// Run executes every case in order. It stops at the first error or when
// ctx is cancelled between runs.
func (r *Runner) Run(ctx context.Context, cases []Case) ([]Summary, error) {
	out := make([]Summary, 0, len(cases))
	for k, c := range cases {
		sum, err := r.RunCase(ctx, c, uint64(k))
		if err != nil {
			return out, fmt.Errorf("%s on %s (m=%d): %w", c.Experiment, c.Instance.Name, c.Options.Size, err)
		}
		out = append(out, sum)
	}

	return out, nil
}

// RunCase repeats c Runs times. Run i uses the seed
// DeriveSeed(BaseSeed, stream·Runs+i), so results do not depend on which
// other cases run.
func (r *Runner) RunCase(ctx context.Context, c Case, stream uint64) (Summary, error) {
	log := r.logger()
	inst, err := r.instance(c.Instance)
	if err != nil {
		return Summary{}, err
	}
	runs := r.Runs
	if runs < 1 {
		runs = 1
	}

	sum := Summary{Case: c, N: c.Instance.N, K: c.Instance.K}
	if sum.N == 0 {
		sum.N = inst.Len()
	}
	if sum.K == 0 {
		sum.K = inst.Dim()
	}

	var (
		zs   = make([]float64, 0, runs)
		cpus = make([]float64, 0, runs)
	)
	for i := 0; i < runs; i++ {
		if err = ctx.Err(); err != nil {
			return Summary{}, err
		}
		rec, err := r.runOnce(inst, c, mdp.DeriveSeed(r.BaseSeed, stream*uint64(runs)+uint64(i)))
		if err != nil {
			r.Metrics.observeFailure(c)
			return Summary{}, fmt.Errorf("run %d: %w", i, err)
		}
		rec.Run = i
		r.Metrics.observe(c, rec)

		sum.Records = append(sum.Records, rec)
		zs = append(zs, rec.Z)
		cpus = append(cpus, float64(rec.Elapsed.Microseconds()))
		if i == 0 || rec.Z > sum.Best.Z {
			sum.Best = rec
		}
	}
	sum.Z = CalcMaxStats(zs)
	sum.CPU = CalcMinStats(cpus)
	r.Metrics.observeBest(c, sum.Best.Z)

	log.Info().
		Str("experiment", c.Experiment).
		Str("instance", c.Instance.Name).
		Int("m", c.Options.Size).
		Float64("z", sum.Z.Best).
		Float64("cpu_us", sum.CPU.Mean).
		Msg("case finished")

	return sum, nil
}

func (r *Runner) runOnce(inst *instance.Instance, c Case, seed int64) (Record, error) {
	opts := c.Options
	opts.Seed = seed
	opts.Rand = nil
	opts.Logger = r.Log

	solver, err := mdp.NewSolver(opts)
	if err != nil {
		return Record{}, err
	}
	start := time.Now()
	sol, err := solver.Solve(inst)
	elapsed := time.Since(start)
	if err != nil {
		return Record{}, err
	}

	rec := Record{
		ID:       uuid.New(),
		Seed:     seed,
		Z:        sol.Z(),
		Solution: sol.String(),
		Elapsed:  elapsed,
	}
	if g, ok := solver.(interface{ GeneratedNodes() int }); ok {
		rec.Generated = g.GeneratedNodes()
	}

	return rec, nil
}
