// Package config describes benchmark sweeps: which instances to load or
// generate, which algorithms to run on them, and with which parameter
// grids. Sweeps are read from YAML, checked with struct tags and
// overridden from the environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid sweep")

// Sweep is a full benchmark description.
type Sweep struct {
	// Seed is the base seed; every run derives its own stream from it.
	Seed int64 `yaml:"seed"`

	// Runs is the number of repetitions of every case.
	Runs int `yaml:"runs" validate:"gte=1,lte=10000"`

	Log         Log          `yaml:"log"`
	Output      Output       `yaml:"output"`
	Instances   []Instance   `yaml:"instances" validate:"required,min=1,dive"`
	Experiments []Experiment `yaml:"experiments" validate:"required,min=1,dive"`
}

// Log configures the process logger.
type Log struct {
	Level string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error disabled"`
}

// Output says where reports and metrics go.
type Output struct {
	// Dir receives one report per experiment.
	Dir string `yaml:"dir" validate:"required"`

	// Format is markdown or csv.
	Format string `yaml:"format" validate:"oneof=markdown csv"`

	// Metrics, when set, is the path of a Prometheus textfile written
	// after the sweep.
	Metrics string `yaml:"metrics,omitempty"`
}

// Instance is a named problem instance, read from Path or generated.
// N and K are report labels; when zero they are filled from the data.
type Instance struct {
	Name     string    `yaml:"name" validate:"required"`
	Path     string    `yaml:"path,omitempty" validate:"required_without=Generate"`
	Generate *Generate `yaml:"generate,omitempty" validate:"required_without=Path"`
	N        int       `yaml:"n,omitempty" validate:"gte=0"`
	K        int       `yaml:"k,omitempty" validate:"gte=0"`
}

// Generate describes a synthetic instance.
type Generate struct {
	Points int     `yaml:"points" validate:"gte=1"`
	Dim    int     `yaml:"dim" validate:"gte=1"`
	Seed   int64   `yaml:"seed"`
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max" validate:"gtfield=Min"`
}

// Experiment is one algorithm with its parameter grid. Every combination
// of Sizes × Iterations × RCLSizes × Tenures is a separate case; lists
// that do not apply to the algorithm must be left empty.
type Experiment struct {
	Name            string   `yaml:"name" validate:"required"`
	Algorithm       string   `yaml:"algorithm" validate:"oneof=greedy randomized-greedy grasp tabu bnb deep-bnb"`
	Instances       []string `yaml:"instances,omitempty"`
	Sizes           []int    `yaml:"sizes" validate:"required,min=1,dive,gte=1"`
	Iterations      []int    `yaml:"iterations,omitempty" validate:"dive,gte=1"`
	RCLSizes        []int    `yaml:"rcl_sizes,omitempty" validate:"dive,gte=1"`
	Tenures         []int    `yaml:"tenures,omitempty" validate:"dive,gte=1"`
	InnerIterations int      `yaml:"inner_iterations,omitempty" validate:"gte=0"`
	Seeder          string   `yaml:"seeder,omitempty" validate:"omitempty,oneof=greedy randomized-greedy grasp tabu"`
	NodePolicy      string   `yaml:"node_policy,omitempty" validate:"omitempty,oneof=smallest-bound largest-bound deepest"`
}

var sweepValidate *validator.Validate

func init() {
	sweepValidate = validator.New()
	sweepValidate.RegisterStructValidation(experimentLevel, Experiment{})
}

// experimentLevel requires the parameter lists each algorithm consumes.
func experimentLevel(sl validator.StructLevel) {
	e := sl.Current().Interface().(Experiment)
	switch e.Algorithm {
	case "randomized-greedy":
		if len(e.RCLSizes) == 0 {
			sl.ReportError(e.RCLSizes, "RCLSizes", "rcl_sizes", "required_for_algorithm", e.Algorithm)
		}
	case "grasp":
		if len(e.RCLSizes) == 0 {
			sl.ReportError(e.RCLSizes, "RCLSizes", "rcl_sizes", "required_for_algorithm", e.Algorithm)
		}
		if len(e.Iterations) == 0 {
			sl.ReportError(e.Iterations, "Iterations", "iterations", "required_for_algorithm", e.Algorithm)
		}
	case "tabu":
		if len(e.Tenures) == 0 {
			sl.ReportError(e.Tenures, "Tenures", "tenures", "required_for_algorithm", e.Algorithm)
		}
		if len(e.Iterations) == 0 {
			sl.ReportError(e.Iterations, "Iterations", "iterations", "required_for_algorithm", e.Algorithm)
		}
		if e.InnerIterations == 0 {
			sl.ReportError(e.InnerIterations, "InnerIterations", "inner_iterations", "required_for_algorithm", e.Algorithm)
		}
	case "bnb", "deep-bnb":
		if e.Seeder == "" {
			sl.ReportError(e.Seeder, "Seeder", "seeder", "required_for_algorithm", e.Algorithm)
		}
	}
}

// Validate checks tags, per-algorithm requirements and that instance names
// are unique and every experiment references known instances.
func (s *Sweep) Validate() error {
	if err := sweepValidate.Struct(s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	names := make(map[string]struct{}, len(s.Instances))
	for _, inst := range s.Instances {
		if _, dup := names[inst.Name]; dup {
			return fmt.Errorf("%w: duplicate instance %q", ErrInvalid, inst.Name)
		}
		names[inst.Name] = struct{}{}
	}
	experiments := make(map[string]struct{}, len(s.Experiments))
	for _, e := range s.Experiments {
		if _, dup := experiments[e.Name]; dup {
			return fmt.Errorf("%w: duplicate experiment %q", ErrInvalid, e.Name)
		}
		experiments[e.Name] = struct{}{}
		for _, ref := range e.Instances {
			if _, ok := names[ref]; !ok {
				return fmt.Errorf("%w: experiment %q references unknown instance %q", ErrInvalid, e.Name, ref)
			}
		}
	}

	return nil
}

// InstancesFor returns the instances experiment e runs on, in sweep order.
func (s *Sweep) InstancesFor(e Experiment) []Instance {
	if len(e.Instances) == 0 {
		return s.Instances
	}
	want := make(map[string]struct{}, len(e.Instances))
	for _, name := range e.Instances {
		want[name] = struct{}{}
	}
	out := make([]Instance, 0, len(e.Instances))
	for _, inst := range s.Instances {
		if _, ok := want[inst.Name]; ok {
			out = append(out, inst)
		}
	}

	return out
}

// base returns the values assumed for keys absent from a file.
func base() Sweep {
	return Sweep{
		Runs:   1,
		Log:    Log{Level: "info"},
		Output: Output{Dir: "result", Format: "markdown"},
	}
}

// Load reads, overrides from the environment and validates the sweep at
// path.
func Load(path string) (*Sweep, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	s, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return s, nil
}

// Parse decodes a YAML sweep from r, rejecting unknown keys, then applies
// environment overrides and validates the result.
func Parse(r io.Reader) (*Sweep, error) {
	s := base()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := applyEnv(&s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// applyEnv overrides selected fields from DIVERSITY_* variables.
func applyEnv(s *Sweep) error {
	if v := os.Getenv("DIVERSITY_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("DIVERSITY_SEED: %w", err)
		}
		s.Seed = seed
	}
	if v := os.Getenv("DIVERSITY_RUNS"); v != "" {
		runs, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DIVERSITY_RUNS: %w", err)
		}
		s.Runs = runs
	}
	if v := os.Getenv("DIVERSITY_OUTPUT_DIR"); v != "" {
		s.Output.Dir = v
	}
	if v := os.Getenv("DIVERSITY_LOG_LEVEL"); v != "" {
		s.Log.Level = v
	}

	return nil
}

// Write encodes s as YAML.
func Write(w io.Writer, s *Sweep) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}

	return enc.Close()
}
