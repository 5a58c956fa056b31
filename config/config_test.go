package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diversity/config"
)

const sampleYAML = `
seed: 7
runs: 3
output:
  dir: out
  format: csv
  metrics: out/metrics.prom
instances:
  - name: small
    path: data/small.txt
  - name: synthetic
    generate: {points: 12, dim: 2, seed: 5, min: 0, max: 10}
experiments:
  - name: g
    algorithm: greedy
    sizes: [2, 3]
  - name: t
    algorithm: tabu
    instances: [synthetic]
    sizes: [3]
    iterations: [5]
    tenures: [2]
    inner_iterations: 4
`

func TestParse_Sample(t *testing.T) {
	s, err := config.Parse(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, int64(7), s.Seed)
	assert.Equal(t, 3, s.Runs)
	assert.Equal(t, "info", s.Log.Level, "absent keys keep their defaults")
	assert.Equal(t, "csv", s.Output.Format)
	require.Len(t, s.Instances, 2)
	require.NotNil(t, s.Instances[1].Generate)
	assert.Equal(t, 12, s.Instances[1].Generate.Points)

	require.Len(t, s.Experiments, 2)
	assert.Len(t, s.InstancesFor(s.Experiments[0]), 2)
	only := s.InstancesFor(s.Experiments[1])
	require.Len(t, only, 1)
	assert.Equal(t, "synthetic", only[0].Name)
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown key": `
instances: [{name: a, path: a.txt}]
experiments: [{name: g, algorithm: greedy, sizes: [2]}]
colour: blue
`,
		"no instances": `
experiments: [{name: g, algorithm: greedy, sizes: [2]}]
`,
		"unknown algorithm": `
instances: [{name: a, path: a.txt}]
experiments: [{name: g, algorithm: annealing, sizes: [2]}]
`,
		"zero size": `
instances: [{name: a, path: a.txt}]
experiments: [{name: g, algorithm: greedy, sizes: [0]}]
`,
		"instance without source": `
instances: [{name: a}]
experiments: [{name: g, algorithm: greedy, sizes: [2]}]
`,
		"grasp without rcl": `
instances: [{name: a, path: a.txt}]
experiments: [{name: g, algorithm: grasp, sizes: [2], iterations: [3]}]
`,
		"tabu without inner iterations": `
instances: [{name: a, path: a.txt}]
experiments: [{name: t, algorithm: tabu, sizes: [2], iterations: [3], tenures: [2]}]
`,
		"bnb without seeder": `
instances: [{name: a, path: a.txt}]
experiments: [{name: b, algorithm: bnb, sizes: [2]}]
`,
		"unknown instance reference": `
instances: [{name: a, path: a.txt}]
experiments: [{name: g, algorithm: greedy, sizes: [2], instances: [b]}]
`,
		"duplicate instance": `
instances: [{name: a, path: a.txt}, {name: a, path: b.txt}]
experiments: [{name: g, algorithm: greedy, sizes: [2]}]
`,
		"bad format": `
output: {dir: out, format: html}
instances: [{name: a, path: a.txt}]
experiments: [{name: g, algorithm: greedy, sizes: [2]}]
`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestParse_ValidationErrorsWrapSentinel(t *testing.T) {
	_, err := config.Parse(strings.NewReader(`
instances: [{name: a, path: a.txt}]
experiments: [{name: g, algorithm: greedy, sizes: [-1]}]
`))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestParse_EnvOverrides(t *testing.T) {
	t.Setenv("DIVERSITY_SEED", "99")
	t.Setenv("DIVERSITY_RUNS", "5")
	t.Setenv("DIVERSITY_OUTPUT_DIR", "elsewhere")
	t.Setenv("DIVERSITY_LOG_LEVEL", "warn")

	s, err := config.Parse(strings.NewReader(sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, int64(99), s.Seed)
	assert.Equal(t, 5, s.Runs)
	assert.Equal(t, "elsewhere", s.Output.Dir)
	assert.Equal(t, "warn", s.Log.Level)

	t.Setenv("DIVERSITY_RUNS", "many")
	_, err = config.Parse(strings.NewReader(sampleYAML))
	assert.Error(t, err)
}

func TestDefault_IsValid(t *testing.T) {
	s := config.Default()
	require.NoError(t, s.Validate())
	assert.Len(t, s.Instances, 6)
	require.Len(t, s.Experiments, 4)
	assert.Equal(t, "bnb", s.Experiments[3].Algorithm)
	assert.Equal(t, "greedy", s.Experiments[3].Seeder)
	assert.Len(t, s.InstancesFor(s.Experiments[1]), 3)
}

func TestWriteLoad_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, config.Write(&buf, config.Default()))

	path := filepath.Join(t.TempDir(), "sweep.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	s, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), s)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
