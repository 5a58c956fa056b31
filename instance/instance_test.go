package instance_test

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diversity/geom"
	"github.com/katalvlaran/diversity/instance"
)

func square() []geom.Point {
	return []geom.Point{
		geom.New(0, 0),
		geom.New(2, 0),
		geom.New(0, 2),
		geom.New(2, 2),
	}
}

func TestNew_DistanceCache(t *testing.T) {
	inst, err := instance.New(square())
	require.NoError(t, err)
	require.Equal(t, 4, inst.Len())
	require.Equal(t, 2, inst.Dim())

	var i, j int
	for i = 0; i < inst.Len(); i++ {
		assert.Equal(t, 0.0, inst.Distance(i, i))
		for j = 0; j < inst.Len(); j++ {
			assert.Equal(t, inst.Point(i).Distance(inst.Point(j)), inst.Distance(i, j))
			assert.Equal(t, inst.Distance(i, j), inst.Distance(j, i))
		}
	}
	assert.InDelta(t, 2*math.Sqrt2, inst.Distance(0, 3), 1e-12)
}

func TestNew_Errors(t *testing.T) {
	_, err := instance.New(nil)
	assert.ErrorIs(t, err, instance.ErrEmpty)

	_, err = instance.New([]geom.Point{geom.New()})
	assert.ErrorIs(t, err, instance.ErrZeroDimension)

	_, err = instance.New([]geom.Point{geom.New(1, 2), geom.New(1)})
	assert.ErrorIs(t, err, instance.ErrDimensionMismatch)

	_, err = instance.New([]geom.Point{geom.New(1, math.NaN())})
	assert.ErrorIs(t, err, geom.ErrBadCoordinate)
}

func TestPoints_ReturnsCopy(t *testing.T) {
	inst := instance.MustNew(square()...)
	pts := inst.Points()
	pts[0] = geom.New(9, 9)
	assert.True(t, inst.Point(0).Equal(geom.New(0, 0)))
}

func TestParse_TabsAndCommas(t *testing.T) {
	src := "3\n2\n1.5\t2\n3, 4\n-1\t0.25\n\n"
	inst, err := instance.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 3, inst.Len())
	assert.True(t, inst.Point(0).Equal(geom.New(1.5, 2)))
	assert.True(t, inst.Point(1).Equal(geom.New(3, 4)))
	assert.True(t, inst.Point(2).Equal(geom.New(-1, 0.25)))
}

func TestParse_SyntaxErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		line int
	}{
		{"bad count", "x\n2\n", 1},
		{"zero count", "0\n2\n", 1},
		{"bad dim", "1\n-2\n", 2},
		{"bad coordinate", "2\n2\n1\t2\n1\tfoo\n", 4},
		{"wrong arity", "1\n3\n1\t2\n", 3},
		{"missing point", "2\n1\n1\n", 4},
		{"nan coordinate", "1\n1\nNaN\n", 3},
		{"empty input", "", 1},
		{"extra point", "1\n2\n1\t2\n3\t4\n", 4},
		{"content after blank line", "1\n2\n1\t2\n\n  \nx\n", 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := instance.Parse(strings.NewReader(tc.src))
			var se *instance.SyntaxError
			require.True(t, errors.As(err, &se), "got %v", err)
			assert.Equal(t, tc.line, se.Line)
		})
	}
}

func TestLoad_IOError(t *testing.T) {
	_, err := instance.Load(filepath.Join(t.TempDir(), "missing.txt"))
	var ioErr *instance.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestWriteLoad_RoundTrip(t *testing.T) {
	inst, err := instance.Random(12, 3, instance.WithSeed(7))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, instance.Write(&buf, inst))

	path := filepath.Join(t.TempDir(), "inst.txt")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	back, err := instance.Load(path)
	require.NoError(t, err)
	require.Equal(t, inst.Len(), back.Len())
	for i := 0; i < inst.Len(); i++ {
		assert.True(t, inst.Point(i).Equal(back.Point(i)), "point %d", i)
	}
}

func TestRandom(t *testing.T) {
	a, err := instance.Random(20, 2, instance.WithSeed(42), instance.WithRange(-5, 5))
	require.NoError(t, err)
	b, err := instance.Random(20, 2, instance.WithSeed(42), instance.WithRange(-5, 5))
	require.NoError(t, err)

	for i := 0; i < a.Len(); i++ {
		assert.True(t, a.Point(i).Equal(b.Point(i)), "same seed must give same points")
		for j := 0; j < a.Dim(); j++ {
			v := a.Point(i).At(j)
			assert.True(t, v >= -5 && v <= 5)
		}
		for j := i + 1; j < a.Len(); j++ {
			assert.False(t, a.Point(i).Equal(a.Point(j)), "points must be distinct")
		}
	}

	_, err = instance.Random(0, 2)
	assert.ErrorIs(t, err, instance.ErrEmpty)
	_, err = instance.Random(3, 0)
	assert.ErrorIs(t, err, instance.ErrZeroDimension)
	_, err = instance.Random(3, 1, instance.WithRange(1, 1))
	assert.ErrorIs(t, err, instance.ErrBadRange)
	_, err = instance.Random(5, 1, instance.WithRange(0, 1), instance.WithPrecision(0))
	assert.ErrorIs(t, err, instance.ErrBadRange)
}
