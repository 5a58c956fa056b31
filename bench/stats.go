package bench

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes repeated measurements.
// Std is the sample standard deviation (zero for fewer than two values).
type Stats struct {
	N    int
	Best float64
	Mean float64
	Std  float64
}

// CalcMaxStats summarizes values where larger is better (z).
func CalcMaxStats(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}
	s := calcStats(values)
	s.Best = floats.Max(values)

	return s
}

// CalcMinStats summarizes values where smaller is better (time).
func CalcMinStats(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}
	s := calcStats(values)
	s.Best = floats.Min(values)

	return s
}

func calcStats(values []float64) Stats {
	s := Stats{N: len(values)}
	if s.N < 2 {
		s.Mean = values[0]
		return s
	}
	s.Mean, s.Std = stat.MeanStdDev(values, nil)

	return s
}
