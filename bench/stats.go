package bench

import "math"

// Stats summarizes a sample. Std is the sample standard deviation (n-1),
// 0 for fewer than two values.
type Stats struct {
	N    int
	Min  float64
	Mean float64
	Std  float64
}

// CalcStats computes Stats over values. An empty sample yields the zero Stats.
func CalcStats(values []float64) Stats {
	s := Stats{N: len(values)}
	if s.N == 0 {
		return s
	}

	lo := values[0]
	sum := 0.0
	for _, v := range values {
		if v < lo {
			lo = v
		}
		sum += v
	}
	mean := sum / float64(s.N)

	variance := 0.0
	if s.N >= 2 {
		for _, v := range values {
			d := v - mean
			variance += d * d
		}
		variance /= float64(s.N - 1)
	}

	s.Min = lo
	s.Mean = mean
	s.Std = math.Sqrt(variance)
	return s
}

// ratio returns a/b, or 0 when b is 0.
func ratio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
