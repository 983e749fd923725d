package tensor

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds the moments and range of a tensor's values.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Describe summarizes every element of t. StdDev is the unbiased sample
// standard deviation. An empty tensor yields a zero Summary.
func (t *Tensor) Describe() Summary {
	if len(t.data) == 0 {
		return Summary{}
	}
	mean, std := stat.MeanStdDev(t.data, nil)
	return Summary{
		Count:  len(t.data),
		Mean:   mean,
		StdDev: std,
		Min:    floats.Min(t.data),
		Max:    floats.Max(t.data),
	}
}

// Merge combines the summaries of two disjoint sets of values as if they had
// been described together.
func (s Summary) Merge(o Summary) Summary {
	if s.Count == 0 {
		return o
	}
	if o.Count == 0 {
		return s
	}
	n := s.Count + o.Count
	delta := o.Mean - s.Mean
	m2 := s.sumSquares() + o.sumSquares() + delta*delta*float64(s.Count)*float64(o.Count)/float64(n)
	return Summary{
		Count:  n,
		Mean:   s.Mean + delta*float64(o.Count)/float64(n),
		StdDev: math.Sqrt(m2 / float64(n-1)),
		Min:    math.Min(s.Min, o.Min),
		Max:    math.Max(s.Max, o.Max),
	}
}

// sumSquares recovers the sum of squared deviations from the mean.
func (s Summary) sumSquares() float64 {
	if s.Count < 2 {
		return 0
	}
	return s.StdDev * s.StdDev * float64(s.Count-1)
}
