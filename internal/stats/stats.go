// Package stats implements the order statistics used for outlier filtering
// and the descriptive summary printed after preprocessing.
package stats

import (
	"math"
	"sort"
)

// OutlierFactor scales the inter-quartile range into the acceptance fence.
const OutlierFactor = 1.5

// Mean computes the average of a slice.
func Mean(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range x {
		sum += v
	}
	return sum / float64(n)
}

// SampleStd computes the standard deviation with n-1 degrees of freedom.
// It returns NaN for fewer than two values.
func SampleStd(x []float64) float64 {
	n := len(x)
	if n < 2 {
		return math.NaN()
	}
	mean := Mean(x)
	ss := 0.0
	for _, v := range x {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1))
}

// percentileSorted returns the p-th percentile (0 <= p <= 100) of an
// ascending slice, interpolating linearly between the two closest ranks.
func percentileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[n-1]
	}
	rank := p / 100 * float64(n-1)
	lower := int(rank)
	upper := lower + 1
	weight := rank - float64(lower)
	if upper >= n {
		return sorted[lower]
	}
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Bounds is the inclusive acceptance range derived from a sample's quartiles.
type Bounds struct {
	Q1, Q3 float64
	IQR    float64
	Lower  float64
	Upper  float64
}

// QuartileBounds computes [Q1 - 1.5*IQR, Q3 + 1.5*IQR] for x. ok is false
// when x is empty.
func QuartileBounds(x []float64) (b Bounds, ok bool) {
	if len(x) == 0 {
		return Bounds{}, false
	}
	cp := make([]float64, len(x))
	copy(cp, x)
	sort.Float64s(cp)
	b.Q1 = percentileSorted(cp, 25)
	b.Q3 = percentileSorted(cp, 75)
	b.IQR = b.Q3 - b.Q1
	b.Lower = b.Q1 - OutlierFactor*b.IQR
	b.Upper = b.Q3 + OutlierFactor*b.IQR
	return b, true
}

// Contains reports whether v lies within the bounds, inclusive on both ends.
func (b Bounds) Contains(v float64) bool {
	return v >= b.Lower && v <= b.Upper
}
