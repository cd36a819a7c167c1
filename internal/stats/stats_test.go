package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentile(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	tests := []struct {
		p    float64
		want float64
	}{
		{0, 1},
		{25, 1.75},
		{50, 2.5},
		{75, 3.25},
		{100, 4},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, percentileSorted(x, tt.p), 1e-12, "p=%v", tt.p)
	}
	assert.Equal(t, 7.0, percentileSorted([]float64{7}, 25))
}

func TestQuartileBounds(t *testing.T) {
	b, ok := QuartileBounds([]float64{35, 40, 200, 38, 36, 39})
	require.True(t, ok)
	assert.InDelta(t, 36.5, b.Q1, 1e-12)
	assert.InDelta(t, 39.75, b.Q3, 1e-12)
	assert.InDelta(t, 3.25, b.IQR, 1e-12)
	assert.InDelta(t, 31.625, b.Lower, 1e-12)
	assert.InDelta(t, 44.625, b.Upper, 1e-12)

	assert.True(t, b.Contains(b.Lower), "bounds are inclusive")
	assert.True(t, b.Contains(b.Upper), "bounds are inclusive")
	assert.False(t, b.Contains(200))

	_, ok = QuartileBounds(nil)
	assert.False(t, ok)

	in := []float64{200, 35, 40}
	_, ok = QuartileBounds(in)
	require.True(t, ok)
	assert.Equal(t, []float64{200, 35, 40}, in, "input must not be reordered")
}

func TestMeanStd(t *testing.T) {
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.Equal(t, 5.0, Mean(x))
	assert.InDelta(t, math.Sqrt(32.0/7), SampleStd(x), 1e-12)
	assert.True(t, math.IsNaN(SampleStd([]float64{1})))
}
