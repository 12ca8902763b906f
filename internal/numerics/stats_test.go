package numerics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.InDelta(t, 2.0, Mean([]float64{1, 2, 3}), 1e-12)
}

func TestPopStdDev(t *testing.T) {
	assert.Equal(t, 0.0, PopStdDev(nil))
	assert.Equal(t, 0.0, PopStdDev([]float64{5, 5, 5}))

	// Population std dev of {2,4,4,4,5,5,7,9} is exactly 2.
	data := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 2.0, PopStdDev(data), 1e-12)
}

func TestPercentChange(t *testing.T) {
	assert.InDelta(t, 10.0, PercentChange(110, 100), 1e-12)
	assert.InDelta(t, -50.0, PercentChange(1, 2), 1e-12)
}
