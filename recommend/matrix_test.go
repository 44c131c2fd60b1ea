package recommend

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardize_ZeroMeanUnitVariance(t *testing.T) {
	vectors := [][]float64{
		{1, 10},
		{2, 20},
		{3, 30},
	}
	standardize(vectors)

	for d := 0; d < 2; d++ {
		var mean float64
		for _, v := range vectors {
			mean += v[d]
		}
		mean /= 3
		assert.InDelta(t, 0, mean, 1e-9)

		var variance float64
		for _, v := range vectors {
			variance += v[d] * v[d]
		}
		variance /= 3
		assert.InDelta(t, 1, variance, 1e-9)
	}
}

func TestStandardize_ConstantColumn(t *testing.T) {
	vectors := [][]float64{
		{5, 1},
		{5, 2},
	}
	standardize(vectors)

	// Zero-variance column is centered but not scaled.
	assert.Equal(t, 0.0, vectors[0][0])
	assert.Equal(t, 0.0, vectors[1][0])
	assert.False(t, math.IsNaN(vectors[0][1]))
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1, cosine([]float64{1, 2, 3}, []float64{2, 4, 6}), 1e-9)
	assert.InDelta(t, 0, cosine([]float64{1, 0}, []float64{0, 1}), 1e-9)
	assert.InDelta(t, -1, cosine([]float64{1, 1}, []float64{-1, -1}), 1e-9)
	assert.Equal(t, 0.0, cosine([]float64{0, 0}, []float64{1, 1}))
}

func TestSimilarityMatrix_SymmetricWithUnitDiagonal(t *testing.T) {
	vectors := [][]float64{
		{1, 0, 2},
		{0, 1, 1},
		{2, 2, 0},
	}
	m := similarityMatrix(vectors)

	for i := range m {
		assert.Equal(t, 1.0, m[i][i])
		for j := range m {
			assert.InDelta(t, m[j][i], m[i][j], 1e-12)
		}
	}
}
