package recommend

import "math"

// standardize centers every feature column to zero mean and scales it
// to unit variance, in place. The statistics are computed over the
// given vectors only, so callers control the scaling scope (one
// category group, or one food plus its comparison pool). Columns with
// zero variance are left centered.
func standardize(vectors [][]float64) {
	if len(vectors) == 0 {
		return
	}
	n := float64(len(vectors))
	dims := len(vectors[0])

	for d := 0; d < dims; d++ {
		var sum float64
		for _, v := range vectors {
			sum += v[d]
		}
		mean := sum / n

		var variance float64
		for _, v := range vectors {
			diff := v[d] - mean
			variance += diff * diff
		}
		std := math.Sqrt(variance / n)

		for _, v := range vectors {
			v[d] -= mean
			if std > 0 {
				v[d] /= std
			}
		}
	}
}

// cosine returns the cosine similarity of two equal-length vectors.
// A zero vector has similarity 0 with everything.
func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// similarityMatrix computes the full pairwise cosine matrix for a set
// of (already standardized) vectors.
func similarityMatrix(vectors [][]float64) [][]float64 {
	n := len(vectors)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		matrix[i][i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sim := cosine(vectors[i], vectors[j])
			matrix[i][j] = sim
			matrix[j][i] = sim
		}
	}
	return matrix
}
