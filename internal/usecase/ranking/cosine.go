package ranking

import "math"

// cosineSimilarity returns the cosine of the angle between two vectors in
// [-1, 1]. Mismatched or zero-magnitude vectors yield 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// round4 rounds to 4 decimal digits, the precision of all stored score fields.
func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}
