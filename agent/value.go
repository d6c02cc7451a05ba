package agent

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Value scores a feature vector with the logistic value model: the sigmoid of
// the weight-feature dot product, interpreted as an estimated probability of
// winning from the encoded state. Panics on a length mismatch, since a
// mis-sized weight vector would silently corrupt every decision.
func Value(weights, features *mat.VecDense) float64 {
	if weights.Len() != features.Len() {
		panic("weight and feature vectors must have the same length")
	}
	return sigmoid(mat.Dot(weights, features))
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}
