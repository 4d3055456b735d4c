// Package kernels provides covariance functions for Gaussian Process
// regression.
//
// Kernels measure similarity between input points and encode the smoothness
// assumptions of the GP prior. All kernels expose their free hyperparameters
// as a log-transformed vector (Theta), which is the search space for
// marginal-likelihood optimization: log-space keeps positive parameters
// positive and evens out their scales.
//
// Kernels compose: Sum and Product combine kernels the same way
// scikit-learn's kernel operators do, concatenating their hyperparameter
// vectors in order.
package kernels

import (
	"math"

	"github.com/YuminosukeSato/scigp/pkg/errors"
)

// Bound is an inclusive log-space interval for a single hyperparameter.
type Bound struct {
	Min float64
	Max float64
}

// DefaultBound covers [1e-5, 1e5] in the original parameter space, the
// conventional search range for length scales and variances.
var DefaultBound = Bound{Min: math.Log(1e-5), Max: math.Log(1e5)}

// Kernel is a covariance function k(x, y) with tunable hyperparameters.
type Kernel interface {
	// Eval computes the cross covariance between two input points.
	// Both points must have the same dimensionality. Noise kernels
	// return 0 here regardless of the points' values.
	Eval(x, y []float64) float64

	// SelfEval computes the covariance of a point with itself, the value
	// on the diagonal of a self gram matrix. For most kernels this equals
	// Eval(x, x); noise kernels contribute their noise level here and
	// nowhere else.
	SelfEval(x []float64) float64

	// Theta returns the log-transformed free hyperparameters.
	Theta() []float64

	// SetTheta replaces the free hyperparameters with the given
	// log-transformed values. The slice length must match Theta().
	SetTheta(theta []float64) error

	// Bounds returns the log-space search bounds, aligned with Theta().
	Bounds() []Bound

	// Clone returns a deep copy that can be mutated independently.
	Clone() Kernel

	// String renders the kernel with its current hyperparameters.
	String() string
}

// squaredDistance returns the squared Euclidean distance between x and y.
// Panics via index if the points have different lengths; callers validate
// dimensionality at the matrix level.
func squaredDistance(x, y []float64) float64 {
	var sum float64
	for i := range x {
		d := x[i] - y[i]
		sum += d * d
	}
	return sum
}

// euclideanDistance returns the Euclidean distance between x and y.
func euclideanDistance(x, y []float64) float64 {
	return math.Sqrt(squaredDistance(x, y))
}

// checkThetaLen validates a SetTheta argument against the expected length.
func checkThetaLen(op string, want, got int) error {
	if want != got {
		return errors.NewDimensionError(op, want, got, 0)
	}
	return nil
}
