package kernels

import (
	"fmt"
	"math"
)

// ExpSineSquared is the periodic kernel:
//
//	k(x, y) = exp(-2 * sin²(π * ||x - y|| / p) / l²)
//
// It models signals that repeat exactly with period p, such as the seasonal
// component of a time series.
type ExpSineSquared struct {
	// LengthScale controls how smoothly correlation varies within a period.
	LengthScale float64

	// Periodicity is the period p of the repeating structure.
	Periodicity float64

	// LengthScaleBounds and PeriodicityBounds are the log-space
	// optimization ranges.
	LengthScaleBounds Bound
	PeriodicityBounds Bound
}

// NewExpSineSquared creates a periodic kernel with default bounds.
func NewExpSineSquared(lengthScale, periodicity float64) *ExpSineSquared {
	return &ExpSineSquared{
		LengthScale:       lengthScale,
		Periodicity:       periodicity,
		LengthScaleBounds: DefaultBound,
		PeriodicityBounds: DefaultBound,
	}
}

// Eval computes the periodic covariance between two points.
func (k *ExpSineSquared) Eval(x, y []float64) float64 {
	d := euclideanDistance(x, y)
	s := math.Sin(math.Pi * d / k.Periodicity)
	return math.Exp(-2 * s * s / (k.LengthScale * k.LengthScale))
}

// SelfEval returns Eval(x, x), which is 1 for the periodic kernel.
func (k *ExpSineSquared) SelfEval(x []float64) float64 {
	return k.Eval(x, x)
}

// Theta returns [log(length_scale), log(periodicity)].
func (k *ExpSineSquared) Theta() []float64 {
	return []float64{math.Log(k.LengthScale), math.Log(k.Periodicity)}
}

// SetTheta sets the length scale and periodicity from their log values.
func (k *ExpSineSquared) SetTheta(theta []float64) error {
	if err := checkThetaLen("ExpSineSquared.SetTheta", 2, len(theta)); err != nil {
		return err
	}
	k.LengthScale = math.Exp(theta[0])
	k.Periodicity = math.Exp(theta[1])
	return nil
}

// Bounds returns the log-space bounds for both hyperparameters.
func (k *ExpSineSquared) Bounds() []Bound {
	return []Bound{k.LengthScaleBounds, k.PeriodicityBounds}
}

// Clone returns a deep copy of the kernel.
func (k *ExpSineSquared) Clone() Kernel {
	c := *k
	return &c
}

func (k *ExpSineSquared) String() string {
	return fmt.Sprintf("ExpSineSquared(length_scale=%.3g, periodicity=%.3g)", k.LengthScale, k.Periodicity)
}
