package kernels

import (
	"fmt"
	"math"
)

// RBF is the Radial Basis Function (squared exponential) kernel:
//
//	k(x, y) = exp(-||x - y||² / (2 * l²))
//
// The length scale l controls how quickly correlation decays with distance.
// It is the workhorse kernel for smooth signal interpolation.
type RBF struct {
	// LengthScale is the kernel width l. Larger values produce smoother fits.
	LengthScale float64

	// LengthScaleBounds is the log-space optimization range for LengthScale.
	LengthScaleBounds Bound
}

// NewRBF creates an RBF kernel with the given length scale and default bounds.
func NewRBF(lengthScale float64) *RBF {
	return &RBF{
		LengthScale:       lengthScale,
		LengthScaleBounds: DefaultBound,
	}
}

// Eval computes the RBF covariance between two points.
func (k *RBF) Eval(x, y []float64) float64 {
	return math.Exp(-squaredDistance(x, y) / (2 * k.LengthScale * k.LengthScale))
}

// SelfEval returns Eval(x, x), which is 1 for the RBF kernel.
func (k *RBF) SelfEval(x []float64) float64 {
	return k.Eval(x, x)
}

// Theta returns [log(length_scale)].
func (k *RBF) Theta() []float64 {
	return []float64{math.Log(k.LengthScale)}
}

// SetTheta sets the length scale from its log value.
func (k *RBF) SetTheta(theta []float64) error {
	if err := checkThetaLen("RBF.SetTheta", 1, len(theta)); err != nil {
		return err
	}
	k.LengthScale = math.Exp(theta[0])
	return nil
}

// Bounds returns the log-space bounds for the length scale.
func (k *RBF) Bounds() []Bound {
	return []Bound{k.LengthScaleBounds}
}

// Clone returns a deep copy of the kernel.
func (k *RBF) Clone() Kernel {
	c := *k
	return &c
}

func (k *RBF) String() string {
	return fmt.Sprintf("RBF(length_scale=%.3g)", k.LengthScale)
}
