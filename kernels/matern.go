package kernels

import (
	"fmt"
	"math"
)

// Matern is the Matérn covariance function with fixed smoothness nu.
// Only nu in {0.5, 1.5, 2.5} is supported; these are the values with cheap
// closed forms, and they cover the practically relevant smoothness range
// (nu=0.5 is the rough Ornstein-Uhlenbeck kernel, nu→∞ recovers RBF).
//
// Nu is treated as a fixed model choice, not a tunable hyperparameter,
// matching scikit-learn.
type Matern struct {
	// LengthScale is the kernel width l.
	LengthScale float64

	// Nu controls the smoothness of sample paths.
	Nu float64

	// LengthScaleBounds is the log-space optimization range for LengthScale.
	LengthScaleBounds Bound
}

// NewMatern creates a Matérn kernel. Unsupported nu values panic at
// construction: a misspelled nu is a programming error, not a data error.
func NewMatern(lengthScale, nu float64) *Matern {
	switch nu {
	case 0.5, 1.5, 2.5:
	default:
		panic(fmt.Sprintf("kernels: unsupported Matern nu %v (want 0.5, 1.5 or 2.5)", nu))
	}
	return &Matern{
		LengthScale:       lengthScale,
		Nu:                nu,
		LengthScaleBounds: DefaultBound,
	}
}

// Eval computes the Matérn covariance between two points.
func (k *Matern) Eval(x, y []float64) float64 {
	d := euclideanDistance(x, y) / k.LengthScale
	switch k.Nu {
	case 0.5:
		return math.Exp(-d)
	case 1.5:
		s := math.Sqrt(3) * d
		return (1 + s) * math.Exp(-s)
	default: // 2.5
		s := math.Sqrt(5) * d
		return (1 + s + s*s/3) * math.Exp(-s)
	}
}

// SelfEval returns Eval(x, x), which is 1 for the Matérn kernel.
func (k *Matern) SelfEval(x []float64) float64 {
	return k.Eval(x, x)
}

// Theta returns [log(length_scale)].
func (k *Matern) Theta() []float64 {
	return []float64{math.Log(k.LengthScale)}
}

// SetTheta sets the length scale from its log value.
func (k *Matern) SetTheta(theta []float64) error {
	if err := checkThetaLen("Matern.SetTheta", 1, len(theta)); err != nil {
		return err
	}
	k.LengthScale = math.Exp(theta[0])
	return nil
}

// Bounds returns the log-space bounds for the length scale.
func (k *Matern) Bounds() []Bound {
	return []Bound{k.LengthScaleBounds}
}

// Clone returns a deep copy of the kernel.
func (k *Matern) Clone() Kernel {
	c := *k
	return &c
}

func (k *Matern) String() string {
	return fmt.Sprintf("Matern(length_scale=%.3g, nu=%.1f)", k.LengthScale, k.Nu)
}
