package kernels

import (
	"fmt"
	"math"
)

// ConstantKernel scales covariance by a constant value:
//
//	k(x, y) = constant_value
//
// Multiplied with another kernel it acts as the signal variance; summed it
// shifts the mean covariance level.
type ConstantKernel struct {
	// Value is the constant covariance (the signal variance when used as a
	// multiplicative factor).
	Value float64

	// ValueBounds is the log-space optimization range for Value.
	ValueBounds Bound
}

// NewConstantKernel creates a constant kernel with default bounds.
func NewConstantKernel(value float64) *ConstantKernel {
	return &ConstantKernel{
		Value:       value,
		ValueBounds: DefaultBound,
	}
}

// Eval returns the constant value for any pair of points.
func (k *ConstantKernel) Eval(x, y []float64) float64 {
	return k.Value
}

// SelfEval returns the constant value.
func (k *ConstantKernel) SelfEval(x []float64) float64 {
	return k.Value
}

// Theta returns [log(constant_value)].
func (k *ConstantKernel) Theta() []float64 {
	return []float64{math.Log(k.Value)}
}

// SetTheta sets the constant value from its log value.
func (k *ConstantKernel) SetTheta(theta []float64) error {
	if err := checkThetaLen("ConstantKernel.SetTheta", 1, len(theta)); err != nil {
		return err
	}
	k.Value = math.Exp(theta[0])
	return nil
}

// Bounds returns the log-space bounds for the constant value.
func (k *ConstantKernel) Bounds() []Bound {
	return []Bound{k.ValueBounds}
}

// Clone returns a deep copy of the kernel.
func (k *ConstantKernel) Clone() Kernel {
	c := *k
	return &c
}

func (k *ConstantKernel) String() string {
	return fmt.Sprintf("%.3g**2", math.Sqrt(k.Value))
}

// WhiteKernel models independent observation noise. It contributes its
// noise level to the diagonal of a self gram matrix only: cross
// covariances are zero even between coincident points, because white
// noise is independent between any two draws.
//
// Added to a signal kernel it lets the noise level be learned from data
// instead of being fixed through the regressor's alpha parameter.
type WhiteKernel struct {
	// NoiseLevel is the noise variance on the diagonal.
	NoiseLevel float64

	// NoiseLevelBounds is the log-space optimization range for NoiseLevel.
	NoiseLevelBounds Bound
}

// NewWhiteKernel creates a white noise kernel with default bounds.
func NewWhiteKernel(noiseLevel float64) *WhiteKernel {
	return &WhiteKernel{
		NoiseLevel:       noiseLevel,
		NoiseLevelBounds: DefaultBound,
	}
}

// Eval returns 0 for any pair of points, including duplicate input
// locations. The noise term appears only through SelfEval.
func (k *WhiteKernel) Eval(x, y []float64) float64 {
	return 0
}

// SelfEval returns the noise level.
func (k *WhiteKernel) SelfEval(x []float64) float64 {
	return k.NoiseLevel
}

// Theta returns [log(noise_level)].
func (k *WhiteKernel) Theta() []float64 {
	return []float64{math.Log(k.NoiseLevel)}
}

// SetTheta sets the noise level from its log value.
func (k *WhiteKernel) SetTheta(theta []float64) error {
	if err := checkThetaLen("WhiteKernel.SetTheta", 1, len(theta)); err != nil {
		return err
	}
	k.NoiseLevel = math.Exp(theta[0])
	return nil
}

// Bounds returns the log-space bounds for the noise level.
func (k *WhiteKernel) Bounds() []Bound {
	return []Bound{k.NoiseLevelBounds}
}

// Clone returns a deep copy of the kernel.
func (k *WhiteKernel) Clone() Kernel {
	c := *k
	return &c
}

func (k *WhiteKernel) String() string {
	return fmt.Sprintf("WhiteKernel(noise_level=%.3g)", k.NoiseLevel)
}
