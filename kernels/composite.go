package kernels

import (
	"fmt"
)

// Sum is the pointwise sum of two kernels: k(x, y) = k1(x, y) + k2(x, y).
// Summing kernels models additive signal structure, e.g. a smooth trend
// plus a periodic season plus white noise.
type Sum struct {
	K1, K2 Kernel
}

// NewSum creates a sum kernel.
func NewSum(k1, k2 Kernel) *Sum {
	return &Sum{K1: k1, K2: k2}
}

// Eval computes k1(x, y) + k2(x, y).
func (k *Sum) Eval(x, y []float64) float64 {
	return k.K1.Eval(x, y) + k.K2.Eval(x, y)
}

// SelfEval computes k1(x, x) + k2(x, x), so a WhiteKernel operand
// contributes its noise level on self gram diagonals.
func (k *Sum) SelfEval(x []float64) float64 {
	return k.K1.SelfEval(x) + k.K2.SelfEval(x)
}

// Theta concatenates both operands' hyperparameter vectors in order.
func (k *Sum) Theta() []float64 {
	return append(k.K1.Theta(), k.K2.Theta()...)
}

// SetTheta splits the vector between the operands by their theta lengths.
func (k *Sum) SetTheta(theta []float64) error {
	n1 := len(k.K1.Theta())
	want := n1 + len(k.K2.Theta())
	if err := checkThetaLen("Sum.SetTheta", want, len(theta)); err != nil {
		return err
	}
	if err := k.K1.SetTheta(theta[:n1]); err != nil {
		return err
	}
	return k.K2.SetTheta(theta[n1:])
}

// Bounds concatenates both operands' bounds in order.
func (k *Sum) Bounds() []Bound {
	return append(k.K1.Bounds(), k.K2.Bounds()...)
}

// Clone returns a deep copy of the kernel tree.
func (k *Sum) Clone() Kernel {
	return &Sum{K1: k.K1.Clone(), K2: k.K2.Clone()}
}

func (k *Sum) String() string {
	return fmt.Sprintf("%s + %s", k.K1, k.K2)
}

// Product is the pointwise product of two kernels:
// k(x, y) = k1(x, y) * k2(x, y). The common use is scaling a correlation
// kernel by a ConstantKernel to learn the signal variance.
type Product struct {
	K1, K2 Kernel
}

// NewProduct creates a product kernel.
func NewProduct(k1, k2 Kernel) *Product {
	return &Product{K1: k1, K2: k2}
}

// NewScaled is shorthand for ConstantKernel(variance) * k.
func NewScaled(variance float64, k Kernel) *Product {
	return NewProduct(NewConstantKernel(variance), k)
}

// Eval computes k1(x, y) * k2(x, y).
func (k *Product) Eval(x, y []float64) float64 {
	return k.K1.Eval(x, y) * k.K2.Eval(x, y)
}

// SelfEval computes k1(x, x) * k2(x, x).
func (k *Product) SelfEval(x []float64) float64 {
	return k.K1.SelfEval(x) * k.K2.SelfEval(x)
}

// Theta concatenates both operands' hyperparameter vectors in order.
func (k *Product) Theta() []float64 {
	return append(k.K1.Theta(), k.K2.Theta()...)
}

// SetTheta splits the vector between the operands by their theta lengths.
func (k *Product) SetTheta(theta []float64) error {
	n1 := len(k.K1.Theta())
	want := n1 + len(k.K2.Theta())
	if err := checkThetaLen("Product.SetTheta", want, len(theta)); err != nil {
		return err
	}
	if err := k.K1.SetTheta(theta[:n1]); err != nil {
		return err
	}
	return k.K2.SetTheta(theta[n1:])
}

// Bounds concatenates both operands' bounds in order.
func (k *Product) Bounds() []Bound {
	return append(k.K1.Bounds(), k.K2.Bounds()...)
}

// Clone returns a deep copy of the kernel tree.
func (k *Product) Clone() Kernel {
	return &Product{K1: k.K1.Clone(), K2: k.K2.Clone()}
}

func (k *Product) String() string {
	return fmt.Sprintf("%s * %s", k.K1, k.K2)
}
