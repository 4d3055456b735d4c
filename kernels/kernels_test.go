package kernels

import (
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestRBFEval(t *testing.T) {
	tests := []struct {
		name        string
		lengthScale float64
		x, y        []float64
		want        float64
		tolerance   float64
	}{
		{
			name:        "identical points",
			lengthScale: 1.0,
			x:           []float64{1.5},
			y:           []float64{1.5},
			want:        1.0,
			tolerance:   1e-12,
		},
		{
			name:        "unit distance unit length scale",
			lengthScale: 1.0,
			x:           []float64{0},
			y:           []float64{1},
			want:        math.Exp(-0.5),
			tolerance:   1e-12,
		},
		{
			name:        "wider length scale decays slower",
			lengthScale: 2.0,
			x:           []float64{0},
			y:           []float64{1},
			want:        math.Exp(-1.0 / 8.0),
			tolerance:   1e-12,
		},
		{
			name:        "multidimensional input",
			lengthScale: 1.0,
			x:           []float64{0, 0},
			y:           []float64{3, 4},
			want:        math.Exp(-12.5),
			tolerance:   1e-12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := NewRBF(tt.lengthScale)
			got := k.Eval(tt.x, tt.y)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("Eval() = %v, want %v", got, tt.want)
			}

			// symmetry
			if rev := k.Eval(tt.y, tt.x); rev != got {
				t.Errorf("Eval not symmetric: %v vs %v", got, rev)
			}
		})
	}
}

func TestMaternEval(t *testing.T) {
	d := 0.7 // distance used in all cases
	tests := []struct {
		name string
		nu   float64
		want float64
	}{
		{
			name: "nu=0.5 is exponential",
			nu:   0.5,
			want: math.Exp(-d),
		},
		{
			name: "nu=1.5",
			nu:   1.5,
			want: (1 + math.Sqrt(3)*d) * math.Exp(-math.Sqrt(3)*d),
		},
		{
			name: "nu=2.5",
			nu:   2.5,
			want: (1 + math.Sqrt(5)*d + 5*d*d/3) * math.Exp(-math.Sqrt(5)*d),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := NewMatern(1.0, tt.nu)
			got := k.Eval([]float64{0}, []float64{d})
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Eval() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaternUnsupportedNuPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for unsupported nu")
		}
	}()
	NewMatern(1.0, 2.0)
}

func TestExpSineSquaredPeriodicity(t *testing.T) {
	k := NewExpSineSquared(1.0, 2.0)

	// Points one full period apart are perfectly correlated.
	got := k.Eval([]float64{0}, []float64{2.0})
	if math.Abs(got-1.0) > 1e-12 {
		t.Errorf("Eval at full period = %v, want 1.0", got)
	}

	// Points half a period apart are maximally decorrelated.
	got = k.Eval([]float64{0}, []float64{1.0})
	want := math.Exp(-2.0)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Eval at half period = %v, want %v", got, want)
	}
}

func TestWhiteKernelDiagonalOnly(t *testing.T) {
	k := NewWhiteKernel(0.25)

	if got := k.SelfEval([]float64{1.0}); got != 0.25 {
		t.Errorf("SelfEval = %v, want 0.25", got)
	}
	// Cross covariance is zero even for coincident points.
	if got := k.Eval([]float64{1.0}, []float64{1.0}); got != 0 {
		t.Errorf("Eval at coincident points = %v, want 0", got)
	}
	if got := k.Eval([]float64{1.0}, []float64{2.0}); got != 0 {
		t.Errorf("Eval at distinct points = %v, want 0", got)
	}
}

func TestWhiteKernelContributesOnlyToSelfGramDiagonal(t *testing.T) {
	k := NewSum(NewRBF(1.0), NewWhiteKernel(0.25))

	// Noise lands on the diagonal only, even with duplicate rows.
	X := mat.NewDense(3, 1, []float64{1.0, 1.0, 2.0})
	K := SymMatrix(k, X)

	if got := K.At(0, 0); math.Abs(got-1.25) > 1e-12 {
		t.Errorf("K[0,0] = %v, want 1.25", got)
	}
	if got := K.At(0, 1); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("K[0,1] between duplicate rows = %v, want 1.0", got)
	}

	// A test point equal to a training point gets no noise in the cross matrix.
	Xs := mat.NewDense(1, 1, []float64{1.0})
	cross, err := Matrix(k, Xs, X)
	if err != nil {
		t.Fatalf("Matrix() error = %v", err)
	}
	if got := cross.At(0, 0); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("cross K[0,0] at a training point = %v, want 1.0", got)
	}
}

func TestThetaRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		kernel Kernel
	}{
		{"RBF", NewRBF(1.5)},
		{"Matern", NewMatern(0.8, 1.5)},
		{"ExpSineSquared", NewExpSineSquared(1.2, 3.0)},
		{"ConstantKernel", NewConstantKernel(2.0)},
		{"WhiteKernel", NewWhiteKernel(0.01)},
		{"scaled RBF plus noise", NewSum(NewScaled(2.0, NewRBF(1.5)), NewWhiteKernel(0.1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theta := tt.kernel.Theta()
			if len(theta) != len(tt.kernel.Bounds()) {
				t.Fatalf("Theta length %d != Bounds length %d", len(theta), len(tt.kernel.Bounds()))
			}

			clone := tt.kernel.Clone()
			if err := clone.SetTheta(theta); err != nil {
				t.Fatalf("SetTheta() error = %v", err)
			}

			got := clone.Theta()
			for i := range theta {
				if math.Abs(got[i]-theta[i]) > 1e-12 {
					t.Errorf("theta[%d] = %v after round trip, want %v", i, got[i], theta[i])
				}
			}

			// Wrong length must be rejected.
			if err := clone.SetTheta(append(theta, 0)); err == nil {
				t.Error("SetTheta with wrong length should return error")
			}
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	k := NewRBF(1.0)
	clone := k.Clone()

	if err := clone.SetTheta([]float64{math.Log(5.0)}); err != nil {
		t.Fatalf("SetTheta() error = %v", err)
	}

	if k.LengthScale != 1.0 {
		t.Errorf("original length scale changed to %v after mutating clone", k.LengthScale)
	}
}

func TestSumAndProductEval(t *testing.T) {
	rbf := NewRBF(1.0)
	c := NewConstantKernel(2.0)
	x, y := []float64{0}, []float64{1}

	sum := NewSum(c, rbf)
	if got, want := sum.Eval(x, y), 2.0+rbf.Eval(x, y); math.Abs(got-want) > 1e-12 {
		t.Errorf("Sum.Eval() = %v, want %v", got, want)
	}

	prod := NewProduct(c, rbf)
	if got, want := prod.Eval(x, y), 2.0*rbf.Eval(x, y); math.Abs(got-want) > 1e-12 {
		t.Errorf("Product.Eval() = %v, want %v", got, want)
	}
}

func TestCompositeThetaSplit(t *testing.T) {
	k := NewSum(NewScaled(4.0, NewRBF(1.0)), NewWhiteKernel(0.01))

	theta := k.Theta()
	if len(theta) != 3 {
		t.Fatalf("Theta length = %d, want 3", len(theta))
	}

	// New values: variance 9, length scale 2, noise 0.1
	newTheta := []float64{math.Log(9.0), math.Log(2.0), math.Log(0.1)}
	if err := k.SetTheta(newTheta); err != nil {
		t.Fatalf("SetTheta() error = %v", err)
	}

	prod := k.K1.(*Product)
	if c := prod.K1.(*ConstantKernel); math.Abs(c.Value-9.0) > 1e-12 {
		t.Errorf("constant value = %v, want 9.0", c.Value)
	}
	if r := prod.K2.(*RBF); math.Abs(r.LengthScale-2.0) > 1e-12 {
		t.Errorf("length scale = %v, want 2.0", r.LengthScale)
	}
	if w := k.K2.(*WhiteKernel); math.Abs(w.NoiseLevel-0.1) > 1e-12 {
		t.Errorf("noise level = %v, want 0.1", w.NoiseLevel)
	}
}

func TestSymMatrix(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{0, 1, 3})
	k := NewRBF(1.0)

	K := SymMatrix(k, X)

	n, _ := K.Dims()
	if n != 3 {
		t.Fatalf("SymMatrix size = %d, want 3", n)
	}

	for i := 0; i < 3; i++ {
		if math.Abs(K.At(i, i)-1.0) > 1e-12 {
			t.Errorf("diagonal K[%d,%d] = %v, want 1.0", i, i, K.At(i, i))
		}
		for j := 0; j < 3; j++ {
			want := k.Eval([]float64{X.At(i, 0)}, []float64{X.At(j, 0)})
			if math.Abs(K.At(i, j)-want) > 1e-12 {
				t.Errorf("K[%d,%d] = %v, want %v", i, j, K.At(i, j), want)
			}
		}
	}
}

func TestMatrixCross(t *testing.T) {
	X := mat.NewDense(2, 1, []float64{0, 1})
	Y := mat.NewDense(3, 1, []float64{0, 2, 4})
	k := NewRBF(1.0)

	K, err := Matrix(k, X, Y)
	if err != nil {
		t.Fatalf("Matrix() error = %v", err)
	}

	r, c := K.Dims()
	if r != 2 || c != 3 {
		t.Fatalf("Matrix dims = %dx%d, want 2x3", r, c)
	}

	if math.Abs(K.At(0, 0)-1.0) > 1e-12 {
		t.Errorf("K[0,0] = %v, want 1.0", K.At(0, 0))
	}

	// Column-count mismatch is an error.
	Ybad := mat.NewDense(3, 2, nil)
	if _, err := Matrix(k, X, Ybad); err == nil {
		t.Error("Matrix with mismatched feature counts should return error")
	}
}

func TestDiagIncludesNoise(t *testing.T) {
	X := mat.NewDense(2, 1, []float64{0, 1})
	k := NewSum(NewRBF(1.0), NewWhiteKernel(0.5))

	diag := Diag(k, X)
	for i, v := range diag {
		if math.Abs(v-1.5) > 1e-12 {
			t.Errorf("diag[%d] = %v, want 1.5", i, v)
		}
	}
}

func TestKernelString(t *testing.T) {
	k := NewSum(NewScaled(4.0, NewRBF(1.5)), NewWhiteKernel(0.01))
	s := k.String()

	for _, substr := range []string{"2**2", "RBF(length_scale=1.5)", "WhiteKernel(noise_level=0.01)"} {
		if !strings.Contains(s, substr) {
			t.Errorf("String() = %q, expected to contain %q", s, substr)
		}
	}
}
