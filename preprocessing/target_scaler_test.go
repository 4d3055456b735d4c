package preprocessing

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestTargetScalerFitTransform(t *testing.T) {
	y := mat.NewDense(4, 1, []float64{2, 4, 6, 8})

	scaler := NewTargetScaler()
	scaled, err := scaler.FitTransform(y)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	if math.Abs(scaler.Mean-5.0) > 1e-12 {
		t.Errorf("Mean = %v, want 5.0", scaler.Mean)
	}
	// population std of {2,4,6,8} is sqrt(5)
	if math.Abs(scaler.Scale-math.Sqrt(5)) > 1e-12 {
		t.Errorf("Scale = %v, want sqrt(5)", scaler.Scale)
	}

	// Scaled values have mean 0 and population std 1.
	var sum, sumSq float64
	r, _ := scaled.Dims()
	for i := 0; i < r; i++ {
		v := scaled.At(i, 0)
		sum += v
		sumSq += v * v
	}
	if math.Abs(sum) > 1e-10 {
		t.Errorf("scaled mean = %v, want 0", sum/float64(r))
	}
	if math.Abs(sumSq/float64(r)-1.0) > 1e-10 {
		t.Errorf("scaled variance = %v, want 1", sumSq/float64(r))
	}
}

func TestTargetScalerInverseTransform(t *testing.T) {
	y := mat.NewDense(5, 1, []float64{1.5, -2, 0, 3.25, 7})

	scaler := NewTargetScaler()
	scaled, err := scaler.FitTransform(y)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	restored, err := scaler.InverseTransform(scaled)
	if err != nil {
		t.Fatalf("InverseTransform() error = %v", err)
	}

	for i := 0; i < 5; i++ {
		if math.Abs(restored.At(i, 0)-y.At(i, 0)) > 1e-10 {
			t.Errorf("restored[%d] = %v, want %v", i, restored.At(i, 0), y.At(i, 0))
		}
	}
}

func TestTargetScalerInverseTransformStd(t *testing.T) {
	y := mat.NewDense(4, 1, []float64{0, 2, 4, 6})

	scaler := NewTargetScaler()
	if err := scaler.Fit(y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	std := mat.NewVecDense(2, []float64{1.0, 0.5})
	out, err := scaler.InverseTransformStd(std)
	if err != nil {
		t.Fatalf("InverseTransformStd() error = %v", err)
	}

	for i := 0; i < 2; i++ {
		want := std.AtVec(i) * scaler.Scale
		if math.Abs(out.AtVec(i)-want) > 1e-12 {
			t.Errorf("out[%d] = %v, want %v", i, out.AtVec(i), want)
		}
	}
}

func TestTargetScalerConstantTarget(t *testing.T) {
	y := mat.NewDense(3, 1, []float64{4, 4, 4})

	scaler := NewTargetScaler()
	if err := scaler.Fit(y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	// Zero spread falls back to unit scale to avoid division by zero.
	if scaler.Scale != 1.0 {
		t.Errorf("Scale = %v, want 1.0 for constant target", scaler.Scale)
	}
}

func TestTargetScalerErrors(t *testing.T) {
	scaler := NewTargetScaler()

	if _, err := scaler.Transform(mat.NewDense(2, 1, []float64{1, 2})); err == nil {
		t.Error("Transform before Fit should return error")
	}

	if err := scaler.Fit(mat.NewDense(2, 2, nil)); err == nil {
		t.Error("Fit with multi-column y should return error")
	}
}
