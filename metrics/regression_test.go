package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// sinePair returns a noise-free sine and a slightly biased reconstruction
// of it, the typical shape of posterior-mean residuals.
func sinePair(n int, bias float64) (*mat.VecDense, *mat.VecDense) {
	yTrue := mat.NewVecDense(n, nil)
	yPred := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1) * 2 * math.Pi
		yTrue.SetVec(i, math.Sin(t))
		yPred.SetVec(i, math.Sin(t)+bias)
	}
	return yTrue, yPred
}

func TestMSE(t *testing.T) {
	tests := []struct {
		name      string
		yTrue     *mat.VecDense
		yPred     *mat.VecDense
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:      "perfect reconstruction",
			yTrue:     mat.NewVecDense(5, []float64{0.0, 0.7, 1.0, 0.7, 0.0}),
			yPred:     mat.NewVecDense(5, []float64{0.0, 0.7, 1.0, 0.7, 0.0}),
			want:      0.0,
			tolerance: 1e-10,
		},
		{
			name:      "constant residual of 0.5",
			yTrue:     mat.NewVecDense(4, []float64{0.0, 1.0, 0.0, -1.0}),
			yPred:     mat.NewVecDense(4, []float64{0.5, 1.5, 0.5, -0.5}),
			want:      0.25,
			tolerance: 1e-10,
		},
		{
			name:      "mixed residuals",
			yTrue:     mat.NewVecDense(3, []float64{1.0, 2.0, 3.0}),
			yPred:     mat.NewVecDense(3, []float64{3.0, 0.0, 6.0}),
			want:      17.0 / 3.0, // (4 + 4 + 9) / 3
			tolerance: 1e-10,
		},
		{
			name:    "dimension mismatch",
			yTrue:   mat.NewVecDense(3, []float64{1.0, 2.0, 3.0}),
			yPred:   mat.NewVecDense(2, []float64{1.0, 2.0}),
			wantErr: true,
		},
		{
			name:    "empty vectors",
			yTrue:   &mat.VecDense{},
			yPred:   &mat.VecDense{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MSE(tt.yTrue, tt.yPred)
			if (err != nil) != tt.wantErr {
				t.Errorf("MSE() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("MSE() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMSEMatrix(t *testing.T) {
	yTrue := mat.NewDense(4, 1, []float64{0.0, 1.0, 0.0, -1.0})
	yPred := mat.NewDense(4, 1, []float64{0.5, 1.5, 0.5, -0.5})

	got, err := MSEMatrix(yTrue, yPred)
	if err != nil {
		t.Fatalf("MSEMatrix() error = %v", err)
	}
	if math.Abs(got-0.25) > 1e-10 {
		t.Errorf("MSEMatrix() = %v, want 0.25", got)
	}

	// 複数列は拒否される
	wide := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	if _, err := MSEMatrix(wide, wide); err == nil {
		t.Error("MSEMatrix() should reject multi-column input")
	}
}

func TestRMSE(t *testing.T) {
	yTrue := mat.NewVecDense(4, []float64{0.0, 0.0, 0.0, 0.0})
	yPred := mat.NewVecDense(4, []float64{1.0, -1.0, 1.0, -1.0})

	got, err := RMSE(yTrue, yPred)
	if err != nil {
		t.Fatalf("RMSE() error = %v", err)
	}
	if math.Abs(got-1.0) > 1e-10 {
		t.Errorf("RMSE() = %v, want 1.0", got)
	}

	// 一定のバイアスに対するRMSEはそのバイアスに一致する
	sine, biased := sinePair(50, 0.1)
	got, err = RMSE(sine, biased)
	if err != nil {
		t.Fatalf("RMSE() error = %v", err)
	}
	if math.Abs(got-0.1) > 1e-10 {
		t.Errorf("RMSE() with bias 0.1 = %v", got)
	}

	if _, err := RMSE(mat.NewVecDense(3, nil), mat.NewVecDense(2, nil)); err == nil {
		t.Error("RMSE() should reject mismatched lengths")
	}
}

func TestMAE(t *testing.T) {
	yTrue := mat.NewVecDense(4, []float64{1.0, 2.0, 3.0, 4.0})
	yPred := mat.NewVecDense(4, []float64{2.0, 1.0, 4.0, 3.0})

	got, err := MAE(yTrue, yPred)
	if err != nil {
		t.Fatalf("MAE() error = %v", err)
	}
	if math.Abs(got-1.0) > 1e-10 {
		t.Errorf("MAE() = %v, want 1.0", got)
	}

	sine, biased := sinePair(50, -0.2)
	got, err = MAE(sine, biased)
	if err != nil {
		t.Fatalf("MAE() error = %v", err)
	}
	if math.Abs(got-0.2) > 1e-10 {
		t.Errorf("MAE() with bias -0.2 = %v", got)
	}
}

func TestR2Score(t *testing.T) {
	tests := []struct {
		name      string
		yTrue     *mat.VecDense
		yPred     *mat.VecDense
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:      "perfect reconstruction",
			yTrue:     mat.NewVecDense(5, []float64{1.0, 2.0, 3.0, 4.0, 5.0}),
			yPred:     mat.NewVecDense(5, []float64{1.0, 2.0, 3.0, 4.0, 5.0}),
			want:      1.0,
			tolerance: 1e-10,
		},
		{
			name:    "no variance in yTrue",
			yTrue:   mat.NewVecDense(5, []float64{3.0, 3.0, 3.0, 3.0, 3.0}),
			yPred:   mat.NewVecDense(5, []float64{2.0, 3.0, 4.0, 3.0, 3.0}),
			wantErr: true, // 全分散が0の場合はエラー
		},
		{
			name:      "worse than mean baseline",
			yTrue:     mat.NewVecDense(4, []float64{1.0, 2.0, 3.0, 4.0}),
			yPred:     mat.NewVecDense(4, []float64{4.0, 3.0, 2.0, 1.0}),
			want:      -3.0,
			tolerance: 0.01,
		},
		{
			name:    "dimension mismatch",
			yTrue:   mat.NewVecDense(3, []float64{1.0, 2.0, 3.0}),
			yPred:   mat.NewVecDense(2, []float64{1.0, 2.0}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := R2Score(tt.yTrue, tt.yPred)
			if (err != nil) != tt.wantErr {
				t.Errorf("R2Score() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("R2Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func BenchmarkMSE(b *testing.B) {
	yTrue, yPred := sinePair(10000, 0.05)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = MSE(yTrue, yPred)
	}
}
