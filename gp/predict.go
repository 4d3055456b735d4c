package gp

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"

	"github.com/YuminosukeSato/scigp/kernels"
	"github.com/YuminosukeSato/scigp/pkg/errors"
)

// Predict は入力データに対する事後平均を予測する
//
// パラメータ:
//   - X: 予測対象の入力 (m×d の行列)
//
// 戻り値:
//   - mat.Matrix: 予測平均 (m×1 の行列)
func (g *GaussianProcessRegressor) Predict(X mat.Matrix) (result mat.Matrix, err error) {
	defer errors.Recover(&err, "GaussianProcessRegressor.Predict")

	mean, err := g.posteriorMean(X, "Predict")
	if err != nil {
		return nil, err
	}

	m := mean.Len()
	out := mat.NewDense(m, 1, nil)
	for i := 0; i < m; i++ {
		out.Set(i, 0, mean.AtVec(i))
	}
	return out, nil
}

// PredictWithStd は事後平均と各点の事後標準偏差を予測する
//
// 標準偏差は潜在関数のもので、観測ノイズ（alpha）は含まない。
// ノイズ込みの予測区間が必要な場合はカーネルにWhiteKernelを加える。
func (g *GaussianProcessRegressor) PredictWithStd(X mat.Matrix) (mean, std *mat.VecDense, err error) {
	defer errors.Recover(&err, "GaussianProcessRegressor.PredictWithStd")

	if err := g.checkPredictInput(X, "PredictWithStd"); err != nil {
		return nil, nil, err
	}

	kStar, err := kernels.Matrix(g.fitted, X, g.xTrain)
	if err != nil {
		return nil, nil, err
	}
	m, _ := kStar.Dims()

	mean = mat.NewVecDense(m, nil)
	mean.MulVec(kStar, g.alphaVec)

	// V = K^-1 k(X_train, X_star)
	n := g.yTrain.Len()
	V := mat.NewDense(n, m, nil)
	if err := g.chol.SolveTo(V, kStar.T()); err != nil {
		return nil, nil, errors.Wrap(err, "scigp: solving K v = k_star")
	}

	// var_i = k(x_i, x_i) - k_star_i^T K^-1 k_star_i
	priorVar := kernels.Diag(g.fitted, X)
	variance := make([]float64, m)
	negatives := 0
	smallest := 0.0
	for i := 0; i < m; i++ {
		v := priorVar[i] - mat.Dot(kStar.RowView(i), V.ColView(i))
		if v < 0 {
			negatives++
			if v < smallest {
				smallest = v
			}
			v = 0
		}
		variance[i] = v
	}
	if negatives > 0 {
		// 数値誤差による負の分散は0にクリップする
		errors.Warn(errors.NewNegativeVarianceWarning(
			"GaussianProcessRegressor.PredictWithStd", negatives, smallest))
	}

	std = mat.NewVecDense(m, nil)
	for i := 0; i < m; i++ {
		std.SetVec(i, math.Sqrt(variance[i]))
	}

	// 元のスケールに戻す
	if g.scaler != nil {
		for i := 0; i < m; i++ {
			mean.SetVec(i, mean.AtVec(i)*g.scaler.Scale+g.scaler.Mean)
		}
		std, err = g.scaler.InverseTransformStd(std)
		if err != nil {
			return nil, nil, err
		}
	}
	return mean, std, nil
}

// PredictCov は事後平均と事後共分散行列を予測する
//
// 戻り値:
//   - mean: 予測平均 (長さmのベクトル)
//   - cov: 事後共分散 (m×m の対称行列)
func (g *GaussianProcessRegressor) PredictCov(X mat.Matrix) (mean *mat.VecDense, cov *mat.SymDense, err error) {
	defer errors.Recover(&err, "GaussianProcessRegressor.PredictCov")

	mean, err = g.posteriorMean(X, "PredictCov")
	if err != nil {
		return nil, nil, err
	}

	kStar, err := kernels.Matrix(g.fitted, X, g.xTrain)
	if err != nil {
		return nil, nil, err
	}
	m, _ := kStar.Dims()
	n := g.yTrain.Len()

	V := mat.NewDense(n, m, nil)
	if err := g.chol.SolveTo(V, kStar.T()); err != nil {
		return nil, nil, errors.Wrap(err, "scigp: solving K v = k_star")
	}

	// cov = k(X_star, X_star) - k_star K^-1 k_star^T
	prior := kernels.SymMatrix(g.fitted, X)
	var reduction mat.Dense
	reduction.Mul(kStar, V)

	scale2 := 1.0
	if g.scaler != nil {
		scale2 = g.scaler.Scale * g.scaler.Scale
	}

	cov = mat.NewSymDense(m, nil)
	for i := 0; i < m; i++ {
		for j := i; j < m; j++ {
			// 丸め誤差で非対称になった削減項は平均して対称化する
			red := 0.5 * (reduction.At(i, j) + reduction.At(j, i))
			cov.SetSym(i, j, (prior.At(i, j)-red)*scale2)
		}
	}
	return mean, cov, nil
}

// SampleY は事後分布から関数のサンプルを生成する
//
// パラメータ:
//   - X: サンプルを評価する入力 (m×d の行列)
//   - nSamples: サンプル数
//
// 戻り値:
//   - *mat.Dense: サンプル (m×nSamples の行列、各列が1つのサンプルパス)
func (g *GaussianProcessRegressor) SampleY(X mat.Matrix, nSamples int) (samples *mat.Dense, err error) {
	defer errors.Recover(&err, "GaussianProcessRegressor.SampleY")

	if nSamples <= 0 {
		return nil, errors.NewValidationError("nSamples", "must be positive", nSamples)
	}

	mean, cov, err := g.PredictCov(X)
	if err != nil {
		return nil, err
	}
	m := mean.Len()

	mu := make([]float64, m)
	for i := 0; i < m; i++ {
		mu[i] = mean.AtVec(i)
	}

	src := rand.NewPCG(uint64(g.randomState), uint64(g.randomState)+1)

	// 事後共分散は半正定値まで退化し得るため、分解が通るまでジッターを増やす
	var dist *distmv.Normal
	for _, jitter := range []float64{0, 1e-12, 1e-10, 1e-8, 1e-6} {
		work := mat.NewSymDense(m, nil)
		work.CopySym(cov)
		for i := 0; i < m; i++ {
			work.SetSym(i, i, work.At(i, i)+jitter)
		}
		if d, ok := distmv.NewNormal(mu, work, src); ok {
			dist = d
			break
		}
	}
	if dist == nil {
		return nil, errors.NewModelError("GaussianProcessRegressor.SampleY",
			"posterior covariance is not positive definite", errors.ErrNotPositiveDefinite)
	}

	samples = mat.NewDense(m, nSamples, nil)
	buf := make([]float64, m)
	for j := 0; j < nSamples; j++ {
		dist.Rand(buf)
		for i := 0; i < m; i++ {
			samples.Set(i, j, buf[i])
		}
	}
	return samples, nil
}

// posteriorMean は事後平均を元のスケールで計算する
func (g *GaussianProcessRegressor) posteriorMean(X mat.Matrix, method string) (*mat.VecDense, error) {
	if err := g.checkPredictInput(X, method); err != nil {
		return nil, err
	}

	kStar, err := kernels.Matrix(g.fitted, X, g.xTrain)
	if err != nil {
		return nil, err
	}
	m, _ := kStar.Dims()

	mean := mat.NewVecDense(m, nil)
	mean.MulVec(kStar, g.alphaVec)

	if g.scaler != nil {
		for i := 0; i < m; i++ {
			mean.SetVec(i, mean.AtVec(i)*g.scaler.Scale+g.scaler.Mean)
		}
	}
	return mean, nil
}

// checkPredictInput は推論系メソッド共通の入力検証を行う
func (g *GaussianProcessRegressor) checkPredictInput(X mat.Matrix, method string) error {
	if !g.IsFitted() {
		return errors.NewNotFittedError("GaussianProcessRegressor", method)
	}
	_, c := X.Dims()
	if c != g.NFeaturesIn() {
		return errors.NewDimensionError("GaussianProcessRegressor."+method, g.NFeaturesIn(), c, 1)
	}
	return nil
}
