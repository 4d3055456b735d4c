// Package gp implements Gaussian Process regression.
//
// A Gaussian Process defines a distribution over functions. Conditioning it
// on training observations yields a posterior whose mean interpolates the
// data and whose variance widens away from it, so every prediction comes
// with a calibrated uncertainty estimate. The covariance structure is set
// by a kernel from the kernels package, and kernel hyperparameters are
// tuned by maximizing the log marginal likelihood.
//
// The estimator follows the scikit-learn GaussianProcessRegressor API:
//
//	gpr := gp.NewGaussianProcessRegressor(
//	    gp.WithKernel(kernels.NewScaled(1.0, kernels.NewRBF(1.0))),
//	    gp.WithAlpha(1e-4),
//	    gp.WithNormalizeY(true),
//	)
//	if err := gpr.Fit(X, y); err != nil {
//	    ...
//	}
//	mean, std, err := gpr.PredictWithStd(Xs)
package gp

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/scigp/core/model"
	"github.com/YuminosukeSato/scigp/kernels"
	"github.com/YuminosukeSato/scigp/metrics"
	"github.com/YuminosukeSato/scigp/pkg/errors"
	"github.com/YuminosukeSato/scigp/preprocessing"
)

// GaussianProcessRegressor は正確な（密行列の）ガウス過程回帰モデル
type GaussianProcessRegressor struct {
	model.BaseEstimator

	// 設定パラメータ
	kernel      kernels.Kernel
	alpha       float64
	normalizeY  bool
	optimize    bool
	nRestarts   int
	randomState int64

	// 学習状態
	fitted   kernels.Kernel           // 最適化後のカーネル
	scaler   *preprocessing.TargetScaler
	xTrain   *mat.Dense
	yTrain   *mat.VecDense            // 正規化後のターゲット
	chol     *mat.Cholesky            // K + alpha*I のコレスキー分解
	alphaVec *mat.VecDense            // (K + alpha*I)^-1 y
	lml      float64
}

// コンパイル時のインターフェース適合チェック
var (
	_ model.ProbabilisticRegressor = (*GaussianProcessRegressor)(nil)
	_ model.ParameterGetter        = (*GaussianProcessRegressor)(nil)
)

// NewGaussianProcessRegressor は新しいガウス過程回帰モデルを作成する
//
// デフォルト設定:
//   - カーネル: ConstantKernel(1.0) * RBF(1.0)
//   - alpha: 1e-10（数値安定化のためのジッター）
//   - 対数周辺尤度の最大化によるハイパーパラメータ最適化: 有効
func NewGaussianProcessRegressor(opts ...Option) *GaussianProcessRegressor {
	g := &GaussianProcessRegressor{
		alpha:    1e-10,
		optimize: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Fit はモデルを訓練データで学習させる
//
// カーネル行列 K = k(X, X) + alpha*I をコレスキー分解し、
// 事後予測に必要な量 alpha_vec = K^-1 y を前計算する。
// 最適化が有効な場合、先に対数周辺尤度を最大化するハイパーパラメータを探索する。
//
// パラメータ:
//   - X: 訓練入力 (n×d の行列)
//   - y: 訓練ターゲット (n×1 の行列)
func (g *GaussianProcessRegressor) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "GaussianProcessRegressor.Fit")

	// 入力の検証
	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 || c == 0 {
		return errors.NewModelError("GaussianProcessRegressor.Fit", "empty data", errors.ErrEmptyData)
	}
	if ry != r {
		return errors.NewDimensionError("GaussianProcessRegressor.Fit", r, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("GaussianProcessRegressor.Fit", "y must be a column vector (n×1 matrix)")
	}
	if g.alpha < 0 {
		return errors.NewValidationError("alpha", "must be non-negative", g.alpha)
	}

	// 学習状態はローカルに構築し、分解が成功するまでレシーバを変更しない。
	// 途中で失敗しても前回の学習結果はそのまま有効に保たれる。
	xTrain := mat.DenseCopyOf(X)

	// ターゲットの正規化
	yWork := y
	var scaler *preprocessing.TargetScaler
	if g.normalizeY {
		scaler = preprocessing.NewTargetScaler()
		yWork, err = scaler.FitTransform(y)
		if err != nil {
			return err
		}
	}
	yTrain := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		yTrain.SetVec(i, yWork.At(i, 0))
	}

	prior := g.kernel
	if prior == nil {
		prior = kernels.NewScaled(1.0, kernels.NewRBF(1.0))
	}
	fitted := prior.Clone()

	if g.optimize && len(fitted.Theta()) > 0 {
		if err := g.optimizeHyperparameters(fitted, xTrain, yTrain); err != nil {
			return err
		}
	}

	// 最終的なハイパーパラメータで分解を確定する
	lml, chol, alphaVec, err := g.factorize(fitted, xTrain, yTrain)
	if err != nil {
		return err
	}

	g.xTrain = xTrain
	g.yTrain = yTrain
	g.scaler = scaler
	g.fitted = fitted
	g.lml = lml
	g.chol = chol
	g.alphaVec = alphaVec

	g.SetNFeaturesIn(c)
	g.SetFitted()
	return nil
}

// factorize はカーネル行列 K + alpha*I を分解し、対数周辺尤度を計算する
//
// log p(y|X, theta) = -1/2 y^T K^-1 y - 1/2 log|K| - n/2 log(2π)
func (g *GaussianProcessRegressor) factorize(k kernels.Kernel, X *mat.Dense, y *mat.VecDense) (float64, *mat.Cholesky, *mat.VecDense, error) {
	n := y.Len()

	K := kernels.SymMatrix(k, X)
	for i := 0; i < n; i++ {
		K.SetSym(i, i, K.At(i, i)+g.alpha)
	}

	chol := &mat.Cholesky{}
	if !chol.Factorize(K) {
		return 0, nil, nil, errors.NewModelError("GaussianProcessRegressor.Fit",
			"kernel matrix is not positive definite; try increasing alpha",
			errors.ErrNotPositiveDefinite)
	}

	alphaVec := mat.NewVecDense(n, nil)
	if err := chol.SolveVecTo(alphaVec, y); err != nil {
		return 0, nil, nil, errors.Wrap(err, "scigp: solving K alpha = y")
	}

	lml := -0.5*mat.Dot(y, alphaVec) - 0.5*chol.LogDet() - 0.5*float64(n)*math.Log(2*math.Pi)
	if err := errors.CheckScalar("log_marginal_likelihood", lml, 0); err != nil {
		return 0, nil, nil, err
	}
	return lml, chol, alphaVec, nil
}

// LogMarginalLikelihood は学習時のハイパーパラメータにおける対数周辺尤度を返す
func (g *GaussianProcessRegressor) LogMarginalLikelihood() (float64, error) {
	if !g.IsFitted() {
		return 0, errors.NewNotFittedError("GaussianProcessRegressor", "LogMarginalLikelihood")
	}
	return g.lml, nil
}

// LogMarginalLikelihoodTheta は指定した対数ハイパーパラメータでの
// 対数周辺尤度を学習データに対して評価する
func (g *GaussianProcessRegressor) LogMarginalLikelihoodTheta(theta []float64) (float64, error) {
	if !g.IsFitted() {
		return 0, errors.NewNotFittedError("GaussianProcessRegressor", "LogMarginalLikelihoodTheta")
	}

	trial := g.fitted.Clone()
	if err := trial.SetTheta(theta); err != nil {
		return 0, err
	}
	lml, _, _, err := g.factorize(trial, g.xTrain, g.yTrain)
	if err != nil {
		return 0, err
	}
	return lml, nil
}

// Score は決定係数R²を計算する
func (g *GaussianProcessRegressor) Score(X, y mat.Matrix) (float64, error) {
	r, c := y.Dims()
	if c != 1 {
		return 0, errors.NewValueError("GaussianProcessRegressor.Score", "y must be a column vector (n×1 matrix)")
	}

	predictions, err := g.Predict(X)
	if err != nil {
		return 0, err
	}

	yVec := mat.NewVecDense(r, nil)
	predVec := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		yVec.SetVec(i, y.At(i, 0))
		predVec.SetVec(i, predictions.At(i, 0))
	}
	return metrics.R2Score(yVec, predVec)
}

// Kernel は学習で最適化されたカーネルを返す。
// 未学習の場合は設定されたカーネル（nilの可能性あり）を返す。
func (g *GaussianProcessRegressor) Kernel() kernels.Kernel {
	if g.fitted != nil {
		return g.fitted
	}
	return g.kernel
}

// GetParams はモデルのハイパーパラメータを取得する
func (g *GaussianProcessRegressor) GetParams() map[string]interface{} {
	params := map[string]interface{}{
		"alpha":                g.alpha,
		"normalize_y":          g.normalizeY,
		"optimizer":            g.optimize,
		"n_restarts_optimizer": g.nRestarts,
		"random_state":         g.randomState,
	}
	if g.kernel != nil {
		params["kernel"] = g.kernel.String()
	}
	return params
}
