package gp

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"

	"github.com/YuminosukeSato/scigp/kernels"
	"github.com/YuminosukeSato/scigp/pkg/errors"
)

// optimizeHyperparameters は対数周辺尤度を最大化するハイパーパラメータを探索し、
// fittedのハイパーパラメータを最良の結果で更新する
//
// L-BFGSで負の対数周辺尤度を最小化する。勾配は数値微分で評価される。
// 初期値からの1回に加え、nRestarts回だけ境界内の一様乱数を初期値として
// 再実行し、最良の結果を採用する。
func (g *GaussianProcessRegressor) optimizeHyperparameters(fitted kernels.Kernel, X *mat.Dense, y *mat.VecDense) error {
	bounds := fitted.Bounds()
	trial := fitted.Clone()

	// L-BFGSは制約なし最適化なので、評価前に境界へクリップする。
	// コレスキー分解が失敗する点は+Infを返して棄却する。
	objective := func(theta []float64) float64 {
		if err := trial.SetTheta(clipToBounds(theta, bounds)); err != nil {
			return math.Inf(1)
		}
		lml, _, _, err := g.factorize(trial, X, y)
		if err != nil {
			return math.Inf(1)
		}
		return -lml
	}
	problem := optimize.Problem{Func: objective}

	starts := [][]float64{fitted.Theta()}
	rnd := rand.New(rand.NewPCG(uint64(g.randomState), uint64(g.randomState)+1))
	for r := 0; r < g.nRestarts; r++ {
		theta := make([]float64, len(bounds))
		for i, b := range bounds {
			theta[i] = b.Min + rnd.Float64()*(b.Max-b.Min)
		}
		starts = append(starts, theta)
	}

	bestF := math.Inf(1)
	var bestTheta []float64
	for _, x0 := range starts {
		result, err := optimize.Minimize(problem, x0, nil, &optimize.LBFGS{})
		if result == nil {
			errors.Warn(errors.NewConvergenceWarning("L-BFGS", 0, err.Error()))
			continue
		}
		if err != nil {
			// 途中で打ち切られても到達した最良点は候補として残す
			errors.Warn(errors.NewConvergenceWarning("L-BFGS", result.Stats.MajorIterations, err.Error()))
		}
		if result.F < bestF {
			bestF = result.F
			bestTheta = clipToBounds(result.X, bounds)
		}
	}

	if bestTheta == nil {
		// 全ての初期値で目的関数が発散した場合は初期ハイパーパラメータを維持する
		errors.Warn(errors.NewConvergenceWarning("L-BFGS", len(starts),
			"no starting point produced a finite objective; keeping initial hyperparameters"))
		return nil
	}
	return fitted.SetTheta(bestTheta)
}

// clipToBounds は対数ハイパーパラメータを探索境界内に収めたコピーを返す
func clipToBounds(theta []float64, bounds []kernels.Bound) []float64 {
	clipped := make([]float64, len(theta))
	for i, v := range theta {
		clipped[i] = errors.ClipValue(v, bounds[i].Min, bounds[i].Max)
	}
	return clipped
}
