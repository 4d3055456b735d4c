package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/YuminosukeSato/scigp/pkg/errors"
)

// NLPD は負の対数予測密度（Negative Log Predictive Density）を計算する。
// 予測分布 N(mean_i, std_i²) の下での観測値の平均負対数尤度であり、
// 予測の不確実性まで含めて評価する指標。小さいほど良い。
func NLPD(yTrue, mean, std *mat.VecDense) (float64, error) {
	// 入力検証
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("NLPD", "empty vector")
	}
	if mean.Len() != n {
		return 0, errors.NewDimensionError("NLPD", n, mean.Len(), 0)
	}
	if std.Len() != n {
		return 0, errors.NewDimensionError("NLPD", n, std.Len(), 0)
	}

	var sum float64
	for i := 0; i < n; i++ {
		s := std.AtVec(i)
		if s <= 0 {
			// 標準偏差0の点は密度が退化するため警告して下限値で評価する
			errors.Warn(errors.NewUndefinedMetricWarning("NLPD", "zero predictive std", 0))
			s = 1e-10
		}
		dist := distuv.Normal{Mu: mean.AtVec(i), Sigma: s}
		sum -= dist.LogProb(yTrue.AtVec(i))
	}

	nlpd := sum / float64(n)
	if err := errors.CheckScalar("NLPD", nlpd, 0); err != nil {
		return 0, err
	}
	return nlpd, nil
}

// Coverage は真値が信用区間 mean ± z*std に含まれる割合を計算する。
// 校正された予測分布ではz=1.96のとき約0.95となる。
func Coverage(yTrue, mean, std *mat.VecDense, z float64) (float64, error) {
	// 入力検証
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("Coverage", "empty vector")
	}
	if mean.Len() != n {
		return 0, errors.NewDimensionError("Coverage", n, mean.Len(), 0)
	}
	if std.Len() != n {
		return 0, errors.NewDimensionError("Coverage", n, std.Len(), 0)
	}
	if z <= 0 {
		return 0, errors.NewValidationError("z", "must be positive", z)
	}

	inside := 0
	for i := 0; i < n; i++ {
		if math.Abs(yTrue.AtVec(i)-mean.AtVec(i)) <= z*std.AtVec(i) {
			inside++
		}
	}
	return float64(inside) / float64(n), nil
}
