// Package preprocessing はデータ前処理ユーティリティを提供します。
package preprocessing

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/scigp/core/model"
	"github.com/YuminosukeSato/scigp/pkg/errors"
)

// TargetScaler は回帰ターゲットを平均0、標準偏差1に正規化するスケーラー。
// GaussianProcessRegressorのnormalize_yオプションで使用され、
// 予測平均・標準偏差を元のスケールに戻すための逆変換も提供する。
type TargetScaler struct {
	model.BaseEstimator

	// Mean はターゲットの平均値
	Mean float64

	// Scale はターゲットの標準偏差（母集団標準偏差）
	Scale float64
}

// NewTargetScaler は新しいTargetScalerを作成する
func NewTargetScaler() *TargetScaler {
	return &TargetScaler{}
}

// Fit はターゲット列から統計情報（平均、標準偏差）を計算する
//
// パラメータ:
//   - y: ターゲット (n×1 の行列)
//
// 戻り値:
//   - error: エラーが発生した場合
func (s *TargetScaler) Fit(y mat.Matrix) error {
	r, c := y.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("TargetScaler.Fit", "empty data", errors.ErrEmptyData)
	}
	if c != 1 {
		return errors.NewValueError("TargetScaler.Fit", "y must be a column vector (n×1 matrix)")
	}

	values := make([]float64, r)
	for i := 0; i < r; i++ {
		values[i] = y.At(i, 0)
	}

	s.Mean = stat.Mean(values, nil)

	// 母集団標準偏差を計算（scikit-learnのnormalize_yと同じ）
	var sumSquares float64
	for _, v := range values {
		diff := v - s.Mean
		sumSquares += diff * diff
	}
	s.Scale = math.Sqrt(sumSquares / float64(r))

	// 標準偏差が0に近い場合は1に設定（ゼロ除算を避ける）
	if s.Scale < 1e-8 {
		s.Scale = 1.0
	}

	s.SetFitted()
	return nil
}

// Transform は学習済みの統計情報を使ってターゲットを正規化する
func (s *TargetScaler) Transform(y mat.Matrix) (mat.Matrix, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("TargetScaler", "Transform")
	}

	r, c := y.Dims()
	if c != 1 {
		return nil, errors.NewValueError("TargetScaler.Transform", "y must be a column vector (n×1 matrix)")
	}

	result := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		result.Set(i, 0, (y.At(i, 0)-s.Mean)/s.Scale)
	}
	return result, nil
}

// FitTransform は訓練データで学習し、同じデータを変換する
func (s *TargetScaler) FitTransform(y mat.Matrix) (mat.Matrix, error) {
	if err := s.Fit(y); err != nil {
		return nil, err
	}
	return s.Transform(y)
}

// InverseTransform は正規化されたターゲットを元のスケールに戻す
func (s *TargetScaler) InverseTransform(y mat.Matrix) (mat.Matrix, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("TargetScaler", "InverseTransform")
	}

	r, c := y.Dims()
	if c != 1 {
		return nil, errors.NewValueError("TargetScaler.InverseTransform", "y must be a column vector (n×1 matrix)")
	}

	result := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		result.Set(i, 0, y.At(i, 0)*s.Scale+s.Mean)
	}
	return result, nil
}

// InverseTransformStd は正規化スケールの標準偏差を元のスケールに戻す。
// 標準偏差は平行移動の影響を受けないため、Scale倍のみ行う。
func (s *TargetScaler) InverseTransformStd(std *mat.VecDense) (*mat.VecDense, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("TargetScaler", "InverseTransformStd")
	}

	out := mat.NewVecDense(std.Len(), nil)
	for i := 0; i < std.Len(); i++ {
		out.SetVec(i, std.AtVec(i)*s.Scale)
	}
	return out, nil
}

// GetParams はスケーラーのパラメータを取得する
func (s *TargetScaler) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"mean":  s.Mean,
		"scale": s.Scale,
	}
}
