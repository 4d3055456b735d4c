package model

import "gonum.org/v1/gonum/mat"

// Fitter は学習可能なモデルのインターフェース
type Fitter interface {
	// Fit はモデルを訓練データで学習させる
	Fit(X, y mat.Matrix) error
}

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// Predict は入力データに対する予測を行う
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// UncertaintyPredictor は予測の不確実性を提供するモデルのインターフェース
type UncertaintyPredictor interface {
	Predictor

	// PredictWithStd は予測平均と各点の予測標準偏差を返す
	PredictWithStd(X mat.Matrix) (mean, std *mat.VecDense, err error)
}

// ProbabilisticModel は確率モデルのインターフェース
type ProbabilisticModel interface {
	// LogMarginalLikelihood は学習データに対する対数周辺尤度を返す
	LogMarginalLikelihood() (float64, error)
}
