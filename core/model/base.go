package model

// EstimatorState はモデルの学習状態を表す
type EstimatorState int

const (
	// NotFitted はモデルが未学習の状態
	NotFitted EstimatorState = iota
	// Fitted はモデルが学習済みの状態
	Fitted
)

// BaseEstimator は全てのモデルの基底となる構造体
type BaseEstimator struct {
	state EstimatorState

	// nFeaturesIn はFit時に観測された特徴量の数。
	// Predict系メソッドでの形状検証に使用される。
	nFeaturesIn int
}

// IsFitted はモデルが学習済みかどうかを返す
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted はモデルを学習済み状態に設定する
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset はモデルを初期状態にリセットする
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
	e.nFeaturesIn = 0
}

// NFeaturesIn はFit時に観測された特徴量の数を返す
func (e *BaseEstimator) NFeaturesIn() int {
	return e.nFeaturesIn
}

// SetNFeaturesIn はFit時に観測された特徴量の数を記録する
func (e *BaseEstimator) SetNFeaturesIn(n int) {
	e.nFeaturesIn = n
}
