// Package dataset provides the univariate time-series containers and
// synthetic-signal utilities used throughout SciGP: signal simulation,
// random subsampling and noise injection.
package dataset

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/scigp/pkg/errors"
)

// TimeDataset holds a univariate time series as paired time and value
// slices. Both slices always have the same length.
type TimeDataset struct {
	// T holds the time index of each observation.
	T []float64

	// Y holds the observed value at each time.
	Y []float64
}

// NewTimeDataset creates a TimeDataset from paired slices.
// The slices are used directly, not copied.
func NewTimeDataset(t, y []float64) (*TimeDataset, error) {
	if len(t) == 0 {
		return nil, errors.NewModelError("dataset.NewTimeDataset", "empty data", errors.ErrEmptyData)
	}
	if len(t) != len(y) {
		return nil, errors.NewDimensionError("dataset.NewTimeDataset", len(t), len(y), 0)
	}
	return &TimeDataset{T: t, Y: y}, nil
}

// Len returns the number of observations.
func (d *TimeDataset) Len() int {
	return len(d.T)
}

// XMatrix returns the time index as an n×1 design matrix for estimators.
func (d *TimeDataset) XMatrix() *mat.Dense {
	n := len(d.T)
	X := mat.NewDense(n, 1, nil)
	for i, t := range d.T {
		X.Set(i, 0, t)
	}
	return X
}

// YMatrix returns the values as an n×1 column matrix for estimators.
func (d *TimeDataset) YMatrix() *mat.Dense {
	n := len(d.Y)
	Y := mat.NewDense(n, 1, nil)
	for i, y := range d.Y {
		Y.Set(i, 0, y)
	}
	return Y
}

// YVector returns the values as a vector.
func (d *TimeDataset) YVector() *mat.VecDense {
	n := len(d.Y)
	v := mat.NewVecDense(n, nil)
	for i, y := range d.Y {
		v.SetVec(i, y)
	}
	return v
}

// Clone returns a deep copy of the dataset.
func (d *TimeDataset) Clone() *TimeDataset {
	t := make([]float64, len(d.T))
	y := make([]float64, len(d.Y))
	copy(t, d.T)
	copy(y, d.Y)
	return &TimeDataset{T: t, Y: y}
}
