package kernels

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/scigp/core/parallel"
	"github.com/YuminosukeSato/scigp/pkg/errors"
)

// Row counts at or below this threshold are filled sequentially.
const parallelThreshold = 256

// Matrix computes the n×m gram matrix K where K[i,j] = k(X[i], Y[j]).
// X and Y must have the same number of columns.
func Matrix(k Kernel, X, Y mat.Matrix) (*mat.Dense, error) {
	n, d := X.Dims()
	m, dy := Y.Dims()
	if d != dy {
		return nil, errors.NewDimensionError("kernels.Matrix", d, dy, 1)
	}

	xs := rowSlices(X, n, d)
	ys := rowSlices(Y, m, d)

	K := mat.NewDense(n, m, nil)
	parallel.ParallelizeWithThreshold(n, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			for j := 0; j < m; j++ {
				K.Set(i, j, k.Eval(xs[i], ys[j]))
			}
		}
	})
	return K, nil
}

// SymMatrix computes the symmetric n×n gram matrix of X against itself.
// Only the upper triangle is evaluated; kernel symmetry fills the rest.
// Diagonal entries use SelfEval, so noise kernels contribute only there
// even when X contains duplicate rows.
func SymMatrix(k Kernel, X mat.Matrix) *mat.SymDense {
	n, d := X.Dims()
	xs := rowSlices(X, n, d)

	K := mat.NewSymDense(n, nil)
	parallel.ParallelizeWithThreshold(n, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			K.SetSym(i, i, k.SelfEval(xs[i]))
			for j := i + 1; j < n; j++ {
				K.SetSym(i, j, k.Eval(xs[i], xs[j]))
			}
		}
	})
	return K
}

// Diag computes the diagonal of the gram matrix of X against itself.
func Diag(k Kernel, X mat.Matrix) []float64 {
	n, d := X.Dims()
	xs := rowSlices(X, n, d)

	diag := make([]float64, n)
	for i := range diag {
		diag[i] = k.SelfEval(xs[i])
	}
	return diag
}

// rowSlices copies the rows of X into plain float64 slices so that worker
// goroutines evaluate the kernel without touching the mat.Matrix interface.
func rowSlices(X mat.Matrix, n, d int) [][]float64 {
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, d)
		for j := 0; j < d; j++ {
			row[j] = X.At(i, j)
		}
		rows[i] = row
	}
	return rows
}
