// Package scigp provides Gaussian Process (GP) regression for Go, focused on
// interpolating sparse or noisy 1D time-series data with calibrated
// uncertainty.
//
// SciGP offers a scikit-learn-like API so that engineers familiar with
// Python's GaussianProcessRegressor can build probabilistic regression
// pipelines in Go. All linear algebra (Cholesky factorization, triangular
// solves) and hyperparameter optimization are delegated to gonum rather than
// reimplemented.
//
// # Features
//
// - scikit-learn-like API: Fit / Predict / PredictWithStd
// - Composable kernels: RBF, Matern, periodic, white noise, sum and product
// - Hyperparameter optimization via log-marginal-likelihood maximization
// - Synthetic time-series toolkit for simulation and subsampling studies
// - Posterior visualization with uncertainty bands (gonum/plot)
// - Robust error handling with structured, stack-traced errors
//
// # Quick Start
//
// Fit a GP to a handful of noisy observations and predict with uncertainty:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/scigp/gp"
//	    "github.com/YuminosukeSato/scigp/kernels"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(5, 1, []float64{0, 1.5, 3, 4.5, 6})
//	    y := mat.NewDense(5, 1, []float64{0, 1, 0.1, -1, -0.2})
//
//	    model := gp.NewGaussianProcessRegressor(
//	        gp.WithKernel(kernels.NewRBF(1.0)),
//	        gp.WithAlpha(1e-2),
//	    )
//	    if err := model.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    XTest := mat.NewDense(1, 1, []float64{2.0})
//	    mean, std, err := model.PredictWithStd(XTest)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("f(2.0) = %.3f ± %.3f\n", mean.AtVec(0), 2*std.AtVec(0))
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - gp: GaussianProcessRegressor estimator
//   - kernels: covariance functions and composites
//   - dataset: synthetic signal generation, subsampling, noise injection
//   - metrics: evaluation metrics (MSE, RMSE, MAE, R², NLPD, coverage)
//   - preprocessing: target normalization
//   - visualize: posterior plots with uncertainty bands
//   - core/model: core interfaces and base types
//   - core/parallel: parallel processing utilities
//
// # Demo
//
// cmd/gpdemo reproduces the full interpolation study: it simulates a noisy
// sine signal, subsamples it under several sparsity and noise scenarios,
// fits a GP per scenario and renders posterior plots side by side. Scenarios
// are described in a YAML file; see config/scenarios.yaml.
//
// # License
//
// SciGP is released under the MIT License.
package scigp
