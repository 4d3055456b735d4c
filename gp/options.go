package gp

import "github.com/YuminosukeSato/scigp/kernels"

// Option is a function that configures GaussianProcessRegressor
type Option func(*GaussianProcessRegressor)

// WithKernel sets the prior covariance function.
// The kernel is cloned during Fit, so the one passed here keeps its
// initial hyperparameters.
func WithKernel(k kernels.Kernel) Option {
	return func(g *GaussianProcessRegressor) {
		g.kernel = k
	}
}

// WithAlpha sets the value added to the kernel matrix diagonal during Fit.
// It acts both as observation noise variance and as numerical jitter for
// the Cholesky factorization.
func WithAlpha(alpha float64) Option {
	return func(g *GaussianProcessRegressor) {
		g.alpha = alpha
	}
}

// WithNormalizeY enables normalization of the target values to zero mean
// and unit variance before fitting. Predictions are transformed back to
// the original scale.
func WithNormalizeY(normalize bool) Option {
	return func(g *GaussianProcessRegressor) {
		g.normalizeY = normalize
	}
}

// WithRestarts sets the number of additional optimizer runs started from
// hyperparameters drawn uniformly at random within the kernel bounds.
// The run with the highest log marginal likelihood wins.
func WithRestarts(n int) Option {
	return func(g *GaussianProcessRegressor) {
		g.nRestarts = n
	}
}

// WithRandomState sets the seed for the restart draws and for SampleY.
func WithRandomState(seed int64) Option {
	return func(g *GaussianProcessRegressor) {
		g.randomState = seed
	}
}

// WithoutOptimizer disables hyperparameter optimization. Fit uses the
// kernel exactly as configured.
func WithoutOptimizer() Option {
	return func(g *GaussianProcessRegressor) {
		g.optimize = false
	}
}
