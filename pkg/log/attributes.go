// Package log configures structured slog logging for SciGP and defines
// standard attribute keys for Gaussian Process operations.
//
// This file contains predefined attribute keys that provide consistency across
// all logging operations in SciGP. Using these standard keys enables better
// log analysis, monitoring, and debugging of GP regression workflows.
//
// The attributes are organized into categories:
//   - Model and Operation Context
//   - Data Shape and Characteristics
//   - Performance and Fit Quality
//   - Error Context
//
// These keys follow a hierarchical naming convention (e.g., "model.name",
// "data.samples") to enable structured log analysis and filtering.

package log

// Model and Operation Context
// These attributes identify the model type, instance, and operation being performed.
const (
	// ModelNameKey identifies the type of model.
	// Examples: "GaussianProcessRegressor", "TargetScaler"
	ModelNameKey = "model.name"

	// EstimatorIDKey provides a unique identifier for a specific model instance.
	// This is useful for tracking multiple instances of the same model type.
	EstimatorIDKey = "estimator.id"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "predict_std", "sample", "score"
	OperationKey = "ml.operation"

	// ComponentKey identifies which component or package is performing the operation.
	// Examples: "gp", "kernels", "dataset", "visualize"
	ComponentKey = "ml.component"

	// PhaseKey indicates the phase of model lifecycle.
	// Examples: "training", "inference", "simulation"
	PhaseKey = "ml.phase"

	// KernelKey records the string form of the covariance function in use.
	// Example: "1.00**2 * RBF(length_scale=1.5) + WhiteKernel(noise_level=0.01)"
	KernelKey = "model.kernel"
)

// Data Shape and Characteristics
// These attributes describe the structure and properties of data being processed.
const (
	// SamplesKey indicates the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features (columns) in the dataset.
	// Always 1 for univariate time-series interpolation.
	FeaturesKey = "data.features"

	// GridPointsKey indicates the number of prediction grid points.
	GridPointsKey = "data.grid_points"

	// NoiseStdKey records the standard deviation of injected observation noise.
	NoiseStdKey = "data.noise_std"

	// SubsampleKey records the number of points kept after subsampling.
	SubsampleKey = "data.subsample"
)

// Performance and Fit Quality
// These attributes capture timing and model quality information.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// LogMarginalLikelihoodKey records the log marginal likelihood of a fitted GP.
	// Higher values indicate a better fit of the kernel hyperparameters.
	LogMarginalLikelihoodKey = "metrics.log_marginal_likelihood"

	// R2ScoreKey records R² coefficient of determination for regression.
	// Range typically (-∞, 1.0], with 1.0 being perfect prediction.
	R2ScoreKey = "metrics.r2_score"

	// RMSEKey records root mean squared error against a reference signal.
	RMSEKey = "metrics.rmse"

	// NLPDKey records negative log predictive density, an uncertainty-aware score.
	NLPDKey = "metrics.nlpd"

	// CoverageKey records the fraction of true values inside the credible band.
	CoverageKey = "metrics.coverage"

	// IterationKey records the current iteration number during iterative processes.
	// Useful for tracking convergence of the marginal-likelihood optimizer.
	IterationKey = "training.iteration"

	// RestartKey records the optimizer restart index during hyperparameter search.
	RestartKey = "training.restart"
)

// Error and Warning Context
// These attributes provide additional context for error and warning messages.
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	// Examples: "DIMENSION_MISMATCH", "NOT_FITTED", "CONVERGENCE_FAILURE"
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	// Examples: "ValidationError", "NumericalInstabilityError"
	ErrorTypeKey = "error.type"

	// StacktraceKey contains stack trace information for debugging.
	// Automatically populated by the error logging functions.
	StacktraceKey = "error.stacktrace"

	// SuggestionKey provides helpful suggestions for resolving issues.
	// Examples: "Increase alpha", "Widen kernel bounds"
	SuggestionKey = "error.suggestion"
)

// Hyperparameters and Configuration
// These attributes capture model configuration and hyperparameters.
const (
	// HyperParamsKey contains kernel hyperparameters as a structured object.
	// Useful for tracking model configuration and reproducibility.
	HyperParamsKey = "model.hyperparams"

	// AlphaKey records the observation-noise variance added to the kernel diagonal.
	AlphaKey = "hyperparams.alpha"

	// LengthScaleKey records a kernel length scale after optimization.
	LengthScaleKey = "hyperparams.length_scale"

	// RandomSeedKey records the random seed for reproducibility.
	// Essential for debugging and ensuring reproducible results.
	RandomSeedKey = "config.random_seed"

	// ScenarioKey identifies the simulation scenario in the demo workflow.
	ScenarioKey = "config.scenario"
)

// Standard attribute value constants for common operations.
// Using these constants ensures consistency across the codebase.
const (
	// Standard operations
	OperationFit        = "fit"
	OperationPredict    = "predict"
	OperationPredictStd = "predict_std"
	OperationSample     = "sample"
	OperationScore      = "score"
	OperationOptimize   = "optimize"

	// Standard phases
	PhaseTraining   = "training"
	PhaseInference  = "inference"
	PhaseSimulation = "simulation"
	PhaseRendering  = "rendering"

	// Standard error codes
	ErrorNotFitted           = "NOT_FITTED"
	ErrorDimensionMismatch   = "DIMENSION_MISMATCH"
	ErrorEmptyData           = "EMPTY_DATA"
	ErrorInvalidInput        = "INVALID_INPUT"
	ErrorConvergence         = "CONVERGENCE_FAILURE"
	ErrorNotPositiveDefinite = "NOT_POSITIVE_DEFINITE"
)
