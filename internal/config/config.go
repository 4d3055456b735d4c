// Package config loads demo scenario configuration from YAML.
package config

import (
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/YuminosukeSato/scigp/kernels"
	scigpErrors "github.com/YuminosukeSato/scigp/pkg/errors"
)

// Config captures the settings for a full demo run: the simulated signal,
// the model, the output location and the list of scenarios to compare.
type Config struct {
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
	Simulation SimulationConfig `yaml:"simulation"`
	Model      ModelConfig      `yaml:"model"`
	Scenarios  []ScenarioConfig `yaml:"scenarios"`
}

// OutputConfig controls where rendered figures are written.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig controls structured logging.
type LoggingConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// SimulationConfig describes the ground-truth signal and the dense grid it
// is sampled on.
type SimulationConfig struct {
	TStart     float64      `yaml:"tStart"`
	TEnd       float64      `yaml:"tEnd"`
	GridPoints int          `yaml:"gridPoints"`
	Seed       int64        `yaml:"seed"`
	Signal     SignalConfig `yaml:"signal"`
}

// SignalConfig parameterizes the sine wave used as ground truth.
type SignalConfig struct {
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
	Phase     float64 `yaml:"phase"`
	Offset    float64 `yaml:"offset"`
}

// ModelConfig selects the kernel family and regressor settings shared by
// all scenarios.
type ModelConfig struct {
	// Kernel is one of "rbf", "matern" or "periodic".
	Kernel      string  `yaml:"kernel"`
	LengthScale float64 `yaml:"lengthScale"`
	Variance    float64 `yaml:"variance"`
	Nu          float64 `yaml:"nu"`
	Periodicity float64 `yaml:"periodicity"`

	// Alpha is the diagonal jitter added to the kernel matrix. Zero means
	// derive it from each scenario's noise level.
	Alpha      float64 `yaml:"alpha"`
	NormalizeY bool    `yaml:"normalizeY"`
	Optimize   *bool   `yaml:"optimize"`
	Restarts   int     `yaml:"restarts"`
}

// ScenarioConfig is one sparsity/noise setting to fit and plot.
type ScenarioConfig struct {
	Name     string  `yaml:"name"`
	Samples  int     `yaml:"samples"`
	NoiseStd float64 `yaml:"noiseStd"`

	// MaskFrom/MaskTo drop observations in [from, to) to create a gap.
	// Both zero means no gap.
	MaskFrom float64 `yaml:"maskFrom"`
	MaskTo   float64 `yaml:"maskTo"`
}

// Load initialises Config from a YAML file with defaults applied first.
// An empty path falls back to the SCIGP_DEMO_CONFIG environment variable,
// then to the built-in defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("SCIGP_DEMO_CONFIG")
	}

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if scigpErrors.Is(err, fs.ErrNotExist) {
				return nil, scigpErrors.Wrapf(err, "scigp: config file %s not found", path)
			}
			return nil, scigpErrors.Wrap(err, "scigp: reading config")
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, scigpErrors.Wrap(err, "scigp: parsing config")
		}
	}

	if v := os.Getenv("SCIGP_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration: a noisy sine over one and a
// half periods, an RBF kernel, and three scenarios of increasing
// difficulty.
func Default() Config {
	return Config{
		Output:  OutputConfig{Dir: "out"},
		Logging: LoggingConfig{Level: "info", JSON: false},
		Simulation: SimulationConfig{
			TStart:     0,
			TEnd:       10,
			GridPoints: 200,
			Seed:       42,
			Signal:     SignalConfig{Amplitude: 1.0, Frequency: 0.25},
		},
		Model: ModelConfig{
			Kernel:      "rbf",
			LengthScale: 1.0,
			Variance:    1.0,
			NormalizeY:  true,
			Restarts:    4,
		},
		Scenarios: []ScenarioConfig{
			{Name: "dense-clean", Samples: 60, NoiseStd: 0.05},
			{Name: "sparse-clean", Samples: 12, NoiseStd: 0.05},
			{Name: "sparse-noisy", Samples: 12, NoiseStd: 0.3},
			{Name: "gap", Samples: 40, NoiseStd: 0.1, MaskFrom: 4, MaskTo: 7},
		},
	}
}

// Validate checks the configuration for values the demo cannot run with.
func (c *Config) Validate() error {
	if c.Simulation.GridPoints < 2 {
		return scigpErrors.NewValidationError("simulation.gridPoints", "must be at least 2", c.Simulation.GridPoints)
	}
	if c.Simulation.TEnd <= c.Simulation.TStart {
		return scigpErrors.NewValidationError("simulation.tEnd", "must be greater than tStart", c.Simulation.TEnd)
	}
	if _, err := c.Model.BuildKernel(); err != nil {
		return err
	}
	if c.Model.Alpha < 0 {
		return scigpErrors.NewValidationError("model.alpha", "must be non-negative", c.Model.Alpha)
	}
	if c.Model.Restarts < 0 {
		return scigpErrors.NewValidationError("model.restarts", "must be non-negative", c.Model.Restarts)
	}
	if len(c.Scenarios) == 0 {
		return scigpErrors.NewValidationError("scenarios", "at least one scenario is required", len(c.Scenarios))
	}
	for _, s := range c.Scenarios {
		if s.Name == "" {
			return scigpErrors.NewValidationError("scenarios.name", "must not be empty", s.Name)
		}
		if s.Samples <= 0 {
			return scigpErrors.NewValidationError("scenarios.samples", "must be positive", s.Samples)
		}
		if s.Samples > c.Simulation.GridPoints {
			return scigpErrors.NewValidationError("scenarios.samples",
				"must not exceed simulation.gridPoints", s.Samples)
		}
		if s.NoiseStd < 0 {
			return scigpErrors.NewValidationError("scenarios.noiseStd", "must be non-negative", s.NoiseStd)
		}
		if s.MaskTo < s.MaskFrom {
			return scigpErrors.NewValidationError("scenarios.maskTo", "must not be less than maskFrom", s.MaskTo)
		}
	}
	return nil
}

// BuildKernel constructs the configured prior covariance function.
func (m ModelConfig) BuildKernel() (kernels.Kernel, error) {
	lengthScale := m.LengthScale
	if lengthScale <= 0 {
		return nil, scigpErrors.NewValidationError("model.lengthScale", "must be positive", lengthScale)
	}
	variance := m.Variance
	if variance <= 0 {
		return nil, scigpErrors.NewValidationError("model.variance", "must be positive", variance)
	}

	var base kernels.Kernel
	switch strings.ToLower(m.Kernel) {
	case "rbf":
		base = kernels.NewRBF(lengthScale)
	case "matern":
		nu := m.Nu
		if nu == 0 {
			nu = 1.5
		}
		if nu != 0.5 && nu != 1.5 && nu != 2.5 {
			return nil, scigpErrors.NewValidationError("model.nu", "must be 0.5, 1.5 or 2.5", nu)
		}
		base = kernels.NewMatern(lengthScale, nu)
	case "periodic":
		periodicity := m.Periodicity
		if periodicity <= 0 {
			return nil, scigpErrors.NewValidationError("model.periodicity", "must be positive", periodicity)
		}
		base = kernels.NewExpSineSquared(lengthScale, periodicity)
	default:
		return nil, scigpErrors.NewValidationError("model.kernel",
			"must be one of rbf, matern, periodic", m.Kernel)
	}

	return kernels.NewScaled(variance, base), nil
}

// OptimizeEnabled reports whether hyperparameter optimization is on.
// It defaults to true when the YAML leaves the field unset.
func (m ModelConfig) OptimizeEnabled() bool {
	return m.Optimize == nil || *m.Optimize
}
