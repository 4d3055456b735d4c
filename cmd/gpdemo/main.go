// Command gpdemo fits Gaussian Process regressions to subsampled noisy
// sine observations and renders the posteriors against the ground truth.
//
// Each configured scenario controls how many observations survive and how
// noisy they are, so the rendered figures show how the posterior mean and
// its credible band react to data sparsity and noise. All figures plus a
// side-by-side comparison grid are written to the output directory.
//
// Usage:
//
//	gpdemo -config config/scenarios.yaml -out figures -seed 7
package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"

	"github.com/YuminosukeSato/scigp/dataset"
	"github.com/YuminosukeSato/scigp/gp"
	"github.com/YuminosukeSato/scigp/internal/config"
	"github.com/YuminosukeSato/scigp/metrics"
	"github.com/YuminosukeSato/scigp/pkg/log"
	"github.com/YuminosukeSato/scigp/visualize"
)

const bandZ = 1.96

func main() {
	var (
		configPath string
		outDir     string
		seed       int64
	)
	flag.StringVar(&configPath, "config", "", "Path to scenario configuration file")
	flag.StringVar(&outDir, "out", "", "Output directory (overrides the config)")
	flag.Int64Var(&seed, "seed", 0, "Random seed (overrides the config)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("failed to load config", slog.String("path", configPath), slog.Any("error", err))
		os.Exit(1)
	}
	if outDir != "" {
		cfg.Output.Dir = outDir
	}
	if seed != 0 {
		cfg.Simulation.Seed = seed
	}

	log.SetupLogger(cfg.Logging.Level, cfg.Logging.JSON)

	if err := run(cfg); err != nil {
		slog.Error("demo failed", log.ErrAttr(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return err
	}

	grid, err := dataset.Linspace(cfg.Simulation.TStart, cfg.Simulation.TEnd, cfg.Simulation.GridPoints)
	if err != nil {
		return err
	}
	truth := dataset.Sine(dataset.SineConfig{
		Amplitude: cfg.Simulation.Signal.Amplitude,
		Frequency: cfg.Simulation.Signal.Frequency,
		Phase:     cfg.Simulation.Signal.Phase,
		Offset:    cfg.Simulation.Signal.Offset,
	}, grid)

	slog.Info("simulated ground truth",
		slog.Int(log.GridPointsKey, truth.Len()),
		slog.Int64(log.RandomSeedKey, cfg.Simulation.Seed),
	)

	var plots []*plot.Plot
	for i, scenario := range cfg.Scenarios {
		p, err := runScenario(cfg, truth, scenario, cfg.Simulation.Seed+int64(i))
		if err != nil {
			return err
		}
		plots = append(plots, p)
	}

	gridPath := filepath.Join(cfg.Output.Dir, "comparison.png")
	if err := visualize.GridPNG(tile(plots, 2), gridPath); err != nil {
		return err
	}
	slog.Info("wrote comparison grid", slog.String("path", gridPath))
	return nil
}

// runScenario subsamples and corrupts the ground truth, fits a GP to the
// surviving observations and renders the posterior. It returns the figure
// so the caller can assemble the comparison grid.
func runScenario(cfg *config.Config, truth *dataset.TimeDataset, scenario config.ScenarioConfig, seed int64) (*plot.Plot, error) {
	logger := slog.With(
		slog.String(log.ScenarioKey, scenario.Name),
		slog.String(log.ComponentKey, "gpdemo"),
	)

	obs, err := dataset.Subsample(truth, scenario.Samples, seed)
	if err != nil {
		return nil, err
	}
	if scenario.MaskTo > scenario.MaskFrom {
		obs, err = dataset.Mask(obs, scenario.MaskFrom, scenario.MaskTo)
		if err != nil {
			return nil, err
		}
	}
	obs, err = dataset.AddNoise(obs, scenario.NoiseStd, seed)
	if err != nil {
		return nil, err
	}

	logger.Info("prepared observations",
		slog.Int(log.SubsampleKey, obs.Len()),
		slog.Float64(log.NoiseStdKey, scenario.NoiseStd),
	)

	kernel, err := cfg.Model.BuildKernel()
	if err != nil {
		return nil, err
	}

	// Without an explicit alpha, tie the jitter to the injected noise so
	// the model is told how much of the signal to explain away.
	alpha := cfg.Model.Alpha
	if alpha == 0 {
		alpha = scenario.NoiseStd*scenario.NoiseStd + 1e-8
	}

	opts := []gp.Option{
		gp.WithKernel(kernel),
		gp.WithAlpha(alpha),
		gp.WithNormalizeY(cfg.Model.NormalizeY),
		gp.WithRestarts(cfg.Model.Restarts),
		gp.WithRandomState(seed),
	}
	if !cfg.Model.OptimizeEnabled() {
		opts = append(opts, gp.WithoutOptimizer())
	}
	gpr := gp.NewGaussianProcessRegressor(opts...)

	start := time.Now()
	if err := gpr.Fit(obs.XMatrix(), obs.YMatrix()); err != nil {
		return nil, err
	}
	lml, err := gpr.LogMarginalLikelihood()
	if err != nil {
		return nil, err
	}
	logger.Info("fitted model",
		slog.String(log.ModelNameKey, "GaussianProcessRegressor"),
		slog.String(log.KernelKey, gpr.Kernel().String()),
		slog.Float64(log.AlphaKey, alpha),
		slog.Float64(log.LogMarginalLikelihoodKey, lml),
		slog.Int64(log.DurationMsKey, time.Since(start).Milliseconds()),
	)

	mean, std, err := gpr.PredictWithStd(truth.XMatrix())
	if err != nil {
		return nil, err
	}

	// Fit quality against the noise-free signal on the full grid.
	rmse, err := metrics.RMSE(truth.YVector(), mean)
	if err != nil {
		return nil, err
	}
	r2, err := metrics.R2Score(truth.YVector(), mean)
	if err != nil {
		return nil, err
	}
	nlpd, err := metrics.NLPD(truth.YVector(), mean, std)
	if err != nil {
		return nil, err
	}
	coverage, err := metrics.Coverage(truth.YVector(), mean, std, bandZ)
	if err != nil {
		return nil, err
	}
	logger.Info("evaluated posterior",
		slog.Float64(log.RMSEKey, rmse),
		slog.Float64(log.R2ScoreKey, r2),
		slog.Float64(log.NLPDKey, nlpd),
		slog.Float64(log.CoverageKey, coverage),
	)

	figure, err := visualize.PosteriorPlot(visualize.PosteriorData{
		Grid:   truth.T,
		Mean:   vecSlice(mean),
		Std:    vecSlice(std),
		Truth:  truth.Y,
		TrainT: obs.T,
		TrainY: obs.Y,
		Z:      bandZ,
	}, scenario.Name)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(cfg.Output.Dir, scenario.Name+".png")
	if err := visualize.SavePNG(figure, path); err != nil {
		return nil, err
	}
	logger.Info("wrote figure", slog.String("path", path))
	return figure, nil
}

// tile arranges plots row-major into a grid with the given column count,
// padding the last row with nils.
func tile(plots []*plot.Plot, cols int) [][]*plot.Plot {
	var rows [][]*plot.Plot
	for start := 0; start < len(plots); start += cols {
		row := make([]*plot.Plot, cols)
		copy(row, plots[start:min(start+cols, len(plots))])
		rows = append(rows, row)
	}
	return rows
}

func vecSlice(v *mat.VecDense) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out
}
