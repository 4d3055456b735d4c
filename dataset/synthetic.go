package dataset

import (
	"math"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/YuminosukeSato/scigp/pkg/errors"
)

// SineConfig parameterizes a synthetic sine signal
//
//	y(t) = Offset + Amplitude * sin(2π * Frequency * t + Phase)
type SineConfig struct {
	Amplitude float64
	Frequency float64
	Phase     float64
	Offset    float64
}

// DefaultSineConfig is a unit-amplitude sine with one cycle per 2π time
// units, matching the classic textbook interpolation example.
var DefaultSineConfig = SineConfig{Amplitude: 1.0, Frequency: 1.0 / (2 * math.Pi)}

// Linspace returns n evenly spaced values covering [start, stop].
// n must be positive.
func Linspace(start, stop float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, errors.NewValidationError("n", "must be positive", n)
	}
	if n == 1 {
		return []float64{start}, nil
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out, nil
}

// Sine evaluates the configured sine signal on the given time index,
// producing a noise-free dataset.
func Sine(cfg SineConfig, t []float64) *TimeDataset {
	y := make([]float64, len(t))
	for i, ti := range t {
		y[i] = cfg.Offset + cfg.Amplitude*math.Sin(2*math.Pi*cfg.Frequency*ti+cfg.Phase)
	}
	return &TimeDataset{T: t, Y: y}
}

// AddNoise returns a copy of d with zero-mean Gaussian noise of the given
// standard deviation added to the values. The same seed always produces
// the same noise realization. stddev must not be negative; 0 returns a
// plain copy.
func AddNoise(d *TimeDataset, stddev float64, seed int64) (*TimeDataset, error) {
	if stddev < 0 {
		return nil, errors.NewValidationError("stddev", "must be non-negative", stddev)
	}

	out := d.Clone()
	if stddev == 0 {
		return out, nil
	}

	noise := distuv.Normal{
		Mu:    0,
		Sigma: stddev,
		Src:   rand.NewPCG(uint64(seed), uint64(seed)+1),
	}
	for i := range out.Y {
		out.Y[i] += noise.Rand()
	}
	return out, nil
}

// Subsample draws n observations from d uniformly at random without
// replacement and returns them ordered by time. The same seed always
// selects the same observations.
func Subsample(d *TimeDataset, n int, seed int64) (*TimeDataset, error) {
	if n <= 0 {
		return nil, errors.NewValidationError("n", "must be positive", n)
	}
	if n > d.Len() {
		return nil, errors.NewValidationError("n", "exceeds dataset size", n)
	}

	rnd := rand.New(rand.NewPCG(uint64(seed), uint64(seed)+1))
	idx := rnd.Perm(d.Len())[:n]
	sort.Ints(idx)

	t := make([]float64, n)
	y := make([]float64, n)
	for i, j := range idx {
		t[i] = d.T[j]
		y[i] = d.Y[j]
	}
	return &TimeDataset{T: t, Y: y}, nil
}

// SubsampleFraction keeps the given fraction of observations, rounded to
// the nearest count but never below 1.
func SubsampleFraction(d *TimeDataset, frac float64, seed int64) (*TimeDataset, error) {
	if frac <= 0 || frac > 1 {
		return nil, errors.NewValidationError("frac", "must be in (0, 1]", frac)
	}
	n := int(math.Round(frac * float64(d.Len())))
	if n < 1 {
		n = 1
	}
	return Subsample(d, n, seed)
}

// Mask removes all observations with time in [from, to), simulating a gap
// in the record. Returns an error if nothing survives the mask.
func Mask(d *TimeDataset, from, to float64) (*TimeDataset, error) {
	var t, y []float64
	for i, ti := range d.T {
		if ti >= from && ti < to {
			continue
		}
		t = append(t, ti)
		y = append(y, d.Y[i])
	}
	if len(t) == 0 {
		return nil, errors.NewModelError("dataset.Mask", "mask removed all observations", errors.ErrEmptyData)
	}
	return &TimeDataset{T: t, Y: y}, nil
}
