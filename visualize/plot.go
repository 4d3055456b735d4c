// Package visualize renders Gaussian Process posteriors as plots.
//
// A posterior figure shows the predicted mean, a shaded credible band of
// mean ± z·std, the training observations and optionally the noise-free
// ground truth. Figures are built with gonumplot and saved as PNG, either
// one scenario per file or several scenarios tiled into a comparison grid.
package visualize

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/scigp/pkg/errors"
)

// Default figure size for single-scenario plots.
const (
	defaultWidth  = 16 * vg.Centimeter
	defaultHeight = 10 * vg.Centimeter
)

var (
	meanColor  = color.NRGBA{R: 31, G: 119, B: 180, A: 255}
	bandColor  = color.NRGBA{R: 31, G: 119, B: 180, A: 60}
	truthColor = color.NRGBA{R: 120, G: 120, B: 120, A: 255}
	trainColor = color.NRGBA{R: 214, G: 39, B: 40, A: 255}
)

// PosteriorData holds everything needed to draw one posterior figure.
// Grid, Mean and Std must have the same length. Truth is optional; when
// present it must align with Grid. TrainT and TrainY must align with each
// other.
type PosteriorData struct {
	// Grid is the prediction grid on the time axis.
	Grid []float64

	// Mean is the posterior mean on the grid.
	Mean []float64

	// Std is the posterior standard deviation on the grid.
	Std []float64

	// Truth is the noise-free function on the grid. May be nil.
	Truth []float64

	// TrainT and TrainY are the observed training points.
	TrainT []float64
	TrainY []float64

	// Z is the credible band half-width in standard deviations.
	// Zero means the conventional 1.96 (a ~95% band).
	Z float64
}

func (d *PosteriorData) validate() error {
	if len(d.Grid) == 0 {
		return errors.NewValueError("visualize.PosteriorPlot", "empty prediction grid")
	}
	if len(d.Mean) != len(d.Grid) {
		return errors.NewDimensionError("visualize.PosteriorPlot", len(d.Grid), len(d.Mean), 0)
	}
	if len(d.Std) != len(d.Grid) {
		return errors.NewDimensionError("visualize.PosteriorPlot", len(d.Grid), len(d.Std), 0)
	}
	if d.Truth != nil && len(d.Truth) != len(d.Grid) {
		return errors.NewDimensionError("visualize.PosteriorPlot", len(d.Grid), len(d.Truth), 0)
	}
	if len(d.TrainT) != len(d.TrainY) {
		return errors.NewDimensionError("visualize.PosteriorPlot", len(d.TrainT), len(d.TrainY), 0)
	}
	return nil
}

// PosteriorPlot builds a single posterior figure.
func PosteriorPlot(d PosteriorData, title string) (*plot.Plot, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}

	z := d.Z
	if z == 0 {
		z = 1.96
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "t"
	p.Y.Label.Text = "y"

	band, err := credibleBand(d.Grid, d.Mean, d.Std, z)
	if err != nil {
		return nil, err
	}
	p.Add(band)
	p.Legend.Add("credible band", band)

	meanLine, err := plotter.NewLine(xyPairs(d.Grid, d.Mean))
	if err != nil {
		return nil, errors.Wrap(err, "scigp: building mean line")
	}
	meanLine.LineStyle.Color = meanColor
	meanLine.LineStyle.Width = vg.Points(1.5)
	p.Add(meanLine)
	p.Legend.Add("posterior mean", meanLine)

	if d.Truth != nil {
		truthLine, err := plotter.NewLine(xyPairs(d.Grid, d.Truth))
		if err != nil {
			return nil, errors.Wrap(err, "scigp: building truth line")
		}
		truthLine.LineStyle.Color = truthColor
		truthLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(truthLine)
		p.Legend.Add("truth", truthLine)
	}

	if len(d.TrainT) > 0 {
		points, err := plotter.NewScatter(xyPairs(d.TrainT, d.TrainY))
		if err != nil {
			return nil, errors.Wrap(err, "scigp: building training scatter")
		}
		points.GlyphStyle.Color = trainColor
		points.GlyphStyle.Radius = vg.Points(2.5)
		p.Add(points)
		p.Legend.Add("observations", points)
	}

	p.Legend.Top = true
	return p, nil
}

// SavePNG renders the plot to a PNG file at the default figure size.
func SavePNG(p *plot.Plot, path string) error {
	if err := p.Save(defaultWidth, defaultHeight, path); err != nil {
		return errors.Wrapf(err, "scigp: saving plot to %s", path)
	}
	return nil
}

// credibleBand builds the shaded mean ± z·std polygon. The outline runs
// along the upper edge and back along the lower one.
func credibleBand(grid, mean, std []float64, z float64) (*plotter.Polygon, error) {
	n := len(grid)
	xys := make(plotter.XYs, 0, 2*n)
	for i := 0; i < n; i++ {
		xys = append(xys, plotter.XY{X: grid[i], Y: mean[i] + z*std[i]})
	}
	for i := n - 1; i >= 0; i-- {
		xys = append(xys, plotter.XY{X: grid[i], Y: mean[i] - z*std[i]})
	}

	poly, err := plotter.NewPolygon(xys)
	if err != nil {
		return nil, errors.Wrap(err, "scigp: building credible band")
	}
	poly.Color = bandColor
	poly.LineStyle.Color = color.NRGBA{A: 0}
	return poly, nil
}

func xyPairs(xs, ys []float64) plotter.XYs {
	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	return xys
}
