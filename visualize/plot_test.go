package visualize

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot"
)

func samplePosterior(n int) PosteriorData {
	grid := make([]float64, n)
	mean := make([]float64, n)
	std := make([]float64, n)
	truth := make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1) * 2 * math.Pi
		grid[i] = t
		truth[i] = math.Sin(t)
		mean[i] = math.Sin(t) + 0.05
		std[i] = 0.1 + 0.05*math.Abs(math.Cos(t))
	}
	return PosteriorData{
		Grid:   grid,
		Mean:   mean,
		Std:    std,
		Truth:  truth,
		TrainT: []float64{0.5, 2.0, 4.0, 5.5},
		TrainY: []float64{0.4, 0.95, -0.8, -0.7},
	}
}

func TestPosteriorPlot(t *testing.T) {
	p, err := PosteriorPlot(samplePosterior(50), "sine posterior")
	if err != nil {
		t.Fatalf("PosteriorPlot failed: %v", err)
	}
	if p.Title.Text != "sine posterior" {
		t.Errorf("title: got %q", p.Title.Text)
	}
}

func TestPosteriorPlotValidation(t *testing.T) {
	tests := []struct {
		name string
		data PosteriorData
	}{
		{
			name: "empty grid",
			data: PosteriorData{},
		},
		{
			name: "mean length mismatch",
			data: PosteriorData{Grid: []float64{0, 1}, Mean: []float64{0}, Std: []float64{1, 1}},
		},
		{
			name: "std length mismatch",
			data: PosteriorData{Grid: []float64{0, 1}, Mean: []float64{0, 0}, Std: []float64{1}},
		},
		{
			name: "truth length mismatch",
			data: PosteriorData{
				Grid: []float64{0, 1}, Mean: []float64{0, 0}, Std: []float64{1, 1},
				Truth: []float64{0},
			},
		},
		{
			name: "training points misaligned",
			data: PosteriorData{
				Grid: []float64{0, 1}, Mean: []float64{0, 0}, Std: []float64{1, 1},
				TrainT: []float64{0}, TrainY: []float64{0, 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := PosteriorPlot(tt.data, "bad"); err == nil {
				t.Error("PosteriorPlot should fail")
			}
		})
	}
}

func TestSavePNG(t *testing.T) {
	p, err := PosteriorPlot(samplePosterior(30), "saved")
	if err != nil {
		t.Fatalf("PosteriorPlot failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "posterior.png")
	if err := SavePNG(p, path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Size() == 0 {
		t.Error("saved PNG is empty")
	}
}

func TestGridPNG(t *testing.T) {
	makePlot := func(title string) *plot.Plot {
		p, err := PosteriorPlot(samplePosterior(30), title)
		if err != nil {
			t.Fatalf("PosteriorPlot failed: %v", err)
		}
		return p
	}

	plots := [][]*plot.Plot{
		{makePlot("a"), makePlot("b")},
		{makePlot("c"), nil},
	}

	path := filepath.Join(t.TempDir(), "grid.png")
	if err := GridPNG(plots, path); err != nil {
		t.Fatalf("GridPNG failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Size() == 0 {
		t.Error("grid PNG is empty")
	}
}

func TestGridPNGValidation(t *testing.T) {
	if err := GridPNG(nil, "unused.png"); err == nil {
		t.Error("empty grid should be rejected")
	}

	ragged := [][]*plot.Plot{
		{nil, nil},
		{nil},
	}
	if err := GridPNG(ragged, "unused.png"); err == nil {
		t.Error("ragged grid should be rejected")
	}
}
