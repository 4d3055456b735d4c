package visualize

import (
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/YuminosukeSato/scigp/pkg/errors"
)

// Per-tile size for comparison grids.
const (
	tileWidth  = 12 * vg.Centimeter
	tileHeight = 8 * vg.Centimeter
)

// GridPNG tiles plots into a rows×cols comparison figure and writes it as
// a PNG file. Nil entries leave their tile blank, so a ragged last row is
// fine. Axes are aligned across tiles.
func GridPNG(plots [][]*plot.Plot, path string) error {
	rows := len(plots)
	if rows == 0 {
		return errors.NewValueError("visualize.GridPNG", "no plots to render")
	}
	cols := len(plots[0])
	for i, row := range plots {
		if len(row) != cols {
			return errors.NewDimensionError("visualize.GridPNG", cols, len(row), i)
		}
	}
	if cols == 0 {
		return errors.NewValueError("visualize.GridPNG", "no plots to render")
	}

	img := vgimg.New(vg.Length(cols)*tileWidth, vg.Length(rows)*tileHeight)
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows: rows,
		Cols: cols,
		PadX: vg.Millimeter * 2,
		PadY: vg.Millimeter * 2,
	}

	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		for j := range plots[i] {
			if plots[i][j] != nil {
				plots[i][j].Draw(canvases[i][j])
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "scigp: creating %s", path)
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return errors.Wrapf(err, "scigp: writing %s", path)
	}
	return nil
}
