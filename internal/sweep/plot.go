package sweep

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var axisNames = [3]string{"X", "Y", "Z"}

// PlotPNG draws the target coordinates against the swept angle and saves the
// plot to path. The image format follows the file extension.
func PlotPNG(r *Report, path string) error {
	if len(r.Results) == 0 {
		return fmt.Errorf("no results to plot")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Target position vs rotation about %s", axisNames[r.Axis])
	p.X.Label.Text = "Angle (deg)"
	p.Y.Label.Text = "Position"
	p.Add(plotter.NewGrid())

	colors := []color.RGBA{
		{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
		{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
		{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	}

	for axis := 0; axis < 3; axis++ {
		pts := make(plotter.XYs, 0, len(r.Results))
		for _, res := range r.Results {
			pts = append(pts, plotter.XY{X: res.Angle, Y: res.Point.Get(axis)})
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("axis %s: %w", axisNames[axis], err)
		}
		line.Color = colors[axis]
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(axisNames[axis], line)
	}
	p.Legend.Top = true

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}
