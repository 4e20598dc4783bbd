package sim

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	pursuit "github.com/milosgajdos/go-pursuit"
)

// NewDensityPlot creates new plot of the density d sampled at n evenly
// spaced points across the interval [xmin, xmax].
// It returns error if either of the following conditions is met:
// * d is nil
// * xmin is not smaller than xmax
// * n is smaller than 2
// * gonum plot line fails to be created
func NewDensityPlot(d pursuit.Density, xmin, xmax float64, n int) (*plot.Plot, error) {
	if d == nil {
		return nil, fmt.Errorf("invalid density supplied")
	}

	if xmin >= xmax {
		return nil, fmt.Errorf("invalid plot interval: [%v, %v]", xmin, xmax)
	}

	if n < 2 {
		return nil, fmt.Errorf("invalid number of plot points: %d", n)
	}

	p := plot.New()

	p.Title.Text = "Predicted density"
	p.X.Label.Text = "position"
	p.Y.Label.Text = "pdf"

	pts := make(plotter.XYs, n)
	step := (xmax - xmin) / float64(n-1)
	for i := range pts {
		x := xmin + float64(i)*step
		pts[i].X = x
		pts[i].Y = d.Prob(x)
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("failed to create line: %v", err)
	}
	line.Color = color.RGBA{R: 255, B: 128, A: 255}

	p.Add(line)
	p.Legend.Add("pdf", line)

	return p, nil
}
