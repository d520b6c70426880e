// Package plotting renders simulation results as charts.
package plotting

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/relab/quorumsim/simulation"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// AttackSuccessPlot plots the attack success probability per quorum
// corruption threshold as a bar chart.
type AttackSuccessPlot struct {
	result simulation.Result
}

// NewAttackSuccessPlot returns a new attack success probability plotter.
func NewAttackSuccessPlot(result simulation.Result) AttackSuccessPlot {
	return AttackSuccessPlot{result: result}
}

// Plot renders the bar chart to the given file. The image format is
// determined by the file extension.
func (p *AttackSuccessPlot) Plot(filename string) error {
	plt := plot.New()

	grid := plotter.NewGrid()
	grid.Horizontal.Color = color.Gray{Y: 200}
	grid.Horizontal.Dashes = plotutil.Dashes(2)
	grid.Vertical.Color = color.Gray{Y: 200}
	grid.Vertical.Dashes = plotutil.Dashes(2)
	plt.Add(grid)

	plt.Title.Text = "Threshold Attack Success Probability"
	plt.X.Label.Text = "n_min"
	plt.Y.Label.Text = "Attack Success Probability"
	plt.Y.Tick.Marker = hplot.Ticks{N: 10}
	plt.Y.Min = 0

	values := make(plotter.Values, len(p.result.AttackSuccessProb))
	copy(values, p.result.AttackSuccessProb)

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return fmt.Errorf("failed to create bar chart: %w", err)
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = plotutil.Color(0)
	plt.Add(bars)

	labels := make([]string, len(p.result.Thresholds))
	for i, t := range p.result.Thresholds {
		labels[i] = strconv.Itoa(t)
	}
	plt.NominalX(labels...)

	if err := plt.Save(6*vg.Inch, 6*vg.Inch, filename); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}

	return nil
}
