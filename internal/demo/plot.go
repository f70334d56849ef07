// SPDX-License-Identifier: MIT

package demo

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lvnum/derivative"
	"github.com/katalvlaran/lvnum/fn"
)

// plot size
const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// ConvergenceSeries returns, for scheme s, the absolute error of the
// derivative of x·e^(−x) at x for steps h, h/2, …, h/2^halvings.
// Points with a zero or non-finite error are dropped since they cannot be
// drawn on a log scale.
func ConvergenceSeries(s derivative.Scheme, x, h float64, halvings int) (plotter.XYs, error) {
	samples, err := derivative.Sweep(xExpNegX, x, s, h, halvings)
	if err != nil {
		return nil, err
	}

	exact := xExpNegXPrime(x)
	pts := make(plotter.XYs, 0, len(samples))
	for _, smp := range samples {
		e := math.Abs(smp.Value - exact)
		if e == 0 || !fn.IsFinite(e) {
			continue
		}
		pts = append(pts, plotter.XY{X: smp.Step, Y: e})
	}

	return pts, nil
}

// WriteConvergencePlot draws |error| against h on log–log axes for every
// derivative scheme and saves it to path.
func WriteConvergencePlot(path string, x, h float64, halvings int) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("f(x) = x·e^-x, derivative error at x = %v", x)
	p.X.Label.Text = "h"
	p.Y.Label.Text = "|error|"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	var lines []interface{}
	for _, s := range derivative.Schemes() {
		pts, err := ConvergenceSeries(s, x, h, halvings)
		if err != nil {
			return fmt.Errorf("plot %s: %w", s, err)
		}
		if len(pts) == 0 {
			continue
		}
		lines = append(lines, s.String(), pts)
	}
	if len(lines) == 0 {
		return fmt.Errorf("plot: no drawable points for x=%v h=%v", x, h)
	}
	if err := plotutil.AddLinePoints(p, lines...); err != nil {
		return fmt.Errorf("plot: %w", err)
	}

	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("plot save %s: %w", path, err)
	}

	return nil
}
