// SPDX-License-Identifier: MIT

// Package demo is the thin driver around the numeric packages: it supplies
// concrete callbacks, runs every routine with the configured parameters and
// prints a report.
package demo

import (
	"fmt"
	"io"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/lvnum/derivative"
	"github.com/katalvlaran/lvnum/fn"
	"github.com/katalvlaran/lvnum/integrate"
	"github.com/katalvlaran/lvnum/quadratic"
	"github.com/katalvlaran/lvnum/series"
	"github.com/katalvlaran/lvnum/vector"
)

// Run writes the demo report to out and, if cfg.PlotPath is set, saves the
// convergence plot there.
// Any write error on out is returned.
func Run(cfg Config, out io.Writer) error {
	rep := &report{p: message.NewPrinter(language.English), out: out}

	if err := reportDerivative(rep, cfg); err != nil {
		return err
	}
	if err := reportIntegral(rep, cfg); err != nil {
		return err
	}
	if err := reportQuadratic(rep, cfg); err != nil {
		return err
	}
	if err := reportDot(rep); err != nil {
		return err
	}
	if err := reportSeries(rep); err != nil {
		return err
	}

	if cfg.PlotPath == "" {
		return nil
	}
	if err := WriteConvergencePlot(cfg.PlotPath, cfg.X, cfg.Step, cfg.Halvings); err != nil {
		return err
	}
	rep.printf("convergence plot written to %s\n", cfg.PlotPath)

	return rep.err
}

// report prints through a locale-aware printer and keeps the first write
// error; later writes are skipped once one has failed.
type report struct {
	p   *message.Printer
	out io.Writer
	err error
}

func (r *report) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	if _, err := r.p.Fprintf(r.out, format, args...); err != nil {
		r.err = fmt.Errorf("demo: write report: %w", err)
	}
}

func reportDerivative(rep *report, cfg Config) error {
	selected, err := derivative.ParseScheme(cfg.Scheme)
	if err != nil {
		return fmt.Errorf("derivative: %w", err)
	}

	rep.printf("f(x) = x·e^-x, f'(%v) with h = %v\n", cfg.X, cfg.Step)
	for _, s := range derivative.Schemes() {
		d, err := derivative.Derivative(xExpNegX, cfg.X, s, cfg.Step)
		if err != nil {
			return fmt.Errorf("derivative: %w", err)
		}
		mark := " "
		if s == selected {
			mark = "*"
		}
		rep.printf("  %s %-10s %.10f\n", mark, s, d)
	}

	d, err := derivative.Estimate(xExpNegX, cfg.X, derivative.WithScheme(selected), derivative.WithStep(cfg.Step))
	if err != nil {
		return fmt.Errorf("derivative: %w", err)
	}
	exact := xExpNegXPrime(cfg.X)
	rep.printf("    %-10s %.10f (|error| of %s = %.3e)\n", "exact", exact, selected, math.Abs(d-exact))

	return rep.err
}

func reportIntegral(rep *report, cfg Config) error {
	rep.printf("integrals on [%v, %v] with n = %d\n", cfg.A, cfg.B, cfg.Intervals)

	rows := []struct {
		name string
		f    fn.Function
		a, b float64
	}{
		{"x·e^-x", xExpNegX, cfg.A, cfg.B},
		{"x", identity, cfg.A, cfg.B},
		{"sin on [0, π]", fn.Func(math.Sin), 0, math.Pi},
		{"sin on [0, 2π]", fn.Func(math.Sin), 0, 2 * math.Pi},
	}
	for _, r := range rows {
		left, err := integrate.Integrate(r.f, r.a, r.b, cfg.Intervals)
		if err != nil {
			return fmt.Errorf("integrate %s: %w", r.name, err)
		}
		mid, err := integrate.Integrate(r.f, r.a, r.b, cfg.Intervals, integrate.WithRule(integrate.Midpoint))
		if err != nil {
			return fmt.Errorf("integrate %s: %w", r.name, err)
		}
		rep.printf("  %-15s left %.8f  midpoint %.8f\n", r.name, left, mid)
	}

	return rep.err
}

func reportQuadratic(rep *report, cfg Config) error {
	r, err := quadratic.Solve(cfg.QuadA, cfg.QuadB, cfg.QuadC, quadratic.WithLinearFallback())
	if err != nil {
		return fmt.Errorf("quadratic: %w", err)
	}
	rep.printf("roots of %vx² + %vx + %v: %d\n", cfg.QuadA, cfg.QuadB, cfg.QuadC, r.Count)
	for i, x := range r.Slice() {
		rep.printf("  root %d: %.10f\n", i+1, x)
	}

	return rep.err
}

func reportDot(rep *report) error {
	v, w := []float64{1, 2}, []float64{3, 4}

	byValue, err := vector.Dot(v, w, len(v))
	if err != nil {
		return fmt.Errorf("dot: %w", err)
	}
	var byRef float64
	if err := vector.DotTo(v, w, len(v), &byRef); err != nil {
		return fmt.Errorf("dot: %w", err)
	}
	rep.printf("dot %v·%v: by value %v, by reference %v\n", v, w, byValue, byRef)

	return rep.err
}

func reportSeries(rep *report) error {
	const x, n = 6.2, 10

	s, err := series.Sum(fn.Func(func(i float64) float64 { return x / i }), 1, n)
	if err != nil {
		return fmt.Errorf("series: %w", err)
	}
	prod, err := series.Product(fn.Func(func(i float64) float64 { return math.Sin(x / i) }), 1, n)
	if err != nil {
		return fmt.Errorf("series: %w", err)
	}
	rep.printf("Σ %v/i = %.10f, Π sin(%v/i) = %.10f (i = 1..%d)\n", x, s, x, prod, n)

	return rep.err
}
