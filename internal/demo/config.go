// SPDX-License-Identifier: MIT

package demo

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config drives the demo report. Every field is read from the environment.
type Config struct {
	X        float64 `env:"LVNUM_X" envDefault:"2.5"`
	Step     float64 `env:"LVNUM_STEP" envDefault:"1e-4"`
	Scheme   string  `env:"LVNUM_SCHEME" envDefault:"central"`
	Halvings int     `env:"LVNUM_HALVINGS" envDefault:"12"`

	A         float64 `env:"LVNUM_A" envDefault:"2"`
	B         float64 `env:"LVNUM_B" envDefault:"3"`
	Intervals int     `env:"LVNUM_INTERVALS" envDefault:"10000"`

	QuadA float64 `env:"LVNUM_QUAD_A" envDefault:"2"`
	QuadB float64 `env:"LVNUM_QUAD_B" envDefault:"4"`
	QuadC float64 `env:"LVNUM_QUAD_C" envDefault:"1"`

	// PlotPath, when set, receives a convergence plot; the extension picks
	// the image format (.png, .svg, .pdf, ...).
	PlotPath string `env:"LVNUM_PLOT"`
}

// ParseConfig loads Config from the process environment.
func ParseConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// ParseConfigFrom loads Config from the given variables instead of the
// process environment.
func ParseConfigFrom(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}
