package app

import (
	"flag"

	"mad-life/internal/control"
	"mad-life/internal/core"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	CellSize int
	TPS      int
	Period   float64
	Seed     int64
	Density  float64
	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    120,
		Height:   68,
		CellSize: 8,
		TPS:      60,
		Period:   core.DefaultPeriod,
		Seed:     42,
		Density:  0.25,
		HUDWidth: 180,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "board height in cells")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Float64Var(&c.Period, "period", c.Period, "seconds between generations")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fills")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell fraction for random fills")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "status panel width in pixels (0 hides it)")
}

// Normalize replaces out-of-range values with defaults. Width and Height may
// be zero, which frontends read as "fit the screen".
func (c *Config) Normalize() {
	def := NewConfig()
	if c.Width < 0 {
		c.Width = def.Width
	}
	if c.Height < 0 {
		c.Height = def.Height
	}
	if c.CellSize <= 0 {
		c.CellSize = def.CellSize
	}
	if c.TPS <= 0 {
		c.TPS = def.TPS
	}
	if c.Period <= 0 {
		c.Period = def.Period
	}
	if c.Period < core.MinPeriod {
		c.Period = core.MinPeriod
	}
	if c.Density < 0 || c.Density > 1 {
		c.Density = def.Density
	}
	if c.HUDWidth < 0 {
		c.HUDWidth = 0
	}
}

// Options returns the controller settings derived from c.
func (c *Config) Options() control.Options {
	return control.Options{Period: c.Period, Seed: c.Seed, Density: c.Density}
}
