package app

import (
	"strconv"

	"fernpond/internal/core"
	"fernpond/internal/fern"
	"fernpond/internal/scene"

	"github.com/spf13/pflag"
)

// Config represents the command-line parameters shared by the viewer and the
// headless renderer.
type Config struct {
	Width   int
	Height  int
	Seed    int64
	Workers int

	Depth  int
	Angle  float64
	Growth float64
	Fronds int

	Scale    int
	HUDWidth int
	LogLevel string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	p := fern.DefaultParams()
	return &Config{
		Width:    800,
		Height:   600,
		Seed:     42,
		Workers:  1,
		Depth:    p.Depth,
		Angle:    p.Angle,
		Growth:   p.Growth,
		Fronds:   p.FrondCount,
		Scale:    1,
		HUDWidth: 240,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "canvas width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "canvas height in pixels")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random stream")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines generating ferns (1 draws from a single stream)")
	fs.IntVar(&c.Depth, "depth", c.Depth, "recursion depth of each fern")
	fs.Float64Var(&c.Angle, "angle", c.Angle, "global curl angle in radians")
	fs.Float64Var(&c.Growth, "growth", c.Growth, "stem elongation, must be below 1")
	fs.IntVar(&c.Fronds, "fronds", c.Fronds, "number of ferns radiating from the centre")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: none, trace, debug, info, warn, error")
}

// BindViewer attaches the window-only options.
func (c *Config) BindViewer(fs *pflag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "window scale multiplier")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels, 0 hides it")
}

// Size returns the canvas dimensions.
func (c *Config) Size() core.Size {
	return core.Size{W: c.Width, H: c.Height}
}

// Params converts the flag values into fern parameters.
func (c *Config) Params() fern.Params {
	return fern.FromMap(map[string]string{
		"depth":  strconv.Itoa(c.Depth),
		"angle":  strconv.FormatFloat(c.Angle, 'f', -1, 64),
		"growth": strconv.FormatFloat(c.Growth, 'f', -1, 64),
		"fronds": strconv.Itoa(c.Fronds),
	})
}

// Scene builds the scene configuration described by the flags.
func (c *Config) Scene() scene.Config {
	return scene.Config{Size: c.Size(), Seed: c.Seed, Params: c.Params()}
}
