// Package config holds the defaults and command-line configuration for
// driftfield.
package config

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "driftfield"
	TPS          = 60

	// Colours
	ParticleColor   = "#7a9eaa"
	BackgroundColor = "#0a0e13"
	BackdropTint    = "#1c2a33"

	// Backdrop texture cell in pixels
	BackdropCell = 8

	// Entrance fade, seconds
	FadeDuration = 1.0

	// Terminal cell size in virtual pixels
	CellWidth  = 8
	CellHeight = 16
)

// Backends
const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
)

// Config is the resolved runtime configuration
type Config struct {
	Backend     string
	Width       int
	Height      int
	Title       string
	TPS         int
	Color       string
	Background  string
	Backdrop    bool
	Fade        float64
	PauseHidden bool
	Seed        int64
	Debug       bool
	CellWidth   int
	CellHeight  int
	Verbose     bool
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Backend:     BackendWindow,
		Width:       WindowWidth,
		Height:      WindowHeight,
		Title:       WindowTitle,
		TPS:         TPS,
		Color:       ParticleColor,
		Background:  BackgroundColor,
		Backdrop:    true,
		Fade:        FadeDuration,
		PauseHidden: true,
		CellWidth:   CellWidth,
		CellHeight:  CellHeight,
	}
}

// Parse reads flags from args (without the program name) on top of the
// defaults and validates the result.
func Parse(name string, args []string) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.Backend, "backend", cfg.Backend, "renderer: window or terminal")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "initial window width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "initial window height")
	fs.StringVar(&cfg.Title, "title", cfg.Title, "window title")
	fs.IntVar(&cfg.TPS, "tps", cfg.TPS, "frames per second")
	fs.StringVar(&cfg.Color, "color", cfg.Color, "particle colour (hex)")
	fs.StringVar(&cfg.Background, "background", cfg.Background, "background colour (hex)")
	fs.BoolVar(&cfg.Backdrop, "backdrop", cfg.Backdrop, "draw a noise backdrop behind the field")
	fs.Float64Var(&cfg.Fade, "fade", cfg.Fade, "entrance fade in seconds, 0 disables")
	fs.BoolVar(&cfg.PauseHidden, "pause-hidden", cfg.PauseHidden, "stop rendering while the window is unfocused")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 uses the clock")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "show the debug overlay")
	fs.IntVar(&cfg.CellWidth, "cell-width", cfg.CellWidth, "terminal cell width in virtual pixels")
	fs.IntVar(&cfg.CellHeight, "cell-height", cfg.CellHeight, "terminal cell height in virtual pixels")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log resize events")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks every field and reports all problems at once
func (c Config) Validate() error {
	var errs []error

	if c.Backend != BackendWindow && c.Backend != BackendTerminal {
		errs = append(errs, fmt.Errorf("unknown backend %q", c.Backend))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", c.TPS))
	}
	if _, err := ParseColor(c.Color); err != nil {
		errs = append(errs, fmt.Errorf("color: %w", err))
	}
	if _, err := ParseColor(c.Background); err != nil {
		errs = append(errs, fmt.Errorf("background: %w", err))
	}
	if c.Fade < 0 {
		errs = append(errs, fmt.Errorf("fade %v must not be negative", c.Fade))
	}
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("cell size %dx%d must be positive", c.CellWidth, c.CellHeight))
	}

	return errors.Join(errs...)
}

// FrameInterval is the wall-clock time between frames
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.TPS)
}

// FadeDuration returns the fade as a duration
func (c Config) FadeDuration() time.Duration {
	return time.Duration(c.Fade * float64(time.Second))
}

// ParticleRGBA returns the parsed particle colour
func (c Config) ParticleRGBA() color.RGBA {
	col, _ := ParseColor(c.Color)
	return col
}

// BackgroundRGBA returns the parsed background colour
func (c Config) BackgroundRGBA() color.RGBA {
	col, _ := ParseColor(c.Background)
	return col
}

// TintRGBA returns the backdrop tint
func (c Config) TintRGBA() color.RGBA {
	col, _ := ParseColor(BackdropTint)
	return col
}

// ParseColor parses "#rrggbb" or "#rgb" into an opaque colour
func ParseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
