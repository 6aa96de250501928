// Package config defines process configuration and its loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers a YAML file and environment variables over the defaults.
// - External errors are wrapped with this package's sentinel errors.
package config

import (
	"fmt"
	"strings"

	"github.com/okian/scatterviz/internal/adapters/render"
	"github.com/okian/scatterviz/internal/domain/model"
	"github.com/okian/scatterviz/internal/domain/variant"
)

// Output formats understood by the renderers.
const (
	FormatSVG = render.FormatSVG
	FormatPNG = render.FormatPNG
	FormatPDF = render.FormatPDF
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Serve runs the HTTP API instead of rendering a single chart.
	Serve bool `koanf:"serve"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// Variant selects the encoding preset: weather or mood.
	Variant string `koanf:"variant"`

	// DatasetPath points at a YAML/JSON dataset. Empty uses the built-in one.
	DatasetPath string `koanf:"dataset_path"`

	// OutputPath is where a one-shot render is written. "-" means stdout.
	OutputPath string `koanf:"output_path"`

	// Format of the one-shot render: svg, png or pdf.
	Format string `koanf:"format"`

	// CanvasSize is the width and height of the chart in pixels.
	CanvasSize float64 `koanf:"canvas_size"`

	// Margin is the inset of the plotting area from each edge, in pixels.
	Margin float64 `koanf:"margin"`

	// MaxDatasets caps how many datasets the server keeps. Zero is unbounded.
	MaxDatasets int `koanf:"max_datasets"`
}

// New creates a Config with defaults for a 600px chart.
func New() *Config {
	return &Config{
		LogLevel:    "info",
		Addr:        ":9080",
		Variant:     variant.Weather,
		OutputPath:  "scatter.svg",
		Format:      FormatSVG,
		CanvasSize:  600,
		Margin:      25,
		MaxDatasets: 1000,
	}
}

// Canvas returns the configured drawing surface.
func (c *Config) Canvas() model.Canvas {
	return model.Canvas{Size: c.CanvasSize, Margin: c.Margin}
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if c.Serve && strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if _, err := variant.Lookup(c.Variant); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch c.Format {
	case FormatSVG, FormatPNG, FormatPDF:
	default:
		return fmt.Errorf("%w: unsupported format %q", ErrInvalidConfig, c.Format)
	}
	if !c.Serve && strings.TrimSpace(c.OutputPath) == "" {
		return fmt.Errorf("%w: output_path must not be empty", ErrInvalidConfig)
	}
	if err := c.Canvas().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.MaxDatasets < 0 {
		return fmt.Errorf("%w: max_datasets must not be negative", ErrInvalidConfig)
	}
	return nil
}
