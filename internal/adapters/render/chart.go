// Package render defines the chart handed to output renderers and the
// helpers they share.
package render

import (
	"context"
	"io"

	"github.com/okian/scatterviz/internal/domain/model"
)

// Axis holds the text drawn along one axis.
type Axis struct {
	Title    string
	MinLabel string
	MaxLabel string
}

// Chart is a fully encoded scatter plot. Points are drawn in order, so later
// points sit on top of earlier ones.
type Chart struct {
	Title  string
	Canvas model.Canvas
	X      Axis
	Y      Axis
	Points []model.VisualPoint
}

// Renderer writes a chart in one output format.
type Renderer interface {
	// Format is the short name of the output, e.g. "svg".
	Format() string
	// ContentType is the MIME type of the output.
	ContentType() string
	// Render writes c to w.
	Render(ctx context.Context, w io.Writer, c Chart) error
}
