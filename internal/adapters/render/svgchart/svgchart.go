// Package svgchart draws an encoded chart as a standalone SVG document with
// a hover tooltip on every circle.
package svgchart

import (
	"context"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"

	"github.com/okian/scatterviz/internal/adapters/render"
)

const (
	marginDash = 5
	// decimals keeps encoded coordinates to a hundredth of a pixel.
	decimals = 2
)

// Renderer writes charts as SVG.
type Renderer struct{}

// New returns an SVG renderer.
func New() *Renderer { return &Renderer{} }

func (*Renderer) Format() string      { return render.FormatSVG }
func (*Renderer) ContentType() string { return render.ContentType(render.FormatSVG) }

// Render draws the canvas border, the dashed margin box, one circle per point
// in order, then the axis titles and end labels.
func (*Renderer) Render(ctx context.Context, w io.Writer, c render.Chart) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("render svg: %w", err)
	}
	if err := c.Canvas.Validate(); err != nil {
		return fmt.Errorf("render svg: %w", err)
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Decimals = decimals

	size := c.Canvas.Size
	m := c.Canvas.Margin

	canvas.Start(size, size)
	if c.Title != "" {
		canvas.Title(c.Title)
	}

	canvas.Rect(0, 0, size, size, `fill="none"`, `stroke="black"`)
	canvas.Rect(m, m, c.Canvas.Inner(), c.Canvas.Inner(),
		`fill="none"`, `stroke="black"`, fmt.Sprintf(`stroke-dasharray="%d"`, marginDash))

	for _, p := range c.Points {
		canvas.Group()
		canvas.Title(p.Tooltip)
		attrs := []string{fmt.Sprintf(`fill="%s"`, p.Color)}
		if p.Opacity < 1 {
			attrs = append(attrs, fmt.Sprintf(`fill-opacity="%g"`, p.Opacity))
		}
		canvas.Circle(p.ScreenX, p.ScreenY, p.Radius, attrs...)
		canvas.Gend()
	}

	bottom := size - m/2
	if c.X.Title != "" {
		canvas.Text(size/2, size-m/4, c.X.Title, `text-anchor="middle"`)
	}
	if c.X.MinLabel != "" {
		canvas.Text(m, bottom, c.X.MinLabel, `text-anchor="middle"`)
	}
	if c.X.MaxLabel != "" {
		canvas.Text(size-m, bottom, c.X.MaxLabel, `text-anchor="end"`)
	}

	// Y axis text is drawn in a frame rotated a quarter turn counterclockwise,
	// where x runs bottom to top and is negative.
	canvas.Gtransform("rotate(-90)")
	if c.Y.Title != "" {
		canvas.Text(-size/2, m/2, c.Y.Title, `text-anchor="middle"`, `alignment-baseline="middle"`)
	}
	if c.Y.MaxLabel != "" {
		canvas.Text(-m, m/2, c.Y.MaxLabel, `text-anchor="end"`, `alignment-baseline="middle"`)
	}
	canvas.Gend()

	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("%w: %w", render.ErrWrite, ew.err)
	}
	return nil
}

// errWriter remembers the first write error, since svgo drops them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(b []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(b)
	if err != nil {
		e.err = err
	}
	return n, err
}
