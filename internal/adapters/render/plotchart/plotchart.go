// Package plotchart exports an encoded chart as PNG, SVG or PDF through the
// gonum/plot vector graphics backends. Points are drawn straight onto the
// page at their encoded coordinates; one canvas unit is one typographic
// point, and one PNG pixel.
package plotchart

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"math"
	"slices"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/okian/scatterviz/internal/adapters/render"
	"github.com/okian/scatterviz/internal/domain/model"
)

const (
	// pointsPerInch makes one PNG pixel equal one canvas unit.
	pointsPerInch = 72
	fontSize      = 12
	marginDash    = 5
)

// Formats lists the supported output formats.
func Formats() []string {
	return []string{render.FormatPDF, render.FormatPNG, render.FormatSVG}
}

// Renderer writes charts in one gonum/plot output format.
type Renderer struct {
	format string
}

// New returns a renderer for format, or ErrUnsupportedFormat.
func New(format string) (*Renderer, error) {
	if !slices.Contains(Formats(), format) {
		return nil, fmt.Errorf("%w: %q", render.ErrUnsupportedFormat, format)
	}
	return &Renderer{format: format}, nil
}

func (r *Renderer) Format() string      { return r.format }
func (r *Renderer) ContentType() string { return render.ContentType(r.format) }

// Render draws the canvas border, the dashed margin box, the circles in order
// and the axis text.
func (r *Renderer) Render(ctx context.Context, w io.Writer, c render.Chart) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("render %s: %w", r.format, err)
	}
	if err := c.Canvas.Validate(); err != nil {
		return fmt.Errorf("render %s: %w", r.format, err)
	}

	size := vg.Points(c.Canvas.Size)
	page := newPage(r.format, size)
	dc := draw.New(page)
	pg := pager{dc: &dc, size: c.Canvas.Size}

	pg.frame(c.Canvas)
	if err := pg.points(c.Points); err != nil {
		return fmt.Errorf("render %s: %w", r.format, err)
	}
	pg.text(c)

	if _, err := page.WriteTo(w); err != nil {
		return fmt.Errorf("%w: %w", render.ErrWrite, err)
	}
	return nil
}

func newPage(format string, size vg.Length) vg.CanvasWriterTo {
	switch format {
	case render.FormatPNG:
		return vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(size, size), vgimg.UseDPI(pointsPerInch))}
	case render.FormatPDF:
		return vgpdf.New(size, size)
	default:
		return vgsvg.New(size, size)
	}
}

// pager draws in screen coordinates: origin top left, y growing downwards.
type pager struct {
	dc   *draw.Canvas
	size float64
}

func (p pager) at(x, y float64) vg.Point {
	return vg.Point{X: vg.Points(x), Y: vg.Points(p.size - y)}
}

func (p pager) rect(x0, y0, x1, y1 float64, sty draw.LineStyle) {
	p.dc.StrokeLines(sty, []vg.Point{
		p.at(x0, y0), p.at(x1, y0), p.at(x1, y1), p.at(x0, y1), p.at(x0, y0),
	})
}

func (p pager) points(points []model.VisualPoint) error {
	for i, pt := range points {
		col, err := render.ParseColor(pt.Color, pt.Opacity)
		if err != nil {
			return fmt.Errorf("point %d: %w", i, err)
		}
		sty := draw.GlyphStyle{Color: col, Radius: vg.Points(pt.Radius), Shape: draw.CircleGlyph{}}
		p.dc.DrawGlyphNoClip(sty, p.at(pt.ScreenX, pt.ScreenY))
	}
	return nil
}

// frame draws the solid canvas border and the dashed margin box.
func (p pager) frame(c model.Canvas) {
	border := draw.LineStyle{Color: color.Black, Width: vg.Points(1)}
	p.rect(0, 0, c.Size, c.Size, border)
	dashed := border
	dashed.Dashes = []vg.Length{vg.Points(marginDash), vg.Points(marginDash)}
	p.rect(c.Margin, c.Margin, c.Size-c.Margin, c.Size-c.Margin, dashed)
}

func (p pager) text(c render.Chart) {
	size, m := c.Canvas.Size, c.Canvas.Margin
	sty := draw.TextStyle{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, fontSize),
		XAlign:  draw.XCenter,
		YAlign:  draw.YBottom,
		Handler: plot.DefaultTextHandler,
	}
	p.label(sty, size/2, size-m/4, c.X.Title)
	p.label(sty, m, size-m/2, c.X.MinLabel)
	right := sty
	right.XAlign = draw.XRight
	p.label(right, size-m, size-m/2, c.X.MaxLabel)

	// Y axis text reads bottom to top.
	up := sty
	up.Rotation = math.Pi / 2
	up.YAlign = draw.YCenter
	p.label(up, m/2, size/2, c.Y.Title)
	up.XAlign = draw.XRight
	p.label(up, m/2, m, c.Y.MaxLabel)
}

func (p pager) label(sty draw.TextStyle, x, y float64, txt string) {
	if txt == "" {
		return
	}
	p.dc.FillText(sty, p.at(x, y), txt)
}
