// Package encoding maps data points onto visual attributes of a scatter plot:
// screen position, circle radius, fill color, opacity and hover text.
package encoding

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/okian/scatterviz/internal/domain/model"
	"github.com/okian/scatterviz/internal/domain/scale"
)

const defaultOpacity = 1.0

// Encoder turns data points into visual points. It holds only immutable
// strategy configuration and is safe for concurrent use.
type Encoder struct {
	radius  RadiusRule
	color   ColorRule
	opacity float64
	labels  TooltipLabels
	sortByX bool
}

// New creates an Encoder. Without options it uses the match outcome radius
// rule, the two-band temperature color rule and full opacity.
func New(opts ...Option) *Encoder {
	e := &Encoder{
		radius:  OutcomeRadius{},
		color:   DefaultTwoBand(),
		opacity: defaultOpacity,
		labels: TooltipLabels{
			X:         "Temperature",
			Platform:  "Youtube",
			Attribute: "Manchester United Win",
		},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// RadiusRule returns the active radius strategy.
func (e *Encoder) RadiusRule() RadiusRule { return e.radius }

// ColorRule returns the active color strategy.
func (e *Encoder) ColorRule() ColorRule { return e.color }

// Opacity returns the fixed circle opacity.
func (e *Encoder) Opacity() float64 { return e.opacity }

// Encode computes one VisualPoint per input point. The canvas, both scales
// and every attribute are validated before anything is computed, so on error
// the result is nil. An empty input yields an empty result.
//
// With WithSortByX the output follows ascending x (stable); otherwise it
// follows input order. points is never modified.
func (e *Encoder) Encode(points []model.DataPoint, x, y scale.Linear, canvas model.Canvas) ([]model.VisualPoint, error) {
	if err := canvas.Validate(); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	if err := x.Validate(); err != nil {
		return nil, fmt.Errorf("encode: x axis: %w", err)
	}
	if err := y.Validate(); err != nil {
		return nil, fmt.Errorf("encode: y axis: %w", err)
	}

	ordered := points
	if e.sortByX {
		ordered = slices.Clone(points)
		slices.SortStableFunc(ordered, func(a, b model.DataPoint) int {
			return cmp.Compare(a.X, b.X)
		})
	}

	radii := make([]float64, len(ordered))
	for i, p := range ordered {
		r, err := e.radius.Radius(p.Attribute)
		if err != nil {
			return nil, fmt.Errorf("encode: point %d: %w", i, err)
		}
		radii[i] = r
	}

	out := make([]model.VisualPoint, len(ordered))
	for i, p := range ordered {
		out[i] = model.VisualPoint{
			ScreenX: x.Map(p.X),
			ScreenY: y.Map(p.Y),
			Radius:  radii[i],
			Color:   e.color.Color(p.X),
			Opacity: e.opacity,
			Tooltip: e.labels.Tooltip(p),
		}
	}
	return out, nil
}
