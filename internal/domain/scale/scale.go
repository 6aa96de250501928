// Package scale maps data values linearly onto screen coordinates.
package scale

import (
	"fmt"
	"math"

	"github.com/okian/scatterviz/internal/domain/model"
)

// Linear maps the domain [DomainMin, DomainMax] onto the range
// [RangeMin, RangeMax]. The range may be inverted.
type Linear struct {
	DomainMin float64
	DomainMax float64
	RangeMin  float64
	RangeMax  float64
}

// New returns a linear scale for the given domain and range.
func New(d0, d1, r0, r1 float64) Linear {
	return Linear{DomainMin: d0, DomainMax: d1, RangeMin: r0, RangeMax: r1}
}

// ForCanvasX returns a horizontal scale spanning the drawable region of c,
// left to right.
func ForCanvasX(c model.Canvas, d0, d1 float64) Linear {
	return New(d0, d1, c.Margin, c.Size-c.Margin)
}

// ForCanvasY returns a vertical scale spanning the drawable region of c,
// bottom to top, so larger values plot closer to the top edge.
func ForCanvasY(c model.Canvas, d0, d1 float64) Linear {
	return New(d0, d1, c.Size-c.Margin, c.Margin)
}

// Validate reports ErrInvalidScale for a degenerate or non-finite scale.
func (s Linear) Validate() error {
	for _, v := range []float64{s.DomainMin, s.DomainMax, s.RangeMin, s.RangeMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite bound in %s", ErrInvalidScale, s)
		}
	}
	if s.DomainMin == s.DomainMax {
		return fmt.Errorf("%w: empty domain in %s", ErrInvalidScale, s)
	}
	return nil
}

// Map interpolates v into the range. Values outside the domain extrapolate;
// nothing is clamped. Map assumes Validate succeeded.
func (s Linear) Map(v float64) float64 {
	t := (v - s.DomainMin) / (s.DomainMax - s.DomainMin)
	if t == 1 {
		// r0 + (r1-r0) can round away from r1.
		return s.RangeMax
	}
	return s.RangeMin + t*(s.RangeMax-s.RangeMin)
}

func (s Linear) String() string {
	return fmt.Sprintf("domain [%g, %g] range [%g, %g]", s.DomainMin, s.DomainMax, s.RangeMin, s.RangeMax)
}
