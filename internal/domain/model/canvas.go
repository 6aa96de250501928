package model

import (
	"fmt"
	"math"
)

// Canvas describes the square drawing surface and its inner margin.
type Canvas struct {
	Size   float64
	Margin float64
}

// Validate rejects margins that would collapse or invert the drawable region.
func (c Canvas) Validate() error {
	if math.IsNaN(c.Size) || math.IsInf(c.Size, 0) || c.Size <= 0 {
		return fmt.Errorf("%w: size %v", ErrInvalidCanvas, c.Size)
	}
	if math.IsNaN(c.Margin) || c.Margin < 0 || 2*c.Margin >= c.Size {
		return fmt.Errorf("%w: margin %v for canvas size %v", ErrInvalidMargin, c.Margin, c.Size)
	}
	return nil
}

// Inner returns the extent of the drawable region inside the margin.
func (c Canvas) Inner() float64 {
	return c.Size - 2*c.Margin
}
