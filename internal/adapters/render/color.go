package render

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor resolves an SVG 1.1 color name or #rrggbb value and applies opacity
// in [0, 1] as alpha.
func ParseColor(s string, opacity float64) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	var c color.NRGBA
	if rgba, ok := colornames.Map[s]; ok {
		c = color.NRGBA{R: rgba.R, G: rgba.G, B: rgba.B, A: 255}
	} else {
		hex, found := strings.CutPrefix(s, "#")
		if !found || len(hex) != 6 {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
		}
		c = color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
	}
	c.A = uint8(math.Round(math.Max(0, math.Min(1, opacity)) * 255))
	return c, nil
}
