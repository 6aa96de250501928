package encoding

import (
	"strconv"
	"strings"

	"github.com/okian/scatterviz/internal/domain/model"
)

// TooltipLabels names the fields shown in a point's hover text.
type TooltipLabels struct {
	X         string // e.g. "Temperature"
	Platform  string // e.g. "Youtube"
	Attribute string // e.g. "Manchester United Win"
}

// Tooltip formats the hover text for p:
//
//	<X>: <x>
//	Minutes on <Platform>: <y>
//	<Attribute>: <attribute>
func (l TooltipLabels) Tooltip(p model.DataPoint) string {
	var b strings.Builder
	b.WriteString(l.X)
	b.WriteString(": ")
	b.WriteString(formatNumber(p.X))
	b.WriteString("\nMinutes on ")
	b.WriteString(l.Platform)
	b.WriteString(": ")
	b.WriteString(formatNumber(p.Y))
	b.WriteString("\n")
	b.WriteString(l.Attribute)
	b.WriteString(": ")
	b.WriteString(p.Attribute.String())
	return b.String()
}

// formatNumber prints the shortest representation, so 44 is "44" and 3.5 is "3.5".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
