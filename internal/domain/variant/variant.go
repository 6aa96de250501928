// Package variant bundles the scales, strategies and labels of each known
// dataset shape into named presets.
package variant

import (
	"fmt"
	"sort"

	"github.com/okian/scatterviz/internal/domain/encoding"
	"github.com/okian/scatterviz/internal/domain/model"
	"github.com/okian/scatterviz/internal/domain/scale"
)

// Preset names.
const (
	Weather = "weather"
	Mood    = "mood"
)

// Axis describes the data domain and the text drawn for one axis.
type Axis struct {
	Min      float64
	Max      float64
	Title    string
	MinLabel string
	MaxLabel string
}

// Variant is everything needed to encode and label one dataset shape.
type Variant struct {
	Name     string
	X        Axis
	Y        Axis
	Radius   encoding.RadiusRule
	Color    encoding.ColorRule
	Opacity  float64
	SortByX  bool
	Tooltips encoding.TooltipLabels
}

// Encoder builds an Encoder configured with the variant's strategies.
func (v Variant) Encoder() *encoding.Encoder {
	return encoding.New(
		encoding.WithRadiusRule(v.Radius),
		encoding.WithColorRule(v.Color),
		encoding.WithOpacity(v.Opacity),
		encoding.WithSortByX(v.SortByX),
		encoding.WithTooltipLabels(v.Tooltips),
	)
}

// Scales returns the x and y scales of the variant laid out on c.
func (v Variant) Scales(c model.Canvas) (x, y scale.Linear) {
	return scale.ForCanvasX(c, v.X.Min, v.X.Max), scale.ForCanvasY(c, v.Y.Min, v.Y.Max)
}

// Encode encodes points with the variant's encoder and scales.
func (v Variant) Encode(points []model.DataPoint, c model.Canvas) ([]model.VisualPoint, error) {
	x, y := v.Scales(c)
	return v.Encoder().Encode(points, x, y, c)
}

var presets = map[string]Variant{
	Weather: {
		Name: Weather,
		X: Axis{
			Min: 0, Max: 100,
			Title:    "Temperature in degrees Fahrenheit",
			MinLabel: "0", MaxLabel: "100",
		},
		Y: Axis{
			Min: 0, Max: 250,
			Title: "Time spent on Youtube in minutes",
			// The published chart labels the top of a 250-minute axis "500".
			MaxLabel: "500",
		},
		Radius:  encoding.OutcomeRadius{},
		Color:   encoding.DefaultTwoBand(),
		Opacity: 1,
		SortByX: true,
		Tooltips: encoding.TooltipLabels{
			X:         "Temperature",
			Platform:  "Youtube",
			Attribute: "Manchester United Win",
		},
	},
	Mood: {
		Name: Mood,
		X: Axis{
			Min: 0, Max: 5,
			Title:    "Happiness (0 = sad, 5 = happy)",
			MinLabel: "0", MaxLabel: "5",
		},
		Y: Axis{
			Min: 0, Max: 250,
			Title:    "Time spent on Youtube in minutes",
			MaxLabel: "250",
		},
		Radius:  encoding.MoodRadius{},
		Color:   encoding.DefaultThreeBand(),
		Opacity: 0.5,
		Tooltips: encoding.TooltipLabels{
			X:         "Happiness",
			Platform:  "Youtube",
			Attribute: "Mood",
		},
	},
}

// Lookup returns the preset registered under name.
func Lookup(name string) (Variant, error) {
	v, ok := presets[name]
	if !ok {
		return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return v, nil
}

// Names lists the registered presets in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
