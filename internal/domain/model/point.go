// Package model contains domain models passed between layers.
package model

// DataPoint is one observation of the dataset.
type DataPoint struct {
	X         float64   // independent variable, e.g. temperature or happiness rating
	Y         float64   // minutes spent on the video platform, non-negative
	Attribute Attribute // categorical attribute driving circle size
	Label     string    // optional free-form label, e.g. the observation date
}

// VisualPoint is the encoded form of a DataPoint, ready to be bound to a
// drawable circle primitive.
type VisualPoint struct {
	ScreenX float64 `json:"screen_x"`
	ScreenY float64 `json:"screen_y"`
	Radius  float64 `json:"radius"`
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity"`
	Tooltip string  `json:"tooltip"`
}

// Dataset is an immutable, named collection of observations.
type Dataset struct {
	ID     string
	Name   string
	Points []DataPoint
}
