// Package dataset provides the built-in observations and reads datasets
// from YAML or JSON documents.
package dataset

import "github.com/okian/scatterviz/internal/domain/model"

// WeatherName is the name of the built-in dataset.
const WeatherName = "weather-feb-2023"

// Weather returns the daily average temperature, minutes on Youtube and
// Manchester United results recorded from 11/02/23 to 23/02/23. The slice
// is freshly allocated on every call.
func Weather() model.Dataset {
	return model.Dataset{
		Name: WeatherName,
		Points: []model.DataPoint{
			{X: 44, Y: 10, Label: "11/02/23"},
			{X: 51, Y: 237, Attribute: model.Won(), Label: "12/02/23"},
			{X: 43, Y: 90, Label: "13/02/23"},
			{X: 51, Y: 214, Label: "14/02/23"},
			{X: 59, Y: 102, Label: "15/02/23"},
			{X: 63, Y: 165, Attribute: model.Lost(), Label: "16/02/23"},
			{X: 60, Y: 100, Label: "17/02/23"},
			{X: 41, Y: 39, Label: "18/02/23"},
			{X: 48, Y: 60, Attribute: model.Won(), Label: "19/02/23"},
			{X: 61, Y: 128, Label: "20/02/23"},
			{X: 40, Y: 135, Label: "21/02/23"},
			{X: 44, Y: 66, Label: "22/02/23"},
			{X: 32, Y: 126, Attribute: model.Won(), Label: "23/02/23"},
		},
	}
}
