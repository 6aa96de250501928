package encoding_test

import (
	"errors"
	"testing"

	"github.com/okian/scatterviz/internal/domain/encoding"
	"github.com/okian/scatterviz/internal/domain/model"
	"github.com/okian/scatterviz/internal/domain/scale"
	. "github.com/smartystreets/goconvey/convey"
)

func TestEncoder_Encode(t *testing.T) {
	canvas := model.Canvas{Size: 600, Margin: 25}
	xs := scale.New(0, 100, 25, 575)
	ys := scale.New(0, 250, 575, 25)

	Convey("Given a default encoder", t, func() {
		enc := encoding.New()

		Convey("When encoding a single no-match day", func() {
			out, err := enc.Encode([]model.DataPoint{{X: 44, Y: 10}}, xs, ys, canvas)

			Convey("Then position, size and color follow the scales and rules", func() {
				So(err, ShouldBeNil)
				So(out, ShouldHaveLength, 1)
				So(out[0].ScreenX, ShouldAlmostEqual, 267, 1e-9)
				So(out[0].ScreenY, ShouldAlmostEqual, 553, 1e-9)
				So(out[0].Radius, ShouldEqual, 3)
				So(out[0].Color, ShouldEqual, "blue")
				So(enc.ColorRule().Band(44), ShouldEqual, encoding.BandCool)
				So(out[0].Opacity, ShouldEqual, 1.0)
				So(out[0].Tooltip, ShouldEqual, "Temperature: 44\nMinutes on Youtube: 10\nManchester United Win: null")
			})
		})

		Convey("When encoding an empty dataset", func() {
			out, err := enc.Encode(nil, xs, ys, canvas)

			Convey("Then it returns an empty result without error", func() {
				So(err, ShouldBeNil)
				So(out, ShouldNotBeNil)
				So(out, ShouldBeEmpty)
			})
		})

		Convey("When the x domain is degenerate", func() {
			out, err := enc.Encode([]model.DataPoint{{X: 1, Y: 1}}, scale.New(5, 5, 25, 575), ys, canvas)

			Convey("Then it fails with ErrInvalidScale and no output", func() {
				So(errors.Is(err, encoding.ErrInvalidScale), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "x axis")
				So(out, ShouldBeNil)
			})
		})

		Convey("When the y domain is degenerate", func() {
			_, err := enc.Encode(nil, xs, scale.New(0, 0, 575, 25), canvas)

			Convey("Then even an empty dataset reports ErrInvalidScale", func() {
				So(errors.Is(err, encoding.ErrInvalidScale), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "y axis")
			})
		})

		Convey("When the margin is too large for the canvas", func() {
			_, err := enc.Encode([]model.DataPoint{{X: 1, Y: 1}}, xs, ys, model.Canvas{Size: 600, Margin: 300})

			Convey("Then it fails with ErrInvalidMargin", func() {
				So(errors.Is(err, encoding.ErrInvalidMargin), ShouldBeTrue)
			})
		})

		Convey("When one point carries a mood score", func() {
			points := []model.DataPoint{
				{X: 44, Y: 10, Attribute: model.Won()},
				{X: 45, Y: 10, Attribute: model.Mood(3)},
			}
			out, err := enc.Encode(points, xs, ys, canvas)

			Convey("Then nothing is emitted", func() {
				So(errors.Is(err, encoding.ErrAttributeMismatch), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "point 1")
				So(out, ShouldBeNil)
			})
		})

		Convey("When encoding out-of-domain values", func() {
			out, err := enc.Encode([]model.DataPoint{{X: 120, Y: 300}}, xs, ys, canvas)

			Convey("Then positions extrapolate past the margin", func() {
				So(err, ShouldBeNil)
				So(out[0].ScreenX, ShouldAlmostEqual, 685, 1e-9)
				So(out[0].ScreenY, ShouldAlmostEqual, -85, 1e-9)
			})
		})

		Convey("When encoding unsorted points", func() {
			points := []model.DataPoint{{X: 60, Y: 1}, {X: 40, Y: 2}}
			out, err := enc.Encode(points, xs, ys, canvas)

			Convey("Then input order is kept", func() {
				So(err, ShouldBeNil)
				So(out[0].Color, ShouldEqual, "red")
				So(out[1].Color, ShouldEqual, "blue")
			})
		})
	})

	Convey("Given an encoder that sorts by x", t, func() {
		enc := encoding.New(encoding.WithSortByX(true))
		points := []model.DataPoint{
			{X: 51, Y: 237, Attribute: model.Won(), Label: "a"},
			{X: 32, Y: 126, Attribute: model.Won(), Label: "b"},
			{X: 51, Y: 214, Label: "c"},
			{X: 44, Y: 10, Label: "d"},
		}
		original := append([]model.DataPoint(nil), points...)

		Convey("When encoding", func() {
			out, err := enc.Encode(points, xs, ys, canvas)

			Convey("Then output follows ascending x and ties keep input order", func() {
				So(err, ShouldBeNil)
				So(out, ShouldHaveLength, 4)
				So(out[0].Tooltip, ShouldStartWith, "Temperature: 32\n")
				So(out[1].Tooltip, ShouldStartWith, "Temperature: 44\n")
				So(out[2].Tooltip, ShouldContainSubstring, "Minutes on Youtube: 237\n")
				So(out[3].Tooltip, ShouldContainSubstring, "Minutes on Youtube: 214\n")
			})

			Convey("And the caller's slice is untouched", func() {
				So(points, ShouldResemble, original)
			})
		})
	})

	Convey("Given a mood encoder", t, func() {
		enc := encoding.New(
			encoding.WithRadiusRule(encoding.MoodRadius{}),
			encoding.WithColorRule(encoding.DefaultThreeBand()),
			encoding.WithOpacity(0.5),
			encoding.WithTooltipLabels(encoding.TooltipLabels{X: "Happiness", Platform: "Youtube", Attribute: "Mood"}),
		)
		moodX := scale.New(0, 5, 25, 575)

		Convey("When encoding a happy day", func() {
			out, err := enc.Encode([]model.DataPoint{{X: 3.5, Y: 125, Attribute: model.Mood(4)}}, moodX, ys, canvas)

			Convey("Then the mood strategies apply", func() {
				So(err, ShouldBeNil)
				So(out[0].ScreenX, ShouldAlmostEqual, 410, 1e-9)
				So(out[0].ScreenY, ShouldAlmostEqual, 300, 1e-9)
				So(out[0].Radius, ShouldEqual, 10)
				So(out[0].Color, ShouldEqual, "orange")
				So(out[0].Opacity, ShouldEqual, 0.5)
				So(out[0].Tooltip, ShouldEqual, "Happiness: 3.5\nMinutes on Youtube: 125\nMood: 4")
			})
		})

		Convey("Then accessors expose the configuration", func() {
			So(enc.RadiusRule().Name(), ShouldEqual, "mood")
			So(enc.ColorRule().Name(), ShouldEqual, "three-band")
			So(enc.Opacity(), ShouldEqual, 0.5)
		})
	})

	Convey("Given invalid options", t, func() {
		enc := encoding.New(encoding.WithOpacity(1.5), encoding.WithRadiusRule(nil), encoding.WithColorRule(nil))

		Convey("Then defaults are kept", func() {
			So(enc.Opacity(), ShouldEqual, 1.0)
			So(enc.RadiusRule().Name(), ShouldEqual, "outcome")
			So(enc.ColorRule().Name(), ShouldEqual, "two-band")
		})
	})
}
