package encoding_test

import (
	"errors"
	"testing"

	"github.com/okian/scatterviz/internal/domain/encoding"
	"github.com/okian/scatterviz/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestOutcomeRadius(t *testing.T) {
	Convey("Given the match outcome radius rule", t, func() {
		rule := encoding.OutcomeRadius{}

		Convey("Then it covers every outcome", func() {
			cases := []struct {
				attr model.Attribute
				want float64
			}{
				{model.Won(), 10},
				{model.Lost(), 5},
				{model.Absent(), 3},
				{model.FromOutcome(model.OutcomeNone), 3},
			}
			for _, c := range cases {
				got, err := rule.Radius(c.attr)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, c.want)
			}
		})

		Convey("Then a mood score is a mismatch", func() {
			_, err := rule.Radius(model.Mood(4))
			So(errors.Is(err, encoding.ErrAttributeMismatch), ShouldBeTrue)
		})
	})
}

func TestMoodRadius(t *testing.T) {
	Convey("Given the mood score radius rule", t, func() {
		rule := encoding.MoodRadius{}

		Convey("Then the thresholds are inclusive at both ends", func() {
			cases := map[float64]float64{
				4.0:  10,
				4.5:  10,
				5:    10,
				2.0:  3,
				0:    3,
				3.0:  6,
				3.99: 6,
				2.01: 6,
			}
			for score, want := range cases {
				got, err := rule.Radius(model.Mood(score))
				So(err, ShouldBeNil)
				So(got, ShouldEqual, want)
			}
		})

		Convey("Then a missing score draws the smallest circle", func() {
			got, err := rule.Radius(model.Absent())
			So(err, ShouldBeNil)
			So(got, ShouldEqual, 3)
		})

		Convey("Then a match outcome is a mismatch", func() {
			_, err := rule.Radius(model.Won())
			So(errors.Is(err, encoding.ErrAttributeMismatch), ShouldBeTrue)
		})
	})
}

func TestTwoBandColor(t *testing.T) {
	Convey("Given the temperature color rule", t, func() {
		rule := encoding.DefaultTwoBand()

		Convey("Then 55 is the first warm value", func() {
			So(rule.Band(54.9), ShouldEqual, encoding.BandCool)
			So(rule.Band(55.0), ShouldEqual, encoding.BandWarm)
			So(rule.Color(54.9), ShouldEqual, "blue")
			So(rule.Color(55.0), ShouldEqual, "red")
			So(rule.Color(-20), ShouldEqual, "blue")
		})
	})
}

func TestThreeBandColor(t *testing.T) {
	Convey("Given the happiness color rule", t, func() {
		rule := encoding.DefaultThreeBand()

		Convey("Then both boundaries fall into the mid band", func() {
			So(rule.Band(2.9), ShouldEqual, encoding.BandLow)
			So(rule.Band(3.0), ShouldEqual, encoding.BandMid)
			So(rule.Band(3.5), ShouldEqual, encoding.BandMid)
			So(rule.Band(3.51), ShouldEqual, encoding.BandHigh)
		})

		Convey("Then each band has its color", func() {
			So(rule.Color(2.9), ShouldEqual, "black")
			So(rule.Color(3.5), ShouldEqual, "orange")
			So(rule.Color(3.51), ShouldEqual, "green")
		})
	})
}

func TestTooltipLabels(t *testing.T) {
	Convey("Given tooltip labels", t, func() {
		labels := encoding.TooltipLabels{X: "Temperature", Platform: "Youtube", Attribute: "Manchester United Win"}

		Convey("Then the text lists x, minutes and the attribute on separate lines", func() {
			p := model.DataPoint{X: 51, Y: 237, Attribute: model.Won()}
			So(labels.Tooltip(p), ShouldEqual, "Temperature: 51\nMinutes on Youtube: 237\nManchester United Win: true")
		})

		Convey("Then an absent outcome prints as null", func() {
			p := model.DataPoint{X: 44, Y: 10}
			So(labels.Tooltip(p), ShouldEqual, "Temperature: 44\nMinutes on Youtube: 10\nManchester United Win: null")
		})

		Convey("Then fractional values keep their precision", func() {
			mood := encoding.TooltipLabels{X: "Happiness", Platform: "Youtube", Attribute: "Mood"}
			p := model.DataPoint{X: 3.5, Y: 42.25, Attribute: model.Mood(4.5)}
			So(mood.Tooltip(p), ShouldEqual, "Happiness: 3.5\nMinutes on Youtube: 42.25\nMood: 4.5")
		})
	})
}
