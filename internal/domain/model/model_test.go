package model_test

import (
	"errors"
	"math"
	"testing"

	"github.com/okian/scatterviz/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAttribute(t *testing.T) {
	Convey("Given match outcome attributes", t, func() {
		Convey("The zero value is absent", func() {
			var a model.Attribute
			So(a.Kind(), ShouldEqual, model.KindAbsent)
			So(a.Outcome(), ShouldEqual, model.OutcomeNone)
			So(a.String(), ShouldEqual, "null")
		})

		Convey("Win and loss are distinct present states", func() {
			So(model.Won().Kind(), ShouldEqual, model.KindOutcome)
			So(model.Won().Outcome(), ShouldEqual, model.OutcomeWin)
			So(model.Won().String(), ShouldEqual, "true")
			So(model.Lost().Outcome(), ShouldEqual, model.OutcomeLoss)
			So(model.Lost().String(), ShouldEqual, "false")
		})

		Convey("FromOutcome maps every outcome", func() {
			So(model.FromOutcome(model.OutcomeWin), ShouldResemble, model.Won())
			So(model.FromOutcome(model.OutcomeLoss), ShouldResemble, model.Lost())
			So(model.FromOutcome(model.OutcomeNone), ShouldResemble, model.Absent())
		})
	})

	Convey("Given a mood score attribute", t, func() {
		a := model.Mood(3.5)

		Convey("Then it reports the score", func() {
			score, ok := a.Score()
			So(ok, ShouldBeTrue)
			So(score, ShouldEqual, 3.5)
			So(a.Kind(), ShouldEqual, model.KindScore)
			So(a.Outcome(), ShouldEqual, model.OutcomeNone)
			So(a.String(), ShouldEqual, "3.5")
		})

		Convey("And absent attributes report no score", func() {
			_, ok := model.Absent().Score()
			So(ok, ShouldBeFalse)
		})
	})
}

func TestCanvas_Validate(t *testing.T) {
	Convey("Given canvas configurations", t, func() {
		Convey("A 600px canvas with a 25px margin is valid", func() {
			c := model.Canvas{Size: 600, Margin: 25}
			So(c.Validate(), ShouldBeNil)
			So(c.Inner(), ShouldEqual, 550)
		})

		Convey("A zero margin is valid", func() {
			So(model.Canvas{Size: 600}.Validate(), ShouldBeNil)
		})

		Convey("A margin covering half the canvas is rejected", func() {
			err := model.Canvas{Size: 600, Margin: 300}.Validate()
			So(errors.Is(err, model.ErrInvalidMargin), ShouldBeTrue)
		})

		Convey("A negative margin is rejected", func() {
			err := model.Canvas{Size: 600, Margin: -1}.Validate()
			So(errors.Is(err, model.ErrInvalidMargin), ShouldBeTrue)
		})

		Convey("A non-positive or non-finite size is rejected", func() {
			So(errors.Is(model.Canvas{Size: -10}.Validate(), model.ErrInvalidCanvas), ShouldBeTrue)
			So(errors.Is(model.Canvas{Size: math.NaN()}.Validate(), model.ErrInvalidCanvas), ShouldBeTrue)
		})
	})
}
