package encoding

import (
	"fmt"

	"github.com/okian/scatterviz/internal/domain/model"
)

// Circle radii, in pixels.
const (
	RadiusLarge  = 10
	RadiusMedium = 6
	RadiusSmall  = 5
	RadiusTiny   = 3
)

// Mood score thresholds. Both bounds are inclusive.
const (
	moodHighScore = 4
	moodLowScore  = 2
)

// RadiusRule derives a circle radius from a point's categorical attribute.
// The set of rules is closed: OutcomeRadius and MoodRadius.
type RadiusRule interface {
	// Name identifies the rule in logs and configuration.
	Name() string
	// Radius returns the radius for a, or ErrAttributeMismatch when a holds
	// the other kind of attribute.
	Radius(a model.Attribute) (float64, error)

	radiusRule()
}

// OutcomeRadius sizes circles by match outcome: win 10, loss 5, no match 3.
type OutcomeRadius struct{}

func (OutcomeRadius) Name() string { return "outcome" }

func (OutcomeRadius) Radius(a model.Attribute) (float64, error) {
	switch a.Kind() {
	case model.KindAbsent:
		return RadiusTiny, nil
	case model.KindOutcome:
		switch a.Outcome() {
		case model.OutcomeWin:
			return RadiusLarge, nil
		case model.OutcomeLoss:
			return RadiusSmall, nil
		default:
			return RadiusTiny, nil
		}
	default:
		return 0, fmt.Errorf("%w: outcome rule got mood score %s", ErrAttributeMismatch, a)
	}
}

func (OutcomeRadius) radiusRule() {}

// MoodRadius sizes circles by mood score: 4 and above 10, 2 and below 3,
// anything between 6. A missing score is drawn at the smallest size.
type MoodRadius struct{}

func (MoodRadius) Name() string { return "mood" }

func (MoodRadius) Radius(a model.Attribute) (float64, error) {
	switch a.Kind() {
	case model.KindAbsent:
		return RadiusTiny, nil
	case model.KindScore:
		score, _ := a.Score()
		switch {
		case score >= moodHighScore:
			return RadiusLarge, nil
		case score <= moodLowScore:
			return RadiusTiny, nil
		default:
			return RadiusMedium, nil
		}
	default:
		return 0, fmt.Errorf("%w: mood rule got match outcome %s", ErrAttributeMismatch, a)
	}
}

func (MoodRadius) radiusRule() {}
