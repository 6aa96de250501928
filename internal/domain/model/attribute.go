package model

import "strconv"

// Outcome is the three-valued result of a match on a given day.
type Outcome int

const (
	// OutcomeNone means no match was played. It is the zero value.
	OutcomeNone Outcome = iota
	// OutcomeWin means the team played and won.
	OutcomeWin
	// OutcomeLoss means the team played and drew or lost.
	OutcomeLoss
)

// String renders the outcome the way the tooltip prints it.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "true"
	case OutcomeLoss:
		return "false"
	default:
		return "null"
	}
}

// AttributeKind tells which form a present Attribute takes.
type AttributeKind int

const (
	KindAbsent AttributeKind = iota
	KindOutcome
	KindScore
)

// Attribute is the categorical field of a DataPoint. It holds either a match
// outcome or a mood score; the zero value is an absent attribute.
type Attribute struct {
	kind    AttributeKind
	outcome Outcome
	score   float64
}

// Absent returns the attribute of a day on which no event occurred.
func Absent() Attribute { return Attribute{} }

// Won returns a winning match outcome.
func Won() Attribute { return Attribute{kind: KindOutcome, outcome: OutcomeWin} }

// Lost returns a non-winning match outcome.
func Lost() Attribute { return Attribute{kind: KindOutcome, outcome: OutcomeLoss} }

// FromOutcome converts an Outcome into an Attribute. OutcomeNone yields Absent.
func FromOutcome(o Outcome) Attribute {
	switch o {
	case OutcomeWin:
		return Won()
	case OutcomeLoss:
		return Lost()
	default:
		return Absent()
	}
}

// Mood returns a mood score attribute.
func Mood(score float64) Attribute { return Attribute{kind: KindScore, score: score} }

// Kind reports which form the attribute takes.
func (a Attribute) Kind() AttributeKind { return a.kind }

// Outcome returns the match outcome; absent and score attributes report OutcomeNone.
func (a Attribute) Outcome() Outcome {
	if a.kind != KindOutcome {
		return OutcomeNone
	}
	return a.outcome
}

// Score returns the mood score and whether one is present.
func (a Attribute) Score() (float64, bool) {
	return a.score, a.kind == KindScore
}

// String renders the raw attribute value for tooltips.
func (a Attribute) String() string {
	if a.kind == KindScore {
		return strconv.FormatFloat(a.score, 'f', -1, 64)
	}
	return a.Outcome().String()
}
