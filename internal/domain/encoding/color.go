package encoding

// Band names reported by ColorRule.Band.
const (
	BandCool = "cool"
	BandWarm = "warm"
	BandLow  = "low"
	BandMid  = "mid"
	BandHigh = "high"
)

// ColorRule derives a fill color from a point's x value.
// The set of rules is closed: TwoBandColor and ThreeBandColor.
type ColorRule interface {
	Name() string
	// Band returns the name of the band x falls into.
	Band(x float64) string
	// Color returns the fill color for x.
	Color(x float64) string

	colorRule()
}

// TwoBandColor splits x at Threshold: below is cool, the threshold itself
// and above is warm.
type TwoBandColor struct {
	Threshold float64
	Cool      string
	Warm      string
}

// DefaultTwoBand returns the temperature rule: blue below 55, red otherwise.
func DefaultTwoBand() TwoBandColor {
	return TwoBandColor{Threshold: 55, Cool: "blue", Warm: "red"}
}

func (TwoBandColor) Name() string { return "two-band" }

func (r TwoBandColor) Band(x float64) string {
	if x < r.Threshold {
		return BandCool
	}
	return BandWarm
}

func (r TwoBandColor) Color(x float64) string {
	if r.Band(x) == BandCool {
		return r.Cool
	}
	return r.Warm
}

func (TwoBandColor) colorRule() {}

// ThreeBandColor splits x into low (x < Low), high (x > High) and mid for
// everything else, so both Low and High themselves are mid.
type ThreeBandColor struct {
	Low       float64
	High      float64
	LowColor  string
	MidColor  string
	HighColor string
}

// DefaultThreeBand returns the happiness rule: black below 3, green above
// 3.5, orange otherwise.
func DefaultThreeBand() ThreeBandColor {
	return ThreeBandColor{Low: 3, High: 3.5, LowColor: "black", MidColor: "orange", HighColor: "green"}
}

func (ThreeBandColor) Name() string { return "three-band" }

func (r ThreeBandColor) Band(x float64) string {
	switch {
	case x < r.Low:
		return BandLow
	case x > r.High:
		return BandHigh
	default:
		return BandMid
	}
}

func (r ThreeBandColor) Color(x float64) string {
	switch r.Band(x) {
	case BandLow:
		return r.LowColor
	case BandHigh:
		return r.HighColor
	default:
		return r.MidColor
	}
}

func (ThreeBandColor) colorRule() {}
