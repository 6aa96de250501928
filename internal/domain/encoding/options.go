package encoding

// Option applies a configuration option to the Encoder.
type Option func(*Encoder)

// WithRadiusRule selects the radius strategy.
func WithRadiusRule(r RadiusRule) Option {
	return func(e *Encoder) {
		if r != nil {
			e.radius = r
		}
	}
}

// WithColorRule selects the color strategy.
func WithColorRule(c ColorRule) Option {
	return func(e *Encoder) {
		if c != nil {
			e.color = c
		}
	}
}

// WithOpacity sets the fixed opacity applied to every circle. Values outside
// [0, 1] are ignored.
func WithOpacity(opacity float64) Option {
	return func(e *Encoder) {
		if opacity >= 0 && opacity <= 1 {
			e.opacity = opacity
		}
	}
}

// WithTooltipLabels sets the labels used to build hover text.
func WithTooltipLabels(labels TooltipLabels) Option {
	return func(e *Encoder) {
		e.labels = labels
	}
}

// WithSortByX makes Encode order points by ascending x before encoding.
func WithSortByX(sort bool) Option {
	return func(e *Encoder) {
		e.sortByX = sort
	}
}
