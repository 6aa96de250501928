package scale

import "errors"

// ErrInvalidScale reports a scale whose domain is empty or whose bounds are not finite.
var ErrInvalidScale = errors.New("invalid scale")
