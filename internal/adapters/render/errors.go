package render

import "errors"

// Sentinel kinds for render errors.
var (
	ErrUnknownColor      = errors.New("unknown color")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrWrite             = errors.New("write chart failed")
)
