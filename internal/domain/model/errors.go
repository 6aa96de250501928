package model

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidMargin = errors.New("invalid margin")
	ErrInvalidCanvas = errors.New("invalid canvas")
)
