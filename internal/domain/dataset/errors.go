package dataset

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidDataset = errors.New("invalid dataset")
	ErrLoadDataset    = errors.New("load dataset failed")
)

var (
	errMissingX       = errors.New("missing x")
	errMissingY       = errors.New("missing y")
	errNotFinite      = errors.New("values must be finite")
	errNegativeY      = errors.New("y must not be negative")
	errBothAttributes = errors.New("outcome and mood are mutually exclusive")
)
