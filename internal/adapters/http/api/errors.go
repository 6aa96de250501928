package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrBadRequest    = errors.New("bad request")
	ErrEmptyBody     = errors.New("empty request body")
	ErrBodyTooLarge  = errors.New("request body too large")
	ErrMissingDataID = errors.New("missing dataset id")
)
