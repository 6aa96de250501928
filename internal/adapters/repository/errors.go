package repository

import "errors"

// Sentinel kinds for repository errors.
var (
	ErrNotFound = errors.New("dataset not found")
	ErrFull     = errors.New("dataset store is full")
)
