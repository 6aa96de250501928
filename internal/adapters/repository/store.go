// Package repository keeps datasets available for encoding and rendering.
package repository

import (
	"context"

	"github.com/okian/scatterviz/internal/domain/model"
)

// Summary is the listing shape of a stored dataset.
type Summary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// Store provides read/write access to datasets.
type Store interface {
	// Put stores ds under a newly assigned id and returns the stored copy.
	Put(ctx context.Context, ds model.Dataset) (model.Dataset, error)
	// Get returns the dataset with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (model.Dataset, error)
	// List returns summaries of all datasets ordered by name, then id.
	List(ctx context.Context) []Summary
	// Count returns the number of stored datasets.
	Count(ctx context.Context) int
}
