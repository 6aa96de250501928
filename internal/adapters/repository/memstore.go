package repository

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/okian/scatterviz/internal/domain/model"
	"github.com/okian/scatterviz/pkg/metrics"
)

// MemoryStore is a concurrency-safe in-process Store. Datasets are copied on
// the way in and out, so callers can never mutate stored points.
type MemoryStore struct {
	mu          sync.RWMutex
	datasets    map[string]model.Dataset
	newID       func() string
	maxDatasets int
}

// NewMemoryStore creates an empty store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		datasets: make(map[string]model.Dataset),
		newID:    uuid.NewString,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Put stores a copy of ds under a fresh id.
func (s *MemoryStore) Put(ctx context.Context, ds model.Dataset) (model.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return model.Dataset{}, fmt.Errorf("put dataset: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxDatasets > 0 && len(s.datasets) >= s.maxDatasets {
		return model.Dataset{}, fmt.Errorf("%w: limit %d", ErrFull, s.maxDatasets)
	}

	stored := clone(ds)
	stored.ID = s.newID()
	s.datasets[stored.ID] = stored
	metrics.UpdateDatasetsStored(len(s.datasets))

	return clone(stored), nil
}

// Get returns a copy of the dataset stored under id.
func (s *MemoryStore) Get(ctx context.Context, id string) (model.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return model.Dataset{}, fmt.Errorf("get dataset: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	ds, ok := s.datasets[id]
	if !ok {
		return model.Dataset{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return clone(ds), nil
}

// List returns summaries ordered by name, then id.
func (s *MemoryStore) List(_ context.Context) []Summary {
	s.mu.RLock()
	summaries := lo.MapToSlice(s.datasets, func(id string, ds model.Dataset) Summary {
		return Summary{ID: id, Name: ds.Name, Points: len(ds.Points)}
	})
	s.mu.RUnlock()

	slices.SortFunc(summaries, func(a, b Summary) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return summaries
}

// Count returns the number of stored datasets.
func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.datasets)
}

func clone(ds model.Dataset) model.Dataset {
	ds.Points = slices.Clone(ds.Points)
	return ds
}
