package service

import (
	repository "github.com/okian/scatterviz/internal/adapters/repository"
	"github.com/okian/scatterviz/internal/domain/model"
	"github.com/okian/scatterviz/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore replaces the in-memory dataset store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithCanvas sets the drawing surface used for every render.
func WithCanvas(c model.Canvas) Option {
	return func(s *Service) {
		s.canvas = c
	}
}

// WithDefaultVariant sets the preset used when a request names none.
func WithDefaultVariant(name string) Option {
	return func(s *Service) {
		if name != "" {
			s.defaultVariant = name
		}
	}
}

// WithoutBuiltinDataset skips seeding the built-in weather dataset.
func WithoutBuiltinDataset() Option {
	return func(s *Service) {
		s.seedBuiltin = false
	}
}
