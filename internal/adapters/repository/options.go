package repository

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithIDGenerator replaces the uuid-based id generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *MemoryStore) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithMaxDatasets caps the number of stored datasets. Zero means unbounded.
func WithMaxDatasets(n int) Option {
	return func(s *MemoryStore) {
		if n >= 0 {
			s.maxDatasets = n
		}
	}
}
