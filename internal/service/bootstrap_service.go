package service

import (
	"context"
	"fmt"
)

// Migrator applies the schema.
type Migrator interface {
	Up() error
}

// SeedFunc inserts example rows idempotently.
type SeedFunc func(ctx context.Context) error

// BootstrapService backs the development-only init-db endpoint.
type BootstrapService struct {
	migrator Migrator
	seed     SeedFunc
	cache    *ResponseCache
}

// NewBootstrapService creates a BootstrapService. cache may be nil.
func NewBootstrapService(m Migrator, seed SeedFunc, cache *ResponseCache) *BootstrapService {
	return &BootstrapService{migrator: m, seed: seed, cache: cache}
}

// Init makes sure the schema is current and the example rows exist.
func (s *BootstrapService) Init(ctx context.Context) error {
	if err := s.migrator.Up(); err != nil {
		return err
	}
	if err := s.seed(ctx); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}
	s.cache.invalidate(ctx, cacheKeyCategories, cacheKeyPages)
	return nil
}
