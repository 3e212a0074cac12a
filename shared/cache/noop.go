package cache

import (
	"context"
	"fmt"
)

type noopCache struct{}

// NewNoopCache returns a Cache whose lookups always miss and whose writes are discarded.
func NewNoopCache() Cache {
	return noopCache{}
}

func (noopCache) Save(_ context.Context, _ string, _ any, _ int) error {
	return nil
}

func (noopCache) Get(_ context.Context, _ string, _ any) error {
	return fmt.Errorf("failed to get cache value: %w", Nil)
}

func (noopCache) Delete(_ context.Context, _ string) error {
	return nil
}

func (noopCache) Clear(_ context.Context, _ string) error {
	return nil
}
