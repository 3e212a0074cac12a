package cache_test

import (
	"context"
	"testing"

	"hms/config"
	"hms/shared/cache"

	"github.com/stretchr/testify/assert"
)

func TestNewDisabled(t *testing.T) {
	cfg := &config.Config{}

	c := cache.New(cfg, nil, nil)

	var value string
	err := c.Get(context.Background(), "anything", &value)

	assert.ErrorIs(t, err, cache.Nil)
	assert.Empty(t, value)
}

func TestNewEnabledWithoutClient(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Enable = true

	c := cache.New(cfg, nil, nil)

	assert.ErrorIs(t, c.Get(context.Background(), "key", new(int)), cache.Nil)
}

func TestNoopCache(t *testing.T) {
	ctx := context.Background()
	c := cache.NewNoopCache()

	assert.NoError(t, c.Save(ctx, "key", 10, 60))
	assert.ErrorIs(t, c.Get(ctx, "key", new(int)), cache.Nil)
	assert.NoError(t, c.Delete(ctx, "key"))
	assert.NoError(t, c.Clear(ctx, "report"))
}
