package cache

import (
	"context"
	"time"
)

// noopCache is used when redis is disabled: every lookup misses.
type noopCache struct{}

func NewNoopCache() Cache {
	return noopCache{}
}

func (noopCache) Get(context.Context, string, any) (bool, error) { return false, nil }

func (noopCache) Set(context.Context, string, any, time.Duration) error { return nil }

func (noopCache) Delete(context.Context, ...string) error { return nil }

func (noopCache) Ping(context.Context) error { return nil }

func (noopCache) Close() error { return nil }
