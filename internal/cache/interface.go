// Package cache holds read-through storage for catalog lookups. Carts never
// go through it: they live only in the session's memory.
package cache

import (
	"context"
	"time"
)

type Cache interface {
	// Get decodes the cached value into dest and reports whether the key existed.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
	Close() error
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const (
	CakeKeyPrefix    = "cake"
	CatalogKeyPrefix = "catalog"
)

// AvailableCatalogKey holds the storefront's list of purchasable cakes.
var AvailableCatalogKey = Key(CatalogKeyPrefix, "available")
