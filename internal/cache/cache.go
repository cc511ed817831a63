package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Service is a small key/value cache with per-item expiry
type Service interface {
	// Get returns the value and true when key is present and not expired
	Get(key string) (interface{}, bool)
	Set(key string, value interface{}, ttl time.Duration)
	Delete(key string)
	Flush()
	ItemCount() int
}

type memoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates an in-process cache.
// defaultExpiration applies when Set is called with a zero ttl;
// cleanupInterval is how often expired items are purged.
func NewMemoryCache(defaultExpiration, cleanupInterval time.Duration) Service {
	return &memoryCache{
		store: gocache.New(defaultExpiration, cleanupInterval),
	}
}

func (c *memoryCache) Get(key string) (interface{}, bool) {
	return c.store.Get(key)
}

func (c *memoryCache) Set(key string, value interface{}, ttl time.Duration) {
	if ttl == 0 {
		ttl = gocache.DefaultExpiration
	}
	c.store.Set(key, value, ttl)
}

func (c *memoryCache) Delete(key string) {
	c.store.Delete(key)
}

func (c *memoryCache) Flush() {
	c.store.Flush()
}

func (c *memoryCache) ItemCount() int {
	return c.store.ItemCount()
}
