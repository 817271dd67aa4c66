package cache

import (
	"sync"
	"time"
)

// entry pairs a stored value with its write timestamp
type entry[V any] struct {
	value    V
	storedAt time.Time
}

// Cache is a keyed store with a fixed time-to-live and lazy expiry: nothing
// is ever swept, an entry past its TTL is simply treated as absent on read
// and overwritten by the next Set.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	ttl     time.Duration
	now     func() time.Time
}

// New creates an empty cache whose entries expire after ttl
func New[V any](ttl time.Duration) *Cache[V] {
	return &Cache[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the value for key if it exists and has not expired
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.storedAt) >= c.ttl {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key, unconditionally overwriting any prior entry
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{value: value, storedAt: c.now()}
}
