package utils

import (
	"sync"
	"time"
)

type cacheEntry struct {
	value     interface{}
	expiresAt time.Time
}

// Cache is a small time-boxed key-value store used to guard repeated
// expensive calls (dataset file loads, LLM round-trips). Every entry carries
// its own expiry timestamp and all read-check-write sequences run under the
// mutex.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

// NewCache creates a cache whose entries expire ttl after being set.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the live value for key, or false when the key is missing or
// has expired.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.getLocked(key)
}

// Set stores value under key with a fresh expiry.
func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLocked(key, value)
}

// GetOrFill returns the cached value for key, calling fill to produce and
// store it on a miss. The mutex is held across fill so concurrent callers
// never duplicate the expensive call.
func (c *Cache) GetOrFill(key string, fill func() (interface{}, error)) (interface{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.getLocked(key); ok {
		return v, nil
	}
	v, err := fill()
	if err != nil {
		return nil, err
	}
	c.setLocked(key, v)
	return v, nil
}

func (c *Cache) getLocked(key string) (interface{}, bool) {
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.value, true
}

func (c *Cache) setLocked(key string, value interface{}) {
	c.entries[key] = cacheEntry{value: value, expiresAt: time.Now().Add(c.ttl)}
}
