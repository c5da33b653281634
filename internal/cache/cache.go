// Package cache provides a keyed memoization cache for GPU resource handles.
package cache

// Cache memoizes values by key. Unlike an LRU it never evicts: the registry
// guarantees at most one GPU upload per cache key, so entries live for the
// life of the registry.
//
// Cache is not safe for concurrent use; the owning registry serializes
// access.
type Cache[K comparable, V any] struct {
	entries map[K]V
}

// New creates an empty cache.
func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{entries: make(map[K]V)}
}

// Get retrieves a value from the cache.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	v, ok := c.entries[key]
	return v, ok
}

// Set stores a value in the cache, replacing any previous entry.
func (c *Cache[K, V]) Set(key K, value V) {
	c.entries[key] = value
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	return len(c.entries)
}

// Clear removes all entries from the cache.
func (c *Cache[K, V]) Clear() {
	c.entries = make(map[K]V)
}
