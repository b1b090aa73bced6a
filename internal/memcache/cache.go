// Package memcache provides a process-wide in-memory cache with TTL
// expiry and a bounded entry count. Entries past their TTL are
// recomputed on next access; once the cache is full, the oldest
// inserted entries are evicted first.
package memcache

import (
	"container/list"
	"sync"
	"time"
)

// Cache memoizes values of type V by string key. Safe for concurrent
// use. Duplicate concurrent computations for the same key may happen;
// the first inserted value wins for subsequent reads.
type Cache[V any] struct {
	ttl        time.Duration
	maxEntries int

	mu      sync.Mutex
	entries map[string]*list.Element
	order   *list.List // front = oldest insertion

	now func() time.Time
}

type entry[V any] struct {
	key        string
	value      V
	insertedAt time.Time
}

// New creates a cache with the given TTL and maximum entry count.
func New[V any](ttl time.Duration, maxEntries int) *Cache[V] {
	if maxEntries <= 0 {
		maxEntries = 1
	}
	return &Cache[V]{
		ttl:        ttl,
		maxEntries: maxEntries,
		entries:    make(map[string]*list.Element),
		order:      list.New(),
		now:        time.Now,
	}
}

// Get returns the cached value for key if it is present and fresh.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	element, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	ent := element.Value.(*entry[V])
	if c.now().Sub(ent.insertedAt) > c.ttl {
		c.remove(element)
		return zero, false
	}
	return ent.value, true
}

// Set inserts or replaces the value for key, resetting its age.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if element, ok := c.entries[key]; ok {
		c.remove(element)
	}
	for c.order.Len() >= c.maxEntries {
		c.remove(c.order.Front())
	}
	c.entries[key] = c.order.PushBack(&entry[V]{
		key:        key,
		value:      value,
		insertedAt: c.now(),
	})
}

// GetOrCompute returns the cached value for key, or runs compute and
// caches its result. A compute error is returned as-is and nothing is
// cached for the key.
func (c *Cache[V]) GetOrCompute(key string, compute func() (V, error)) (V, error) {
	if value, ok := c.Get(key); ok {
		return value, nil
	}
	value, err := compute()
	if err != nil {
		return value, err
	}
	c.Set(key, value)
	return value, nil
}

// Len returns the number of entries currently held, expired or not.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// remove must be called with c.mu held.
func (c *Cache[V]) remove(element *list.Element) {
	ent := element.Value.(*entry[V])
	delete(c.entries, ent.key)
	c.order.Remove(element)
}
