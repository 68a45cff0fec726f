package cache

import (
	"sync"
	"time"
)

// Cache is a generic bounded in-memory cache with TTL expiry and strict
// LRU eviction by last access.
type Cache[K comparable, V any] struct {
	mu   sync.RWMutex
	data map[K]*entry[V]
	lru  *lruOrder[K]
	cfg  config[K, V]

	hits        int64
	misses      int64
	evictions   int64
	expirations int64
}

// New creates a new Cache with the given options.
func New[K comparable, V any](opts ...Option[K, V]) *Cache[K, V] {
	cfg := defaultConfig[K, V]()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Cache[K, V]{
		data: make(map[K]*entry[V]),
		lru:  newLRUOrder[K](),
		cfg:  cfg,
	}
}

// Get retrieves a value from the cache.
// Returns the value and true on a live entry, zero value and false otherwise.
// Expired entries are deleted on read and count as a miss. Get never evicts.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	var zero V

	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.data[key]
	if !ok {
		c.misses++
		if c.cfg.onMiss != nil {
			c.cfg.onMiss(key)
		}
		return zero, false
	}

	now := c.cfg.clock.Now()
	if ent.expired(now) {
		c.remove(key)
		c.expirations++
		c.misses++
		if c.cfg.onMiss != nil {
			c.cfg.onMiss(key)
		}
		return zero, false
	}

	ent.lastAccessedAt = now
	ent.accessCount++
	c.lru.touch(key)
	c.hits++
	if c.cfg.onHit != nil {
		c.cfg.onHit(key, ent.value)
	}
	return ent.value, true
}

// Set adds or updates a value using the default TTL.
func (c *Cache[K, V]) Set(key K, value V) {
	c.SetWithTTL(key, value, c.cfg.ttl)
}

// SetWithTTL adds or updates a value with a specific TTL. A ttl of zero or
// less means the entry never expires.
//
// Overwriting an existing key resets its insertion time and access count:
// fresh data replaces stale data wholesale. When the cache is at capacity
// and the key is new, the least recently accessed entry is evicted first,
// so Len never exceeds the configured capacity.
func (c *Cache[K, V]) SetWithTTL(key K, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// caching disabled
	if c.cfg.capacity <= 0 {
		return
	}

	now := c.cfg.clock.Now()
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = now.Add(ttl)
	}

	if ent, ok := c.data[key]; ok {
		ent.value = value
		ent.insertedAt = now
		ent.lastAccessedAt = now
		ent.expiresAt = expiresAt
		ent.accessCount = 0
		c.lru.touch(key)
		return
	}

	for len(c.data) >= c.cfg.capacity {
		c.evictOne()
	}

	c.data[key] = &entry[V]{
		value:          value,
		insertedAt:     now,
		lastAccessedAt: now,
		expiresAt:      expiresAt,
	}
	c.lru.push(key)
}

func (c *Cache[K, V]) evictOne() {
	key, ok := c.lru.oldest()
	if !ok {
		return
	}
	if ent, ok := c.data[key]; ok {
		delete(c.data, key)
		c.evictions++
		if c.cfg.onEvict != nil {
			c.cfg.onEvict(key, ent.value)
		}
	}
}

// remove deletes an entry without touching stats. Callers hold the lock.
func (c *Cache[K, V]) remove(key K) bool {
	if _, ok := c.data[key]; !ok {
		return false
	}
	delete(c.data, key)
	c.lru.remove(key)
	return true
}

// Delete removes a key from the cache. Deleting an absent key is a no-op
// and leaves statistics unchanged.
func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.remove(key)
}

// DeleteFunc removes every entry whose key matches the predicate and
// returns the number removed. Statistics are unchanged.
func (c *Cache[K, V]) DeleteFunc(match func(K) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var n int
	for key := range c.data {
		if match(key) {
			c.remove(key)
			n++
		}
	}
	return n
}

// Has checks if a key exists and is not expired. Does not affect stats
// or recency.
func (c *Cache[K, V]) Has(key K) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ent, ok := c.data[key]
	if !ok {
		return false
	}
	return !ent.expired(c.cfg.clock.Now())
}

// Peek returns a value without updating recency, access count, or
// hit/miss statistics.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ent, ok := c.data[key]
	if !ok || ent.expired(c.cfg.clock.Now()) {
		var zero V
		return zero, false
	}
	return ent.value, true
}

// Clear removes all entries and resets hit/miss counters.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data = make(map[K]*entry[V])
	c.lru.reset()
	c.hits = 0
	c.misses = 0
	c.evictions = 0
	c.expirations = 0
}

// Len returns the number of entries in the cache.
// May include expired entries that haven't been cleaned up yet.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.data)
}

// Stats returns a snapshot of cache statistics.
func (c *Cache[K, V]) Stats() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return Snapshot{
		Hits:        c.hits,
		Misses:      c.misses,
		Evictions:   c.evictions,
		Expirations: c.expirations,
	}
}

// Info returns capacity and usage introspection. No side effects.
func (c *Cache[K, V]) Info() Info {
	c.mu.RLock()
	defer c.mu.RUnlock()

	info := Info{
		Entries:  len(c.data),
		Capacity: c.cfg.capacity,
	}
	if c.cfg.capacity > 0 {
		info.UtilizationPercent = float64(len(c.data)) / float64(c.cfg.capacity) * 100
	}
	if len(c.data) > 0 {
		var total int64
		for _, ent := range c.data {
			total += ent.accessCount
		}
		info.AvgAccessCount = float64(total) / float64(len(c.data))
	}
	return info
}
