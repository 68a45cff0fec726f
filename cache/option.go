package cache

import "time"

const (
	// DefaultCapacity is the default maximum number of entries.
	DefaultCapacity = 100
)

type config[K comparable, V any] struct {
	capacity int
	ttl      time.Duration
	clock    Clock
	onEvict  func(K, V)
	onHit    func(K, V)
	onMiss   func(K)
}

func defaultConfig[K comparable, V any]() config[K, V] {
	return config[K, V]{
		capacity: DefaultCapacity,
		clock:    realClock{},
	}
}

// Option configures a Cache.
type Option[K comparable, V any] func(*config[K, V])

// WithCapacity sets the maximum number of entries in the cache.
// A capacity of zero or less disables caching entirely: every Set is a
// no-op and every Get is a miss.
func WithCapacity[K comparable, V any](n int) Option[K, V] {
	return func(c *config[K, V]) {
		c.capacity = n
	}
}

// WithTTL sets the default time-to-live for cache entries, measured from
// insertion. Zero means entries never expire; negative values clamp to zero.
func WithTTL[K comparable, V any](d time.Duration) Option[K, V] {
	return func(c *config[K, V]) {
		if d < 0 {
			d = 0
		}
		c.ttl = d
	}
}

// WithClock sets a custom clock for time operations.
// Useful for testing TTL behavior.
func WithClock[K comparable, V any](clk Clock) Option[K, V] {
	return func(c *config[K, V]) {
		c.clock = clk
	}
}

// OnEvict sets a callback invoked when an entry is evicted at capacity.
func OnEvict[K comparable, V any](fn func(K, V)) Option[K, V] {
	return func(c *config[K, V]) {
		c.onEvict = fn
	}
}

// OnHit sets a callback invoked on cache hits.
func OnHit[K comparable, V any](fn func(K, V)) Option[K, V] {
	return func(c *config[K, V]) {
		c.onHit = fn
	}
}

// OnMiss sets a callback invoked on cache misses.
func OnMiss[K comparable, V any](fn func(K)) Option[K, V] {
	return func(c *config[K, V]) {
		c.onMiss = fn
	}
}
