package cache

import "time"

type entry[V any] struct {
	value          V
	insertedAt     time.Time
	lastAccessedAt time.Time
	expiresAt      time.Time // zero means no expiry
	accessCount    int64
}

// expired reports whether the entry's TTL has elapsed. TTL is measured
// from insertion time, not last access.
func (e *entry[V]) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}
