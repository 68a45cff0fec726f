package cache

import "time"

// Clock abstracts wall-clock reads so TTL expiry can be driven
// deterministically in tests. Production callers use the default, which
// delegates to time.Now().
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}
