// Package cache provides a generic bounded in-memory cache with TTL expiry
// and LRU eviction.
//
// Entries expire a fixed duration after insertion and are removed lazily on
// access; there is no background sweep. When the cache is full, the entry
// with the oldest last-access time is evicted. Hit and miss counts are
// tracked and exposed through Stats, and Info reports capacity utilization.
//
// # Basic Usage
//
//	c := cache.New[string, int](
//		cache.WithCapacity[string, int](100),
//		cache.WithTTL[string, int](5*time.Minute),
//	)
//
//	c.Set("key", 42)
//
//	if v, ok := c.Get("key"); ok {
//		fmt.Println(v)
//	}
//
// # Testing
//
// Inject a custom clock to control time in tests:
//
//	type fakeClock struct{ now time.Time }
//	func (c *fakeClock) Now() time.Time { return c.now }
//
//	clk := &fakeClock{now: time.Now()}
//	c := cache.New[string, int](
//		cache.WithTTL[string, int](time.Minute),
//		cache.WithClock[string, int](clk),
//	)
//
//	c.Set("key", 42)
//	clk.now = clk.now.Add(2 * time.Minute) // TTL expired
//	_, ok := c.Get("key")                  // ok == false
//
// # Thread Safety
//
// All Cache methods are safe for concurrent use. The cache uses a
// sync.RWMutex internally to protect shared state.
package cache
