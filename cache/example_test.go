package cache_test

import (
	"fmt"
	"time"

	"github.com/Scheevel/schemacache/cache"
)

func ExampleCache() {
	c := cache.New[string, int](
		cache.WithCapacity[string, int](100),
		cache.WithTTL[string, int](5*time.Minute),
	)

	c.Set("answer", 42)

	if v, ok := c.Get("answer"); ok {
		fmt.Println(v)
	}
	// Output: 42
}

func ExampleCache_lru() {
	c := cache.New[string, int](cache.WithCapacity[string, int](2))

	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a")    // a is now most recently used
	c.Set("c", 3) // evicts b

	_, hasB := c.Get("b")
	fmt.Println("has b:", hasB)
	// Output: has b: false
}

func ExampleCache_Stats() {
	c := cache.New[string, int]()

	c.Set("a", 1)
	c.Get("a") // hit
	c.Get("b") // miss

	stats := c.Stats()
	fmt.Printf("hits: %d, misses: %d, rate: %.0f%%\n",
		stats.Hits, stats.Misses, stats.HitRate()*100)
	// Output: hits: 1, misses: 1, rate: 50%
}

func ExampleCache_DeleteFunc() {
	c := cache.New[string, string]()

	c.Set("schema:1", "girder")
	c.Set("fields:1", "span,material")
	c.Set("schema:2", "plate")

	n := c.DeleteFunc(func(key string) bool {
		return key == "schema:1" || key == "fields:1"
	})
	fmt.Println("removed:", n, "remaining:", c.Len())
	// Output: removed: 2 remaining: 1
}
