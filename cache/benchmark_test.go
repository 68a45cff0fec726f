package cache

import (
	"strconv"
	"testing"
)

func BenchmarkCache_Get(b *testing.B) {
	c := New[string, int](WithCapacity[string, int](1000))

	keys := make([]string, 100)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
		c.Set(keys[i], i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(keys[i%100])
	}
}

func BenchmarkCache_Set(b *testing.B) {
	c := New[string, int](WithCapacity[string, int](b.N + 1))

	keys := make([]string, b.N)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Set(keys[i], i)
	}
}

func BenchmarkCache_SetWithEviction(b *testing.B) {
	c := New[string, int](WithCapacity[string, int](100))

	keys := make([]string, b.N)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Set(keys[i], i)
	}
}

func BenchmarkCache_Parallel(b *testing.B) {
	c := New[string, int](WithCapacity[string, int](1000))

	keys := make([]string, 100)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
		c.Set(keys[i], i)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if i%2 == 0 {
				c.Get(keys[i%100])
			} else {
				c.Set(keys[i%100], i)
			}
			i++
		}
	})
}
