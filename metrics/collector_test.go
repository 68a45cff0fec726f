package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Scheevel/schemacache/cache"
)

func TestCollector(t *testing.T) {
	c := cache.New[string, int](
		cache.WithCapacity[string, int](4),
		cache.WithTTL[string, int](time.Minute),
	)

	c.Set("a", 1)
	c.Get("a") // hit
	c.Get("b") // miss

	collector := NewCollector(c)

	expected := `
# HELP schemacache_entries Current number of cached entries.
# TYPE schemacache_entries gauge
schemacache_entries 1
# HELP schemacache_evictions_total Number of entries evicted at capacity.
# TYPE schemacache_evictions_total counter
schemacache_evictions_total 0
# HELP schemacache_expirations_total Number of entries removed because their TTL elapsed.
# TYPE schemacache_expirations_total counter
schemacache_expirations_total 0
# HELP schemacache_hits_total Number of cache lookups that returned a live entry.
# TYPE schemacache_hits_total counter
schemacache_hits_total 1
# HELP schemacache_misses_total Number of cache lookups that found no live entry.
# TYPE schemacache_misses_total counter
schemacache_misses_total 1
# HELP schemacache_utilization_percent Cached entries as a percentage of capacity.
# TYPE schemacache_utilization_percent gauge
schemacache_utilization_percent 25
`
	require.NoError(t, testutil.CollectAndCompare(collector, strings.NewReader(expected)))
}

func TestCollectorRegisters(t *testing.T) {
	c := cache.New[string, int]()
	reg := prometheus.NewPedanticRegistry()

	require.NoError(t, reg.Register(NewCollector(c)))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 6)
}
