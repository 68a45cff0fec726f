// Package metrics exposes schemacache statistics as Prometheus metrics.
// The collector reads the cache's counters on scrape; registration is left
// to the caller, so the library never touches the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Scheevel/schemacache/cache"
)

// Source provides the statistics and introspection the collector scrapes.
// *schemacache.Client satisfies it.
type Source interface {
	Stats() cache.Snapshot
	Info() cache.Info
}

// Collector implements prometheus.Collector over a cache Source.
type Collector struct {
	source Source

	hits        *prometheus.Desc
	misses      *prometheus.Desc
	evictions   *prometheus.Desc
	expirations *prometheus.Desc
	entries     *prometheus.Desc
	utilization *prometheus.Desc
}

// NewCollector creates a collector for the given source. Metrics are
// namespaced under "schemacache".
func NewCollector(src Source) *Collector {
	return &Collector{
		source: src,
		hits: prometheus.NewDesc(
			"schemacache_hits_total",
			"Number of cache lookups that returned a live entry.",
			nil, nil,
		),
		misses: prometheus.NewDesc(
			"schemacache_misses_total",
			"Number of cache lookups that found no live entry.",
			nil, nil,
		),
		evictions: prometheus.NewDesc(
			"schemacache_evictions_total",
			"Number of entries evicted at capacity.",
			nil, nil,
		),
		expirations: prometheus.NewDesc(
			"schemacache_expirations_total",
			"Number of entries removed because their TTL elapsed.",
			nil, nil,
		),
		entries: prometheus.NewDesc(
			"schemacache_entries",
			"Current number of cached entries.",
			nil, nil,
		),
		utilization: prometheus.NewDesc(
			"schemacache_utilization_percent",
			"Cached entries as a percentage of capacity.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.evictions
	ch <- c.expirations
	ch <- c.entries
	ch <- c.utilization
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.source.Stats()
	info := c.source.Info()

	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(stats.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(stats.Misses))
	ch <- prometheus.MustNewConstMetric(c.evictions, prometheus.CounterValue, float64(stats.Evictions))
	ch <- prometheus.MustNewConstMetric(c.expirations, prometheus.CounterValue, float64(stats.Expirations))
	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(info.Entries))
	ch <- prometheus.MustNewConstMetric(c.utilization, prometheus.GaugeValue, info.UtilizationPercent)
}
