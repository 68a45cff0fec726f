package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	schemacache "github.com/Scheevel/schemacache"
	"github.com/Scheevel/schemacache/schema"
)

var benchOps int

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure cache get/set throughput",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBench()
	},
}

func init() {
	benchCmd.Flags().IntVar(&benchOps, "ops", 100_000, "number of get/set operations")
}

func runBench() error {
	client := schemacache.New(cfg, schemacache.WithLogger(log))

	ids := make([]string, 100)
	for i := range ids {
		s := schema.New(uuid.NewString(), fmt.Sprintf("schema-%d", i))
		ids[i] = s.ID
		client.CacheSchema(s)
	}

	start := time.Now()
	for i := 0; i < benchOps; i++ {
		client.CachedSchema(ids[i%len(ids)])
	}
	elapsed := time.Since(start)

	rate := float64(benchOps) / elapsed.Seconds()
	stats := client.Stats()
	fmt.Printf("ops:      %s in %s\n", humanize.Comma(int64(benchOps)), elapsed.Round(time.Millisecond))
	fmt.Printf("rate:     %s ops/sec\n", humanize.Comma(int64(rate)))
	fmt.Printf("hit rate: %.1f%%\n", stats.HitRate()*100)
	return nil
}
