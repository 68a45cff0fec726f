package schemacache_test

import (
	"fmt"
	"time"

	schemacache "github.com/Scheevel/schemacache"
	"github.com/Scheevel/schemacache/config"
	"github.com/Scheevel/schemacache/schema"
)

func exampleConfig() config.Config {
	return config.Config{
		CacheTTL:      5 * time.Minute,
		ValidationTTL: time.Minute,
		MaxCacheSize:  100,
		LogLevel:      "info",
	}
}

func ExampleClient() {
	client := schemacache.New(exampleConfig())

	s := schema.New("project-1", "Girder Inspection")

	if cached := client.CachedSchema(s.ID); cached == nil {
		// miss: fetch from the data layer, then write back
		client.CacheSchema(s)
	}

	cached := client.CachedSchema(s.ID)
	fmt.Println(cached.Name)

	stats := client.Stats()
	fmt.Printf("hits: %d, misses: %d\n", stats.Hits, stats.Misses)
	// Output:
	// Girder Inspection
	// hits: 1, misses: 1
}

func ExampleClient_InvalidateSchema() {
	client := schemacache.New(exampleConfig())

	s := schema.New("project-1", "Girder Inspection")
	s.Fields = []schema.Field{
		schema.NewField(s.ID, "span_length", schema.FieldTypeNumber, 0),
	}

	client.CacheSchema(s)
	client.CacheSchemaFields(s.ID, s.Fields)

	client.InvalidateSchema(s.ID)

	fmt.Println(client.CachedSchema(s.ID) == nil)
	fmt.Println(client.CachedSchemaFields(s.ID) == nil)
	// Output:
	// true
	// true
}

func ExampleClient_CachedSchemas() {
	client := schemacache.New(exampleConfig())

	filter := schemacache.ListFilter{ProjectID: "project-1", IncludeGlobal: true}
	list := []schema.Schema{
		*schema.New("project-1", "Girder Inspection"),
		*schema.New("project-1", "Plate Detail"),
	}
	client.CacheSchemas(list, filter)

	// field order of the filter doesn't matter; equal filters share an entry
	same := schemacache.ListFilter{IncludeGlobal: true, ProjectID: "project-1"}
	fmt.Println(len(client.CachedSchemas(same)))
	// Output: 2
}
