// Package schemacache caches component schema entities on the client side
// of a schema management system, avoiding redundant fetches from the data
// layer.
//
// Four entity shapes are cached in one bounded TTL/LRU store: single
// schemas, filtered schema lists, schema field lists, and validation
// results (which use a shorter TTL). Cache keys are derived
// deterministically from domain parameters, so logically-equal lookups
// always address the same entry.
//
// # Basic Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//		return err
//	}
//	client := schemacache.New(cfg)
//
//	if s := client.CachedSchema(id); s != nil {
//		return s // cache hit
//	}
//	s, err := api.GetSchema(ctx, id) // caller-owned data layer
//	if err != nil {
//		return err
//	}
//	client.CacheSchema(s)
//
// Every getter returns nil on a miss or expiry, so the fetch-and-cache
// pattern above works uniformly across entity shapes.
//
// # Read-Through
//
// With a Fetcher configured, the read-through helpers collapse the pattern
// and coalesce concurrent fetches for the same key:
//
//	client := schemacache.New(cfg, schemacache.WithFetcher(api))
//	s, err := client.Schema(ctx, id)
//
// # Invalidation
//
// InvalidateSchema removes a schema's entry together with its field list
// and every validation result cached under it. InvalidateAllSchemas clears
// the store.
package schemacache
