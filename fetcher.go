package schemacache

import (
	"context"

	"github.com/Scheevel/schemacache/schema"
)

// Fetcher is the seam to the data layer that owns schema entities. The
// cache never performs I/O itself; on a miss, the read-through helpers
// delegate to the configured Fetcher and write the result back.
type Fetcher interface {
	FetchSchema(ctx context.Context, id string) (*schema.Schema, error)
	FetchSchemas(ctx context.Context, filter ListFilter) ([]schema.Schema, error)
	FetchSchemaFields(ctx context.Context, schemaID string) ([]schema.Field, error)
}
