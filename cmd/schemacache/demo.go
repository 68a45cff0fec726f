package main

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	schemacache "github.com/Scheevel/schemacache"
	"github.com/Scheevel/schemacache/schema"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted workload against the cache and print statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd.Context())
	},
}

// memoryFetcher is a stand-in for the HTTP data layer.
type memoryFetcher struct {
	schemas map[string]*schema.Schema
	fetches int
}

func (m *memoryFetcher) FetchSchema(_ context.Context, id string) (*schema.Schema, error) {
	m.fetches++
	s, ok := m.schemas[id]
	if !ok {
		return nil, fmt.Errorf("schema %s not found", id)
	}
	return s, nil
}

func (m *memoryFetcher) FetchSchemas(_ context.Context, filter schemacache.ListFilter) ([]schema.Schema, error) {
	m.fetches++
	var out []schema.Schema
	for _, s := range m.schemas {
		if s.ProjectID == filter.ProjectID || (filter.IncludeGlobal && s.IsGlobal) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *memoryFetcher) FetchSchemaFields(_ context.Context, schemaID string) ([]schema.Field, error) {
	m.fetches++
	s, ok := m.schemas[schemaID]
	if !ok {
		return nil, fmt.Errorf("schema %s not found", schemaID)
	}
	return s.Fields, nil
}

func seedFetcher() (*memoryFetcher, *schema.Schema) {
	projectID := uuid.NewString()

	girder := schema.New(projectID, "Girder Inspection")
	girder.Fields = []schema.Field{
		schema.NewField(girder.ID, "span_length", schema.FieldTypeNumber, 0),
		schema.NewField(girder.ID, "material", schema.FieldTypeSelect, 1),
		schema.NewField(girder.ID, "inspected_on", schema.FieldTypeDate, 2),
		schema.NewField(girder.ID, "notes", schema.FieldTypeTextarea, 3),
	}
	girder.Fields[0].Required = true
	girder.Fields[1].Options = []string{"steel", "concrete", "timber"}

	plate := schema.New(projectID, "Plate Detail")
	plate.Fields = []schema.Field{
		schema.NewField(plate.ID, "thickness_mm", schema.FieldTypeNumber, 0),
		schema.NewField(plate.ID, "galvanized", schema.FieldTypeCheckbox, 1),
	}

	fetcher := &memoryFetcher{schemas: map[string]*schema.Schema{
		girder.ID: girder,
		plate.ID:  plate,
	}}
	return fetcher, girder
}

func runDemo(ctx context.Context) error {
	fetcher, girder := seedFetcher()
	client := schemacache.New(cfg,
		schemacache.WithFetcher(fetcher),
		schemacache.WithLogger(log),
	)

	filter := schemacache.ListFilter{ProjectID: girder.ProjectID, IncludeGlobal: true}

	// cold lookups go to the fetcher, warm lookups hit the cache
	for i := 0; i < 3; i++ {
		if _, err := client.Schema(ctx, girder.ID); err != nil {
			return err
		}
		if _, err := client.Schemas(ctx, filter); err != nil {
			return err
		}
		if _, err := client.SchemaFields(ctx, girder.ID); err != nil {
			return err
		}
	}

	data := map[string]any{
		"span_length":  42.5,
		"material":     "steel",
		"inspected_on": "2026-08-01",
	}
	res, err := client.Validate(ctx, girder.ID, data)
	if err != nil {
		return err
	}
	log.WithField("valid", res.Valid).Info("validated component data")

	bad := map[string]any{"material": "plastic"}
	if res, err = client.Validate(ctx, girder.ID, bad); err != nil {
		return err
	}
	for _, fe := range res.Errors {
		log.WithField("field", fe.Field).Info(fe.Message)
	}

	client.InvalidateSchema(girder.ID)

	stats := client.Stats()
	info := client.Info()
	fmt.Printf("fetches:     %s\n", humanize.Comma(int64(fetcher.fetches)))
	fmt.Printf("hits:        %s\n", humanize.Comma(stats.Hits))
	fmt.Printf("misses:      %s\n", humanize.Comma(stats.Misses))
	fmt.Printf("hit rate:    %.1f%%\n", stats.HitRate()*100)
	fmt.Printf("entries:     %s of %s (%.1f%%)\n",
		humanize.Comma(int64(info.Entries)),
		humanize.Comma(int64(info.Capacity)),
		info.UtilizationPercent)
	fmt.Printf("avg accesses: %s\n", humanize.FtoaWithDigits(info.AvgAccessCount, 2))
	return nil
}
