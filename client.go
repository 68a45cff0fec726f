package schemacache

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Scheevel/schemacache/cache"
	"github.com/Scheevel/schemacache/config"
	"github.com/Scheevel/schemacache/schema"
)

var (
	// ErrNoFetcher is returned by read-through helpers when no Fetcher
	// was configured and the entity is not cached.
	ErrNoFetcher = errors.New("schemacache: no fetcher configured")

	// ErrSchemaUnknown is returned by Validate when the schema is neither
	// cached nor fetchable.
	ErrSchemaUnknown = errors.New("schemacache: schema unknown")
)

// Client caches schema entities for a component management data layer.
// All four entity shapes (schema, filtered schema list, field list,
// validation result) share one bounded store; every getter returns nil on
// a miss or expiry so callers can fetch-and-cache uniformly.
//
// Construct a Client per consumer with New; there is no shared package
// state, so tests can build isolated instances.
type Client struct {
	store         *cache.Cache[string, any]
	validationTTL time.Duration
	fetcher       Fetcher
	log           logrus.FieldLogger
	group         singleflight.Group
}

// Option configures a Client.
type Option func(*options)

type options struct {
	fetcher Fetcher
	log     logrus.FieldLogger
	clock   cache.Clock
}

// WithFetcher sets the data layer used by the read-through helpers.
func WithFetcher(f Fetcher) Option {
	return func(o *options) {
		o.fetcher = f
	}
}

// WithLogger sets the logger. Defaults to the logrus standard logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithClock sets a custom clock for TTL handling. Useful for testing.
func WithClock(clk cache.Clock) Option {
	return func(o *options) {
		o.clock = clk
	}
}

// New creates a Client from the given configuration.
func New(cfg config.Config, opts ...Option) *Client {
	o := options{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	validationTTL := cfg.ValidationTTL
	if validationTTL < 0 {
		validationTTL = 0
	}

	c := &Client{
		validationTTL: validationTTL,
		fetcher:       o.fetcher,
		log:           o.log,
	}

	storeOpts := []cache.Option[string, any]{
		cache.WithCapacity[string, any](cfg.MaxCacheSize),
		cache.WithTTL[string, any](cfg.CacheTTL),
		cache.OnEvict[string, any](func(key string, _ any) {
			c.log.WithField("key", key).Debug("cache entry evicted")
		}),
	}
	if o.clock != nil {
		storeOpts = append(storeOpts, cache.WithClock[string, any](o.clock))
	}
	c.store = cache.New[string, any](storeOpts...)

	return c
}

// CacheSchema stores a single schema.
func (c *Client) CacheSchema(s *schema.Schema) {
	if s == nil {
		return
	}
	c.store.Set(schemaKey(s.ID), s)
}

// CachedSchema returns the cached schema with the given id, or nil on a
// miss or expiry.
func (c *Client) CachedSchema(id string) *schema.Schema {
	v, ok := c.store.Get(schemaKey(id))
	if !ok {
		return nil
	}
	s, _ := v.(*schema.Schema)
	return s
}

// CacheSchemas stores a filtered schema list as one entry keyed by the
// filter. The list is cached as a unit, never per element. A nil list is
// normalized to an empty one so that cached empty results still read back
// as hits (nil is reserved for "absent").
func (c *Client) CacheSchemas(schemas []schema.Schema, filter ListFilter) {
	if schemas == nil {
		schemas = []schema.Schema{}
	}
	c.store.Set(schemaListKey(filter), schemas)
}

// CachedSchemas returns the cached list for the filter, or nil if the list
// entry is absent or expired. A cached list is all-or-nothing; a partial
// list is never returned.
func (c *Client) CachedSchemas(filter ListFilter) []schema.Schema {
	v, ok := c.store.Get(schemaListKey(filter))
	if !ok {
		return nil
	}
	schemas, _ := v.([]schema.Schema)
	return schemas
}

// CacheSchemaFields stores a schema's field list. A nil list is normalized
// to an empty one, as in CacheSchemas.
func (c *Client) CacheSchemaFields(schemaID string, fields []schema.Field) {
	if fields == nil {
		fields = []schema.Field{}
	}
	c.store.Set(fieldsKey(schemaID), fields)
}

// CachedSchemaFields returns the cached field list, or nil on a miss.
func (c *Client) CachedSchemaFields(schemaID string) []schema.Field {
	v, ok := c.store.Get(fieldsKey(schemaID))
	if !ok {
		return nil
	}
	fields, _ := v.([]schema.Field)
	return fields
}

// CacheValidationResult stores a validation result keyed by schema id and a
// canonical hash of the validated data, under the shorter validation TTL.
func (c *Client) CacheValidationResult(schemaID string, data map[string]any, res schema.ValidationResult) {
	c.store.SetWithTTL(validationKey(schemaID, data), &res, c.validationTTL)
}

// CachedValidationResult returns the cached validation result for the
// schema and data pair, or nil on a miss.
func (c *Client) CachedValidationResult(schemaID string, data map[string]any) *schema.ValidationResult {
	v, ok := c.store.Get(validationKey(schemaID, data))
	if !ok {
		return nil
	}
	res, _ := v.(*schema.ValidationResult)
	return res
}

// InvalidateSchema removes the schema entry, its field list, and every
// validation result cached under the schema id.
func (c *Client) InvalidateSchema(schemaID string) {
	validationPrefix := validationKeyPrefix + schemaID + ":"
	removed := c.store.DeleteFunc(func(key string) bool {
		return key == schemaKey(schemaID) ||
			key == fieldsKey(schemaID) ||
			strings.HasPrefix(key, validationPrefix)
	})
	c.log.WithFields(logrus.Fields{
		"schema_id": schemaID,
		"removed":   removed,
	}).Debug("invalidated schema artifacts")
}

// InvalidateAllSchemas clears the store. The store holds nothing but
// schema artifacts, so this is a full clear, counters included.
func (c *Client) InvalidateAllSchemas() {
	c.store.Clear()
	c.log.Debug("invalidated all cached schemas")
}

// Stats returns hit/miss statistics for the underlying store.
func (c *Client) Stats() cache.Snapshot {
	return c.store.Stats()
}

// Info returns capacity and usage introspection for the underlying store.
func (c *Client) Info() cache.Info {
	return c.store.Info()
}

// Schema returns the schema by id, consulting the cache first and falling
// back to the Fetcher. Concurrent lookups for the same id coalesce into a
// single fetch.
func (c *Client) Schema(ctx context.Context, id string) (*schema.Schema, error) {
	if s := c.CachedSchema(id); s != nil {
		return s, nil
	}
	if c.fetcher == nil {
		return nil, ErrNoFetcher
	}

	v, err, _ := c.group.Do(schemaKey(id), func() (any, error) {
		s, err := c.fetcher.FetchSchema(ctx, id)
		if err != nil {
			return nil, err
		}
		c.CacheSchema(s)
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*schema.Schema), nil
}

// Schemas returns the schema list for the filter, consulting the cache
// first and falling back to the Fetcher.
func (c *Client) Schemas(ctx context.Context, filter ListFilter) ([]schema.Schema, error) {
	if list := c.CachedSchemas(filter); list != nil {
		return list, nil
	}
	if c.fetcher == nil {
		return nil, ErrNoFetcher
	}

	v, err, _ := c.group.Do(schemaListKey(filter), func() (any, error) {
		list, err := c.fetcher.FetchSchemas(ctx, filter)
		if err != nil {
			return nil, err
		}
		c.CacheSchemas(list, filter)
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]schema.Schema), nil
}

// SchemaFields returns the schema's field list, consulting the cache first
// and falling back to the Fetcher.
func (c *Client) SchemaFields(ctx context.Context, schemaID string) ([]schema.Field, error) {
	if fields := c.CachedSchemaFields(schemaID); fields != nil {
		return fields, nil
	}
	if c.fetcher == nil {
		return nil, ErrNoFetcher
	}

	v, err, _ := c.group.Do(fieldsKey(schemaID), func() (any, error) {
		fields, err := c.fetcher.FetchSchemaFields(ctx, schemaID)
		if err != nil {
			return nil, err
		}
		c.CacheSchemaFields(schemaID, fields)
		return fields, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]schema.Field), nil
}

// Validate checks data against the schema, returning a cached result when
// one is live and computing (and caching) it otherwise.
func (c *Client) Validate(ctx context.Context, schemaID string, data map[string]any) (schema.ValidationResult, error) {
	if res := c.CachedValidationResult(schemaID, data); res != nil {
		return *res, nil
	}

	s := c.CachedSchema(schemaID)
	if s == nil && c.fetcher != nil {
		var err error
		if s, err = c.Schema(ctx, schemaID); err != nil {
			return schema.ValidationResult{}, err
		}
	}
	if s == nil {
		return schema.ValidationResult{}, ErrSchemaUnknown
	}

	res := schema.ValidateData(s, data)
	c.CacheValidationResult(schemaID, data, res)
	return res, nil
}
