package propdex

import (
	"context"
	"fmt"

	"github.com/propdex/propdex/internal/domain"
	"github.com/propdex/propdex/internal/domain/search"
	"github.com/propdex/propdex/internal/index"
	propertyrepo "github.com/propdex/propdex/internal/repository/property"
	propertyuc "github.com/propdex/propdex/internal/usecase/property"
)

// Public names for the domain types the API exchanges.
type (
	Property     = domain.Property
	PropertyType = domain.PropertyType
	Location     = domain.Location

	Params      = search.Params
	Result      = search.Result
	FacetResult = search.FacetResult
	FacetBucket = search.FacetBucket
)

// Property types.
const (
	TypeHotel     = domain.TypeHotel
	TypeApartment = domain.TypeApartment
	TypeVilla     = domain.TypeVilla
)

// Facet names accepted by SearchBuilder.Facets.
const (
	FacetCity       = index.FacetCity
	FacetType       = index.FacetType
	FacetAmenities  = index.FacetAmenities
	FacetPriceRange = index.FacetPriceRange
)

// Option configures the Client.
type Option func(*clientConfig)

type clientConfig struct {
	encodeWorkers int
	defaultLimit  int
	maxLimit      int
}

// WithEncodeWorkers sets the number of goroutines used to encode records
// during the build. Defaults to GOMAXPROCS.
func WithEncodeWorkers(n int) Option {
	return func(c *clientConfig) {
		c.encodeWorkers = n
	}
}

// WithPagination sets the default and maximum result limits.
// Defaults: 20 and 100.
func WithPagination(defaultLimit, maxLimit int) Option {
	return func(c *clientConfig) {
		c.defaultLimit = defaultLimit
		c.maxLimit = maxLimit
	}
}

// Client is the embedded propdex entry point.
type Client struct {
	ix  *index.Index
	svc *propertyuc.Service
}

// New builds an index over the given catalog and returns a ready Client.
// The catalog is indexed exactly once; the context bounds the build.
func New(ctx context.Context, records []Property, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o(cfg)
	}

	ix := index.New(index.WithEncodeWorkers(cfg.encodeWorkers))
	if err := ix.Build(ctx, records); err != nil {
		return nil, fmt.Errorf("propdex: build index: %w", err)
	}

	svc := propertyuc.New(propertyrepo.New(ix))
	if cfg.defaultLimit > 0 || cfg.maxLimit > 0 {
		svc = svc.WithPagination(cfg.defaultLimit, cfg.maxLimit)
	}

	return &Client{ix: ix, svc: svc}, nil
}

// Len reports the number of indexed properties.
func (c *Client) Len() int {
	return c.ix.Len()
}

// Get returns a property by its catalog identifier.
// Returns ErrNotFound if no such property was indexed.
func (c *Client) Get(ctx context.Context, id int64) (Property, error) {
	return c.svc.Get(ctx, id)
}

// Search starts a fluent search query.
func (c *Client) Search() *SearchBuilder {
	return &SearchBuilder{c: c}
}

// Do executes a search with explicit parameters, for callers that build
// Params themselves instead of using the fluent builder.
func (c *Client) Do(ctx context.Context, params Params) (Result, error) {
	return c.svc.Search(ctx, params)
}
