// Package propdex provides an embeddable property search index.
//
// A Client builds an immutable in-memory index over a property catalog
// once, then answers lookups, multi-criteria filter searches, geographic
// radius searches and faceted aggregations from it. There is no server
// and no external store: the catalog lives in process memory.
//
//	records, _ := loader.Load("file://properties.json", logger)
//	client, _ := propdex.New(ctx, records)
//
//	result, _ := client.Search().
//	    Cities("Madrid", "Barcelona").
//	    PriceBetween(100, 250).
//	    Amenities("Pool").
//	    Facets(propdex.FacetCity, propdex.FacetPriceRange).
//	    Limit(20).
//	    Do(ctx)
package propdex
