package search

import "github.com/propdex/propdex/internal/domain"

// FacetBucket is one (label, count) pair within a facet result.
type FacetBucket struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

// FacetResult holds the buckets for one facet, ordered by descending count
// (label ascending on ties).
type FacetResult struct {
	Name    string        `json:"name"`
	Buckets []FacetBucket `json:"buckets"`
}

// Result is a completed search: the exact total match count, elapsed wall
// time, the hydrated page of records, and any requested facets. Items are
// ordered by ascending internal document id; no relevance scoring applies.
type Result struct {
	TotalHits int64             `json:"totalHits"`
	TookMs    int64             `json:"tookMs"`
	Items     []domain.Property `json:"items"`
	Facets    []FacetResult     `json:"facets"`
}
