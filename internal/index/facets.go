package index

import (
	"sort"

	"github.com/propdex/propdex/internal/domain/search"
)

// Facet names accepted by the aggregator. Anything else is dropped silently.
const (
	FacetCity       = "city"
	FacetType       = "type"
	FacetAmenities  = "amenities"
	FacetPriceRange = "priceRange"
)

// facetCaps limits how many buckets each facet surfaces after sorting.
var facetCaps = map[string]int{
	FacetCity:       20,
	FacetType:       10,
	FacetAmenities:  50,
	FacetPriceRange: 10,
}

// facetLabels is one document's category labels. City, type and priceRange
// are single-valued; amenities fan out to one count per label.
type facetLabels struct {
	city         string
	propertyType string
	priceRange   string
	amenities    []string
}

// facetStore keeps per-document labels indexed by docID, retained alongside
// the postings for post-filter aggregation.
// Written only during commit, read-only once the index is sealed.
type facetStore struct {
	labels []facetLabels
}

func newFacetStore(capacity int) *facetStore {
	return &facetStore{labels: make([]facetLabels, 0, capacity)}
}

// add appends a document's labels. Documents must arrive in ascending id order.
func (f *facetStore) add(labels facetLabels) {
	f.labels = append(f.labels, labels)
}

// aggregate counts label occurrences per requested facet over the matched
// set. Counts are always computed post-filter. An empty matched set yields
// no facet results at all, never zero-filled buckets.
func (f *facetStore) aggregate(matched []docID, names []string) []search.FacetResult {
	if len(matched) == 0 || len(names) == 0 {
		return nil
	}

	results := make([]search.FacetResult, 0, len(names))
	for _, name := range names {
		bucketCap, ok := facetCaps[name]
		if !ok {
			continue
		}

		counts := make(map[string]int64)
		for _, id := range matched {
			for _, label := range f.labelsFor(id, name) {
				counts[label]++
			}
		}
		if len(counts) == 0 {
			continue
		}

		buckets := make([]search.FacetBucket, 0, len(counts))
		for label, count := range counts {
			buckets = append(buckets, search.FacetBucket{Value: label, Count: count})
		}
		// Descending by count, label ascending on ties, then truncate.
		sort.Slice(buckets, func(i, j int) bool {
			if buckets[i].Count != buckets[j].Count {
				return buckets[i].Count > buckets[j].Count
			}
			return buckets[i].Value < buckets[j].Value
		})
		if len(buckets) > bucketCap {
			buckets = buckets[:bucketCap]
		}

		results = append(results, search.FacetResult{Name: name, Buckets: buckets})
	}
	return results
}

func (f *facetStore) labelsFor(id docID, facet string) []string {
	l := f.labels[id]
	switch facet {
	case FacetCity:
		return []string{l.city}
	case FacetType:
		return []string{l.propertyType}
	case FacetAmenities:
		return l.amenities
	case FacetPriceRange:
		return []string{l.priceRange}
	}
	return nil
}
