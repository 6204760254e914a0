package index

import (
	"reflect"
	"testing"

	"github.com/propdex/propdex/internal/domain/search"
)

func buildFacetFixture() *facetStore {
	f := newFacetStore(4)
	f.add(facetLabels{city: "Madrid", propertyType: "HOTEL", priceRange: bandStandard, amenities: []string{"WiFi", "Pool"}})
	f.add(facetLabels{city: "Madrid", propertyType: "APARTMENT", priceRange: bandStandard, amenities: []string{"WiFi"}})
	f.add(facetLabels{city: "Barcelona", propertyType: "HOTEL", priceRange: bandPremium, amenities: []string{"Pool"}})
	f.add(facetLabels{city: "Valencia", propertyType: "VILLA", priceRange: bandBudget, amenities: nil})
	return f
}

func TestFacetStore_Aggregate_SingleValued(t *testing.T) {
	f := buildFacetFixture()

	results := f.aggregate([]docID{0, 1, 2, 3}, []string{FacetCity})
	if len(results) != 1 {
		t.Fatalf("expected 1 facet result, got %d", len(results))
	}

	expected := []search.FacetBucket{
		{Value: "Madrid", Count: 2},
		{Value: "Barcelona", Count: 1},
		{Value: "Valencia", Count: 1},
	}
	if !reflect.DeepEqual(results[0].Buckets, expected) {
		t.Errorf("city buckets = %v, expected %v", results[0].Buckets, expected)
	}

	// Single-valued facet counts must sum to the matched set size.
	var sum int64
	for _, b := range results[0].Buckets {
		sum += b.Count
	}
	if sum != 4 {
		t.Errorf("city bucket counts sum to %d, expected 4", sum)
	}
}

func TestFacetStore_Aggregate_MultiValuedFanout(t *testing.T) {
	f := buildFacetFixture()

	results := f.aggregate([]docID{0, 1, 2}, []string{FacetAmenities})
	if len(results) != 1 {
		t.Fatalf("expected 1 facet result, got %d", len(results))
	}

	// Docs 0-2 carry 4 (doc, label) pairs over 3 matched docs.
	expected := []search.FacetBucket{
		{Value: "Pool", Count: 2},
		{Value: "WiFi", Count: 2},
	}
	if !reflect.DeepEqual(results[0].Buckets, expected) {
		t.Errorf("amenities buckets = %v, expected %v", results[0].Buckets, expected)
	}
}

func TestFacetStore_Aggregate_PostFilterOnly(t *testing.T) {
	f := buildFacetFixture()

	// Only Madrid docs matched; Barcelona and Valencia must not appear.
	results := f.aggregate([]docID{0, 1}, []string{FacetCity, FacetPriceRange})
	if len(results) != 2 {
		t.Fatalf("expected 2 facet results, got %d", len(results))
	}
	if len(results[0].Buckets) != 1 || results[0].Buckets[0].Value != "Madrid" {
		t.Errorf("city buckets = %v, expected only Madrid", results[0].Buckets)
	}
	if len(results[1].Buckets) != 1 || results[1].Buckets[0].Value != bandStandard {
		t.Errorf("priceRange buckets = %v, expected only %s", results[1].Buckets, bandStandard)
	}
}

func TestFacetStore_Aggregate_UnknownNameDropped(t *testing.T) {
	f := buildFacetFixture()

	results := f.aggregate([]docID{0, 1}, []string{"bogus", FacetType})
	if len(results) != 1 || results[0].Name != FacetType {
		t.Errorf("expected only the type facet, got %v", results)
	}
}

func TestFacetStore_Aggregate_EmptyMatchedSet(t *testing.T) {
	f := buildFacetFixture()

	if results := f.aggregate(nil, []string{FacetCity, FacetType}); results != nil {
		t.Errorf("expected no facet results for empty matched set, got %v", results)
	}
}

func TestFacetStore_Aggregate_TieBreakByLabel(t *testing.T) {
	f := newFacetStore(2)
	f.add(facetLabels{city: "Valencia"})
	f.add(facetLabels{city: "Barcelona"})

	results := f.aggregate([]docID{0, 1}, []string{FacetCity})
	expected := []search.FacetBucket{
		{Value: "Barcelona", Count: 1},
		{Value: "Valencia", Count: 1},
	}
	if !reflect.DeepEqual(results[0].Buckets, expected) {
		t.Errorf("buckets = %v, expected label-ascending tie-break %v", results[0].Buckets, expected)
	}
}

func TestFacetStore_Aggregate_CapTruncation(t *testing.T) {
	f := newFacetStore(15)
	cities := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"}
	var matched []docID
	for i, c := range cities {
		f.add(facetLabels{propertyType: c})
		matched = append(matched, docID(i))
	}

	// type facet caps at 10 buckets.
	results := f.aggregate(matched, []string{FacetType})
	if len(results[0].Buckets) != 10 {
		t.Errorf("expected 10 type buckets after truncation, got %d", len(results[0].Buckets))
	}
}
