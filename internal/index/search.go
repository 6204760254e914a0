package index

import (
	"fmt"
	"math"
	"time"

	"github.com/propdex/propdex/internal/domain"
	"github.com/propdex/propdex/internal/domain/search"
)

// Search compiles the filter specification into a predicate plan, evaluates
// it against the sealed structures, aggregates any requested facets over the
// matched set, and hydrates the top ids into full records.
//
// Results are truncated to the limit in ascending internal document id
// order; no relevance ranking applies. Returns ErrNotReady before Build and
// ErrCorrupted if a hit id has no record store entry.
func (ix *Index) Search(params search.Params) (search.Result, error) {
	if !ix.Ready() {
		return search.Result{}, domain.ErrNotReady
	}
	params.Normalize(search.DefaultLimit, search.MaxLimit)

	start := time.Now()

	matched := ix.evaluate(ix.plan(params))

	facets := ix.facets.aggregate(matched, params.Facets)

	items, err := ix.hydrate(matched, params.Limit)
	if err != nil {
		return search.Result{}, err
	}

	return search.Result{
		TotalHits: int64(len(matched)),
		TookMs:    time.Since(start).Milliseconds(),
		Items:     items,
		Facets:    facets,
	}, nil
}

// plan builds one sorted id list per present filter dimension. Same-
// dimension lists (cities, types) union into a single conjunct; everything
// else intersects. An empty plan matches every document.
func (ix *Index) plan(params search.Params) [][]docID {
	var conjuncts [][]docID

	if params.MinPrice != nil || params.MaxPrice != nil {
		minPrice := 0.0
		if params.MinPrice != nil {
			minPrice = float64(*params.MinPrice)
		}
		maxPrice := math.Inf(1)
		if params.MaxPrice != nil {
			maxPrice = float64(*params.MaxPrice)
		}
		conjuncts = append(conjuncts, ix.numerics.rangeMatch(fieldPrice, minPrice, maxPrice))
	}

	if params.MinGuests != nil {
		conjuncts = append(conjuncts, ix.numerics.rangeMatch(fieldGuests, float64(*params.MinGuests), math.Inf(1)))
	}
	if params.MinBedrooms != nil {
		conjuncts = append(conjuncts, ix.numerics.rangeMatch(fieldBedrooms, float64(*params.MinBedrooms), math.Inf(1)))
	}
	if params.MinRating != nil {
		conjuncts = append(conjuncts, ix.numerics.rangeMatch(fieldRating, *params.MinRating, math.Inf(1)))
	}

	// Every listed amenity is required.
	for _, amenity := range params.Amenities {
		conjuncts = append(conjuncts, ix.terms.match(fieldAmenities, amenity))
	}

	// Cities and types are any-of within the dimension, required against
	// the rest of the plan.
	if len(params.Cities) > 0 {
		lists := make([][]docID, 0, len(params.Cities))
		for _, city := range params.Cities {
			lists = append(lists, ix.terms.match(fieldCity, city))
		}
		conjuncts = append(conjuncts, unionAll(lists...))
	}
	if len(params.PropertyTypes) > 0 {
		lists := make([][]docID, 0, len(params.PropertyTypes))
		for _, t := range params.PropertyTypes {
			lists = append(lists, ix.terms.match(fieldType, t))
		}
		conjuncts = append(conjuncts, unionAll(lists...))
	}

	if params.HasGeo() {
		conjuncts = append(conjuncts, ix.geo.radiusMatch(*params.Latitude, *params.Longitude, *params.RadiusKm))
	}

	return conjuncts
}

// evaluate intersects all conjuncts. With no conjuncts, every document matches.
func (ix *Index) evaluate(conjuncts [][]docID) []docID {
	if len(conjuncts) == 0 {
		all := make([]docID, len(ix.recordIDs))
		for i := range all {
			all[i] = docID(i)
		}
		return all
	}

	matched := conjuncts[0]
	for _, c := range conjuncts[1:] {
		matched = intersect(matched, c)
		if len(matched) == 0 {
			return nil
		}
	}
	return matched
}

// hydrate looks up the first limit hits in the record store. A missing
// record here means the postings and record store have desynchronized,
// which is a fatal internal error, never a not-found.
func (ix *Index) hydrate(matched []docID, limit int) ([]domain.Property, error) {
	if limit > len(matched) {
		limit = len(matched)
	}
	items := make([]domain.Property, 0, limit)
	for _, id := range matched[:limit] {
		rec, ok := ix.records.get(ix.recordIDs[id])
		if !ok {
			return nil, fmt.Errorf("%w: doc %d has no record %d", domain.ErrCorrupted, id, ix.recordIDs[id])
		}
		items = append(items, rec)
	}
	return items, nil
}
