package propdex

import (
	"context"

	"github.com/propdex/propdex/internal/domain/search"
)

// SearchBuilder is a fluent builder for search queries.
type SearchBuilder struct {
	c      *Client
	params search.Params
}

// Cities restricts results to listings in any of the given cities.
func (b *SearchBuilder) Cities(cities ...string) *SearchBuilder {
	b.params.Cities = append(b.params.Cities, cities...)
	return b
}

// Types restricts results to any of the given property types.
func (b *SearchBuilder) Types(types ...PropertyType) *SearchBuilder {
	for _, t := range types {
		b.params.PropertyTypes = append(b.params.PropertyTypes, string(t))
	}
	return b
}

// Amenities requires every listed amenity to be present.
func (b *SearchBuilder) Amenities(amenities ...string) *SearchBuilder {
	b.params.Amenities = append(b.params.Amenities, amenities...)
	return b
}

// PriceBetween bounds the nightly price, inclusive on both ends.
func (b *SearchBuilder) PriceBetween(minPrice, maxPrice int) *SearchBuilder {
	b.params.MinPrice = &minPrice
	b.params.MaxPrice = &maxPrice
	return b
}

// MinPrice sets an inclusive lower price bound.
func (b *SearchBuilder) MinPrice(p int) *SearchBuilder {
	b.params.MinPrice = &p
	return b
}

// MaxPrice sets an inclusive upper price bound.
func (b *SearchBuilder) MaxPrice(p int) *SearchBuilder {
	b.params.MaxPrice = &p
	return b
}

// MinGuests requires listings to sleep at least n guests.
func (b *SearchBuilder) MinGuests(n int) *SearchBuilder {
	b.params.MinGuests = &n
	return b
}

// MinBedrooms requires listings to have at least n bedrooms.
func (b *SearchBuilder) MinBedrooms(n int) *SearchBuilder {
	b.params.MinBedrooms = &n
	return b
}

// MinRating requires a rating of at least r.
func (b *SearchBuilder) MinRating(r float64) *SearchBuilder {
	b.params.MinRating = &r
	return b
}

// Near sets the geographic center point for radius search.
// Has no effect unless Km is also called.
func (b *SearchBuilder) Near(lat, lon float64) *SearchBuilder {
	b.params.Latitude = &lat
	b.params.Longitude = &lon
	return b
}

// Km sets the search radius in kilometers around the Near center.
func (b *SearchBuilder) Km(radius float64) *SearchBuilder {
	b.params.RadiusKm = &radius
	return b
}

// Facets requests aggregations over the matched set.
// Valid names are FacetCity, FacetType, FacetAmenities and FacetPriceRange.
func (b *SearchBuilder) Facets(names ...string) *SearchBuilder {
	b.params.Facets = append(b.params.Facets, names...)
	return b
}

// Limit sets the maximum number of returned items.
func (b *SearchBuilder) Limit(n int) *SearchBuilder {
	b.params.Limit = n
	return b
}

// Do executes the search.
func (b *SearchBuilder) Do(ctx context.Context) (Result, error) {
	return b.c.svc.Search(ctx, b.params)
}
