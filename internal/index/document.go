package index

import "github.com/propdex/propdex/internal/domain"

// Indexed field names. Term fields hold exact-match postings, numeric
// fields hold range-queryable points.
const (
	fieldCity      = "city"
	fieldType      = "type"
	fieldAmenities = "amenities"
	fieldPrice     = "pricePerNight"
	fieldGuests    = "maxGuests"
	fieldBedrooms  = "bedrooms"
	fieldRating    = "rating"
)

// Price band boundaries for the priceRange facet.
const (
	bandBudget      = "Budget"
	bandStandard    = "Standard"
	bandPremium     = "Premium"
	bandLuxury      = "Luxury"
	bandUltraLuxury = "Ultra-Luxury"
)

// geoPoint is an indexable coordinate pair.
type geoPoint struct {
	lat float64
	lon float64
}

// encodedDoc is the indexable form of one property. It exists only during
// a build; the commit step folds it into the sealed structures.
type encodedDoc struct {
	record   domain.Property
	terms    map[string][]string
	numerics map[string]float64
	geo      *geoPoint
	labels   facetLabels
}

// encodeDocument converts a property into its indexable representation.
// Pure transformation: any property is encodable, there are no error cases.
func encodeDocument(p domain.Property) encodedDoc {
	terms := map[string][]string{
		fieldCity: {p.Location.City},
		fieldType: {string(p.Type)},
	}
	if len(p.Amenities) > 0 {
		terms[fieldAmenities] = p.Amenities
	}

	numerics := map[string]float64{
		fieldPrice:    float64(p.PricePerNight),
		fieldGuests:   float64(p.MaxGuests),
		fieldBedrooms: float64(p.Bedrooms),
		fieldRating:   p.Rating,
	}

	var point *geoPoint
	if p.Location.HasCoordinates() {
		point = &geoPoint{lat: *p.Location.Latitude, lon: *p.Location.Longitude}
	}

	return encodedDoc{
		record:   p,
		terms:    terms,
		numerics: numerics,
		geo:      point,
		labels: facetLabels{
			city:         p.Location.City,
			propertyType: string(p.Type),
			amenities:    p.Amenities,
			priceRange:   priceBand(p.PricePerNight),
		},
	}
}

// priceBand maps a nightly price onto one of five fixed bands.
func priceBand(price int) string {
	switch {
	case price <= 99:
		return bandBudget
	case price <= 199:
		return bandStandard
	case price <= 299:
		return bandPremium
	case price <= 499:
		return bandLuxury
	default:
		return bandUltraLuxury
	}
}
