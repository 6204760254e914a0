package index

import (
	"testing"

	"github.com/propdex/propdex/internal/domain"
)

func TestPriceBand(t *testing.T) {
	tests := []struct {
		price int
		band  string
	}{
		{0, bandBudget},
		{45, bandBudget},
		{99, bandBudget},
		{100, bandStandard},
		{199, bandStandard},
		{200, bandPremium},
		{299, bandPremium},
		{300, bandLuxury},
		{499, bandLuxury},
		{500, bandUltraLuxury},
		{2500, bandUltraLuxury},
	}

	for _, tc := range tests {
		if got := priceBand(tc.price); got != tc.band {
			t.Errorf("priceBand(%d) = %q, expected %q", tc.price, got, tc.band)
		}
	}
}

func TestEncodeDocument(t *testing.T) {
	lat, lon := 40.4168, -3.7038
	p := domain.Property{
		ID:   7,
		Name: "Hotel Madrid Centro",
		Type: domain.TypeHotel,
		Location: domain.Location{
			City: "Madrid", Country: "Spain",
			Latitude: &lat, Longitude: &lon,
		},
		PricePerNight: 150,
		Amenities:     []string{"WiFi", "Pool"},
		MaxGuests:     4,
		Bedrooms:      2,
		Rating:        4.5,
	}

	doc := encodeDocument(p)

	if got := doc.terms[fieldCity]; len(got) != 1 || got[0] != "Madrid" {
		t.Errorf("city terms = %v, expected [Madrid]", got)
	}
	if got := doc.terms[fieldType]; len(got) != 1 || got[0] != "HOTEL" {
		t.Errorf("type terms = %v, expected [HOTEL]", got)
	}
	if got := doc.terms[fieldAmenities]; len(got) != 2 {
		t.Errorf("amenity terms = %v, expected 2 entries", got)
	}
	if doc.numerics[fieldPrice] != 150 || doc.numerics[fieldGuests] != 4 ||
		doc.numerics[fieldBedrooms] != 2 || doc.numerics[fieldRating] != 4.5 {
		t.Errorf("numerics = %v", doc.numerics)
	}
	if doc.geo == nil || doc.geo.lat != lat || doc.geo.lon != lon {
		t.Errorf("geo = %v, expected (%v, %v)", doc.geo, lat, lon)
	}
	if doc.labels.priceRange != bandStandard {
		t.Errorf("priceRange label = %q, expected %q", doc.labels.priceRange, bandStandard)
	}
	if doc.labels.city != "Madrid" || doc.labels.propertyType != "HOTEL" {
		t.Errorf("labels = %+v", doc.labels)
	}
}

func TestEncodeDocument_NoCoordinates(t *testing.T) {
	p := domain.Property{
		ID:       1,
		Type:     domain.TypeApartment,
		Location: domain.Location{City: "Madrid"},
	}

	doc := encodeDocument(p)

	if doc.geo != nil {
		t.Errorf("expected nil geo point for property without coordinates, got %v", doc.geo)
	}
}
