package domain

// PropertyType is the listing category.
type PropertyType string

// Known property types.
const (
	TypeHotel     PropertyType = "HOTEL"
	TypeApartment PropertyType = "APARTMENT"
	TypeVilla     PropertyType = "VILLA"
)

// PropertyTypes lists all known property types.
func PropertyTypes() []PropertyType {
	return []PropertyType{TypeHotel, TypeApartment, TypeVilla}
}

// Location is where a property sits. Coordinates are optional; a listing
// without them is still indexable but never matches a geo filter.
type Location struct {
	City      string   `json:"city"`
	Country   string   `json:"country"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// HasCoordinates reports whether both latitude and longitude are set.
func (l Location) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// Property is a single listing record. Immutable once handed to the index;
// IDs are externally assigned and unique.
type Property struct {
	ID            int64        `json:"id"`
	Name          string       `json:"name"`
	Type          PropertyType `json:"type"`
	Description   string       `json:"description"`
	Location      Location     `json:"location"`
	PricePerNight int          `json:"pricePerNight"`
	Amenities     []string     `json:"amenities"`
	MaxGuests     int          `json:"maxGuests"`
	Bedrooms      int          `json:"bedrooms"`
	Rating        float64      `json:"rating"`
}
