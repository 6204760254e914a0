package search

// Pagination limits.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Params is a filter specification for a property search. Absent optional
// fields leave the corresponding dimension unconstrained; an empty Params
// matches the whole catalog.
type Params struct {
	MinPrice *int `json:"minPrice,omitempty"`
	MaxPrice *int `json:"maxPrice,omitempty"`

	MinGuests   *int     `json:"minGuests,omitempty"`
	MinBedrooms *int     `json:"minBedrooms,omitempty"`
	MinRating   *float64 `json:"minRating,omitempty"`

	Amenities     []string `json:"amenities,omitempty"`     // all required (AND)
	Cities        []string `json:"cities,omitempty"`        // any-of (OR)
	PropertyTypes []string `json:"propertyTypes,omitempty"` // any-of (OR)

	// Geo radius filter. All three must be present or the filter is skipped.
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	RadiusKm  *float64 `json:"radiusKm,omitempty"`

	Limit int `json:"limit,omitempty"`

	// Facets to aggregate over the matched set, e.g. ["city", "priceRange"].
	Facets []string `json:"facets,omitempty"`
}

// HasGeo reports whether a complete geo filter was supplied. A partial set
// of coordinates is treated as no geo filter at all, not as an error.
func (p Params) HasGeo() bool {
	return p.Latitude != nil && p.Longitude != nil && p.RadiusKm != nil
}

// Normalize clamps the limit into [1, maxLimit], applying defaultLimit when
// the limit is unset or non-positive.
func (p *Params) Normalize(defaultLimit, maxLimit int) {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
}
