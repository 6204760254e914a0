package index

import "github.com/propdex/propdex/internal/domain/geo"

// geoEntry is one indexed coordinate pair. Documents without coordinates
// are simply absent and can never match a geo filter.
type geoEntry struct {
	id    docID
	point geoPoint
}

// geoIndex holds document coordinates in ascending id order.
// Written only during commit, read-only once the index is sealed.
type geoIndex struct {
	entries []geoEntry
}

func newGeoIndex() *geoIndex {
	return &geoIndex{}
}

func (g *geoIndex) add(id docID, point geoPoint) {
	g.entries = append(g.entries, geoEntry{id: id, point: point})
}

// radiusMatch returns the sorted ids of documents whose point lies within
// the great-circle radius (km) of the center.
func (g *geoIndex) radiusMatch(centerLat, centerLon, radiusKm float64) []docID {
	radiusM := radiusKm * 1000
	var ids []docID
	for _, e := range g.entries {
		if geo.Haversine(centerLat, centerLon, e.point.lat, e.point.lon) <= radiusM {
			ids = append(ids, e.id)
		}
	}
	return ids
}
