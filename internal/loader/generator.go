package loader

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/propdex/propdex/internal/domain"
)

// cityCoords holds approximate base coordinates for the generated cities.
var cityCoords = map[string][2]float64{
	"Madrid":        {40.4168, -3.7038},
	"Barcelona":     {41.3851, 2.1734},
	"Valencia":      {39.4699, -0.3763},
	"Sevilla":       {37.3886, -5.9823},
	"Bilbao":        {43.2627, -2.9253},
	"Zaragoza":      {41.6488, -0.8891},
	"Málaga":        {36.7213, -4.4214},
	"Palma":         {39.5696, 2.6502},
	"Tenerife":      {28.2916, -16.6291},
	"San Sebastián": {43.3183, -1.9812},
}

var cities = []string{
	"Madrid", "Barcelona", "Valencia", "Sevilla", "Bilbao", "Zaragoza",
	"Málaga", "Palma", "Tenerife", "San Sebastián",
}

var amenityPool = []string{
	"WiFi", "Pool", "Gym", "Parking", "Air Conditioning", "Kitchen",
	"Balcony", "Terrace", "Garden", "Sea View", "Mountain View",
	"Pet Friendly", "Breakfast", "Room Service", "Concierge", "Spa",
	"Restaurant", "Bar", "Beach Access", "Ski Access", "City Center",
}

var propertyNames = []string{
	"Luxury Villa", "Modern Apartment", "Historic Hotel", "Cozy Studio",
	"Family House", "Boutique Hotel", "Beach Resort", "Mountain Lodge",
	"City Loft", "Countryside Retreat", "Penthouse Suite", "Garden Villa",
	"Seaside Hotel", "Urban Apartment", "Traditional Casa", "Designer Loft",
}

var descriptions = []string{
	"Stunning property with breathtaking views and modern amenities",
	"Perfect for families looking for comfort and convenience",
	"Luxury accommodation in the heart of the city",
	"Peaceful retreat with all the comforts of home",
	"Elegant design meets functionality in this beautiful space",
	"Experience authentic local culture in this charming property",
	"Modern amenities combined with traditional architecture",
	"Ideal location for exploring the city and surrounding areas",
}

// Generate produces a random property catalog with ids 1..count.
func Generate(count int) []domain.Property {
	properties := make([]domain.Property, 0, count)
	for i := 1; i <= count; i++ {
		properties = append(properties, generateProperty(int64(i)))
	}
	return properties
}

func generateProperty(id int64) domain.Property {
	city := cities[rand.IntN(len(cities))]
	types := domain.PropertyTypes()
	typ := types[rand.IntN(len(types))]

	maxGuests := 1 + rand.IntN(12)
	var bedrooms int
	switch {
	case maxGuests <= 2:
		bedrooms = 1 + rand.IntN(2)
	case maxGuests <= 4:
		bedrooms = 1 + rand.IntN(3)
	case maxGuests <= 6:
		bedrooms = 2 + rand.IntN(3)
	default:
		bedrooms = 3 + rand.IntN(4)
	}

	var basePrice int
	switch typ {
	case domain.TypeHotel:
		basePrice = 50 + rand.IntN(250)
	case domain.TypeApartment:
		basePrice = 40 + rand.IntN(210)
	case domain.TypeVilla:
		basePrice = 100 + rand.IntN(400)
	}

	// The big cities run more expensive.
	multiplier := 1.0
	switch city {
	case "Madrid", "Barcelona":
		multiplier = 1.3
	case "Valencia", "Sevilla", "Bilbao":
		multiplier = 1.1
	}

	return domain.Property{
		ID:            id,
		Name:          fmt.Sprintf("%s %s", propertyNames[rand.IntN(len(propertyNames))], city),
		Type:          typ,
		Description:   descriptions[rand.IntN(len(descriptions))],
		Location:      generateLocation(city),
		PricePerNight: int(float64(basePrice) * multiplier),
		Amenities:     generateAmenities(),
		MaxGuests:     maxGuests,
		Bedrooms:      bedrooms,
		Rating:        generateRating(),
	}
}

func generateLocation(city string) domain.Location {
	base := cityCoords[city]
	lat := base[0] + rand.Float64()*0.2 - 0.1
	lon := base[1] + rand.Float64()*0.2 - 0.1
	return domain.Location{
		City:      city,
		Country:   "Spain",
		Latitude:  &lat,
		Longitude: &lon,
	}
}

func generateAmenities() []string {
	count := 3 + rand.IntN(5) // 3-7 amenities
	picked := rand.Perm(len(amenityPool))[:count]
	amenities := make([]string, count)
	for i, idx := range picked {
		amenities[i] = amenityPool[idx]
	}
	return amenities
}

// generateRating skews toward high ratings, rounded to one decimal.
func generateRating() float64 {
	var r float64
	switch n := rand.IntN(100); {
	case n < 5:
		r = 1.0 + rand.Float64()*1.5
	case n < 15:
		r = 2.5 + rand.Float64()*1.0
	case n < 35:
		r = 3.5 + rand.Float64()*0.5
	case n < 70:
		r = 4.0 + rand.Float64()*0.5
	default:
		r = 4.5 + rand.Float64()*0.5
	}
	return math.Round(r*10) / 10
}
