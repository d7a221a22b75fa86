// Package matching implements the volunteer-to-event compatibility scoring engine.
//
// Every scorer is a pure function of a volunteer profile and an event: no
// I/O, no shared state, always returning a score in [0,100]. Missing data
// degrades to documented defaults instead of failing.
package matching

import (
	"math"
)

const earthRadiusKm = 6371.0

// CalculateDistance returns the great-circle distance in kilometers between
// two coordinates using the haversine formula.
func CalculateDistance(lat1, lon1, lat2, lon2 float64) float64 {
	if lat1 == lat2 && lon1 == lon2 {
		return 0
	}

	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
