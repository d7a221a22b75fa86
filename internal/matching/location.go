package matching

import (
	"volunteer-matching-engine/internal/models"
)

const (
	// DefaultMaxDistanceKm is the travel radius assumed when a volunteer has
	// not stated one.
	DefaultMaxDistanceKm = 50.0

	// neutralLocationScore is returned when either side has no coordinates:
	// unknown, but not penalized.
	neutralLocationScore = 50.0
)

// CalculateLocationScore scores how reachable an event is for a volunteer.
// The score decays linearly from 100 at distance zero to 50 at the
// volunteer's travel radius, then continues to 0 beyond it.
func CalculateLocationScore(profile *models.VolunteerProfile, event *models.Event) float64 {
	if profile == nil || profile.Location == nil || event.Location == nil {
		return neutralLocationScore
	}

	maxDistance := DefaultMaxDistanceKm
	if profile.Preferences != nil && profile.Preferences.MaxDistanceKm > 0 {
		maxDistance = profile.Preferences.MaxDistanceKm
	}

	distance := CalculateDistance(
		profile.Location.Latitude, profile.Location.Longitude,
		event.Location.Latitude, event.Location.Longitude,
	)

	if distance <= maxDistance {
		return 100 - (distance/maxDistance)*50
	}

	score := 50 - ((distance-maxDistance)/maxDistance)*50
	if score < 0 {
		score = 0
	}
	return score
}
