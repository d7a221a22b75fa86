// Package matching_test contains tests for the compatibility scoring engine
package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"volunteer-matching-engine/internal/matching"
	"volunteer-matching-engine/internal/models"
)

func TestCalculateDistance_IdenticalCoordinates(t *testing.T) {
	assert.Equal(t, 0.0, matching.CalculateDistance(29.7604, -95.3698, 29.7604, -95.3698))
	assert.Equal(t, 0.0, matching.CalculateDistance(0, 0, 0, 0))
	assert.Equal(t, 0.0, matching.CalculateDistance(-33.8688, 151.2093, -33.8688, 151.2093))
}

func TestCalculateDistance_HoustonToAustin(t *testing.T) {
	distance := matching.CalculateDistance(
		houston.Latitude, houston.Longitude,
		austin.Latitude, austin.Longitude,
	)

	assert.InDelta(t, 235, distance, 10)
}

func TestCalculateDistance_Symmetric(t *testing.T) {
	forward := matching.CalculateDistance(houston.Latitude, houston.Longitude, austin.Latitude, austin.Longitude)
	backward := matching.CalculateDistance(austin.Latitude, austin.Longitude, houston.Latitude, houston.Longitude)

	assert.InDelta(t, forward, backward, 1e-9)
}

func TestCalculateLocationScore_SameLocation(t *testing.T) {
	volunteer := mockVolunteer(nil)
	event := mockEvent(nil)

	score := matching.CalculateLocationScore(volunteer.Profile, event)

	assert.Greater(t, score, 90.0)
}

func TestCalculateLocationScore_FarBeyondTravelRadius(t *testing.T) {
	volunteer := mockVolunteer(map[string]interface{}{
		"location": &models.Coordinates{Latitude: austin.Latitude, Longitude: austin.Longitude},
	})
	event := mockEvent(nil)

	score := matching.CalculateLocationScore(volunteer.Profile, event)

	// ~235 km against a 50 km radius decays all the way to the floor.
	assert.Less(t, score, 50.0)
	assert.Equal(t, 0.0, score)
}

func TestCalculateLocationScore_MissingCoordinates(t *testing.T) {
	noLocation := mockVolunteer(nil)
	noLocation.Profile.Location = nil
	assert.Equal(t, 50.0, matching.CalculateLocationScore(noLocation.Profile, mockEvent(nil)))

	eventWithoutLocation := mockEvent(map[string]interface{}{"location": nil})
	assert.Equal(t, 50.0, matching.CalculateLocationScore(mockVolunteer(nil).Profile, eventWithoutLocation))
}

func TestCalculateLocationScore_DefaultRadiusWhenUnstated(t *testing.T) {
	volunteer := mockVolunteer(map[string]interface{}{
		"preferences": (*models.Preferences)(nil),
	})
	event := mockEvent(nil)

	// Same coordinates still score 100 under the default radius.
	assert.Equal(t, 100.0, matching.CalculateLocationScore(volunteer.Profile, event))
}

func TestCalculateLocationScore_DecaysWithDistance(t *testing.T) {
	near := mockVolunteer(map[string]interface{}{
		"location": &models.Coordinates{Latitude: 29.80, Longitude: -95.38},
	})
	far := mockVolunteer(map[string]interface{}{
		"location": &models.Coordinates{Latitude: 30.00, Longitude: -95.60},
	})
	event := mockEvent(nil)

	nearScore := matching.CalculateLocationScore(near.Profile, event)
	farScore := matching.CalculateLocationScore(far.Profile, event)

	assert.Greater(t, nearScore, farScore)
	assert.GreaterOrEqual(t, farScore, 0.0)
	assert.LessOrEqual(t, nearScore, 100.0)
}
