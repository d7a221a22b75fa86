// Package matching_test contains tests for the compatibility scoring engine
package matching_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"volunteer-matching-engine/internal/matching"
	"volunteer-matching-engine/internal/models"
)

// rankerPool builds a pool with a strong, a medium, and a weak candidate.
func rankerPool() []*models.Volunteer {
	strong := mockVolunteer(map[string]interface{}{
		"id":           int64(1),
		"volunteer_id": "VOL001",
	})
	medium := mockVolunteer(map[string]interface{}{
		"id":           int64(2),
		"volunteer_id": "VOL002",
		"skills":       []models.VolunteerSkill{},
	})
	weak := mockVolunteer(map[string]interface{}{
		"id":           int64(3),
		"volunteer_id": "VOL003",
		"skills":       []models.VolunteerSkill{},
		"availability": []models.AvailabilitySlot{},
		"location":     &models.Coordinates{Latitude: austin.Latitude, Longitude: austin.Longitude},
	})
	return []*models.Volunteer{weak, strong, medium}
}

func TestRankVolunteers_SortsByScoreDescending(t *testing.T) {
	ranked := matching.RankVolunteers(mockEvent(nil), rankerPool(), nil, matching.RankOptions{})

	assert.Len(t, ranked, 3)
	assert.Equal(t, "VOL001", ranked[0].Volunteer.VolunteerID)
	assert.Equal(t, "VOL002", ranked[1].Volunteer.VolunteerID)
	assert.Equal(t, "VOL003", ranked[2].Volunteer.VolunteerID)
	assert.GreaterOrEqual(t, ranked[0].TotalScore, ranked[1].TotalScore)
	assert.GreaterOrEqual(t, ranked[1].TotalScore, ranked[2].TotalScore)
}

func TestRankVolunteers_TieBrokenByVolunteerID(t *testing.T) {
	twin1 := mockVolunteer(map[string]interface{}{"id": int64(10), "volunteer_id": "VOL010"})
	twin2 := mockVolunteer(map[string]interface{}{"id": int64(11), "volunteer_id": "VOL011"})
	pool := []*models.Volunteer{twin2, twin1}

	ranked := matching.RankVolunteers(mockEvent(nil), pool, nil, matching.RankOptions{})

	assert.Len(t, ranked, 2)
	assert.Equal(t, ranked[0].TotalScore, ranked[1].TotalScore)
	assert.Equal(t, "VOL010", ranked[0].Volunteer.VolunteerID)
	assert.Equal(t, "VOL011", ranked[1].Volunteer.VolunteerID)
}

func TestRankVolunteers_ExcludesAssigned(t *testing.T) {
	assigned := map[int64]bool{1: true}

	ranked := matching.RankVolunteers(mockEvent(nil), rankerPool(), assigned, matching.RankOptions{})
	assert.Len(t, ranked, 2)
	for _, r := range ranked {
		assert.NotEqual(t, int64(1), r.Volunteer.ID)
	}

	withAssigned := matching.RankVolunteers(mockEvent(nil), rankerPool(), assigned, matching.RankOptions{IncludeAssigned: true})
	assert.Len(t, withAssigned, 3)
	assert.Equal(t, int64(1), withAssigned[0].Volunteer.ID)
}

func TestRankVolunteers_MinScoreFilter(t *testing.T) {
	ranked := matching.RankVolunteers(mockEvent(nil), rankerPool(), nil, matching.RankOptions{MinScore: 90})

	assert.Len(t, ranked, 1)
	assert.Equal(t, "VOL001", ranked[0].Volunteer.VolunteerID)
	assert.GreaterOrEqual(t, ranked[0].TotalScore, 90)
}

func TestRankVolunteers_LimitTruncates(t *testing.T) {
	ranked := matching.RankVolunteers(mockEvent(nil), rankerPool(), nil, matching.RankOptions{Limit: 2})

	assert.Len(t, ranked, 2)
	assert.Equal(t, "VOL001", ranked[0].Volunteer.VolunteerID)
}

func TestRankVolunteers_DefaultLimit(t *testing.T) {
	pool := make([]*models.Volunteer, 0, 25)
	for i := 0; i < 25; i++ {
		pool = append(pool, mockVolunteer(map[string]interface{}{
			"id":           int64(i + 1),
			"volunteer_id": fmt.Sprintf("VOL%03d", i+1),
		}))
	}

	ranked := matching.RankVolunteers(mockEvent(nil), pool, nil, matching.RankOptions{})

	assert.Len(t, ranked, matching.DefaultResultLimit)
}

func TestRankVolunteers_DropsUnscorableVolunteers(t *testing.T) {
	noProfile := mockVolunteer(map[string]interface{}{"id": int64(99), "volunteer_id": "VOL099"})
	noProfile.Profile = nil
	pool := append(rankerPool(), noProfile)

	ranked := matching.RankVolunteers(mockEvent(nil), pool, nil, matching.RankOptions{})

	assert.Len(t, ranked, 3)
	for _, r := range ranked {
		assert.Empty(t, r.Error)
		assert.NotEqual(t, int64(99), r.Volunteer.ID)
	}
}

func TestRankVolunteers_EmptyPool(t *testing.T) {
	ranked := matching.RankVolunteers(mockEvent(nil), nil, nil, matching.RankOptions{})

	assert.Empty(t, ranked)
}
