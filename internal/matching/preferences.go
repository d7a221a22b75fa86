package matching

import (
	"strings"

	"volunteer-matching-engine/internal/models"
)

const (
	neutralPreferencesScore = 50.0
	causeMatchScore         = 70.0
	causeMissScore          = 40.0
)

// CalculatePreferencesScore scores cause-of-interest alignment and urgency
// sensitivity. Volunteers with no stated preferences get the neutral default.
func CalculatePreferencesScore(profile *models.VolunteerProfile, event *models.Event) float64 {
	if profile == nil || profile.Preferences == nil {
		return neutralPreferencesScore
	}

	score := causeMissScore
	for _, cause := range profile.Preferences.Causes {
		if strings.EqualFold(cause, event.Category) {
			score = causeMatchScore
			break
		}
	}

	score += urgencyBonus(event.UrgencyLevel)

	return clampScore(score)
}

// urgencyBonus rewards matches against pressing events and discounts
// low-priority ones.
func urgencyBonus(level models.UrgencyLevel) float64 {
	switch level {
	case models.UrgencyUrgent:
		return 20
	case models.UrgencyHigh:
		return 10
	case models.UrgencyLow:
		return -10
	default:
		return 0
	}
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
