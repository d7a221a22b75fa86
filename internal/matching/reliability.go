package matching

import (
	"strings"

	"volunteer-matching-engine/internal/models"
)

const (
	reliabilityBaseline = 75.0
	contactFieldCredit  = 5.0
)

// CalculateReliabilityScore approximates trustworthiness from profile
// completeness: a baseline for having a profile at all, plus credit for each
// populated contact field. This is a completeness proxy, not a historical
// performance metric.
func CalculateReliabilityScore(profile *models.VolunteerProfile) float64 {
	if profile == nil {
		return 0
	}

	score := reliabilityBaseline
	for _, field := range []string{profile.FirstName, profile.LastName, profile.Phone, profile.Address} {
		if strings.TrimSpace(field) != "" {
			score += contactFieldCredit
		}
	}

	return clampScore(score)
}
