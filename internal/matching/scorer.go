package matching

import (
	"math"

	"volunteer-matching-engine/internal/models"
)

// Dimension weights for the total score. Skills and location dominate
// because operational fit matters most; reliability is weighted lowest
// because it is only a completeness proxy. The weights sum to 1.0.
const (
	WeightLocation     = 0.25
	WeightSkills       = 0.30
	WeightAvailability = 0.20
	WeightPreferences  = 0.15
	WeightReliability  = 0.10
)

// Weights returns a copy of the dimension weight table, keyed by breakdown
// field name.
func Weights() map[string]float64 {
	return map[string]float64{
		"location":     WeightLocation,
		"skills":       WeightSkills,
		"availability": WeightAvailability,
		"preferences":  WeightPreferences,
		"reliability":  WeightReliability,
	}
}

// qualityBands maps minimum total scores to quality labels, ordered by
// descending MinScore. Every integer in [0,100] falls into exactly one band.
var qualityBands = []models.QualityBand{
	{MinScore: 90, Label: models.MatchQualityExcellent},
	{MinScore: 80, Label: models.MatchQualityVeryGood},
	{MinScore: 70, Label: models.MatchQualityGood},
	{MinScore: 60, Label: models.MatchQualityFair},
	{MinScore: 50, Label: models.MatchQualityModerate},
	{MinScore: 30, Label: models.MatchQualityPoor},
	{MinScore: 0, Label: models.MatchQualityVeryPoor},
}

// QualityBands returns a copy of the quality band table.
func QualityBands() []models.QualityBand {
	bands := make([]models.QualityBand, len(qualityBands))
	copy(bands, qualityBands)
	return bands
}

// GetMatchQuality buckets a total score into its human-readable label.
func GetMatchQuality(score int) models.MatchQuality {
	for _, band := range qualityBands {
		if score >= band.MinScore {
			return band.Label
		}
	}
	return models.MatchQualityVeryPoor
}

// AlgorithmInfo returns the weight table and quality bands for transparency
// endpoints.
func AlgorithmInfo() models.AlgorithmInfo {
	return models.AlgorithmInfo{
		Weights:      Weights(),
		QualityBands: QualityBands(),
	}
}

// CalculateMatchScore scores one volunteer against one event. Volunteers
// without a profile are not scored: the result carries a zero total and an
// error instead of a breakdown.
func CalculateMatchScore(volunteer *models.Volunteer, event *models.Event) models.MatchResult {
	result := models.MatchResult{VolunteerID: volunteer.ID}

	profile := volunteer.Profile
	if profile == nil {
		result.Error = models.ErrMissingProfile.Error()
		return result
	}

	breakdown := models.ScoreBreakdown{
		Location:     CalculateLocationScore(profile, event),
		Skills:       CalculateSkillsScore(profile.Skills, event.RequiredSkills),
		Availability: CalculateAvailabilityScore(profile, event),
		Preferences:  CalculatePreferencesScore(profile, event),
		Reliability:  CalculateReliabilityScore(profile),
	}

	total := WeightLocation*breakdown.Location +
		WeightSkills*breakdown.Skills +
		WeightAvailability*breakdown.Availability +
		WeightPreferences*breakdown.Preferences +
		WeightReliability*breakdown.Reliability

	result.TotalScore = int(math.Round(total))
	result.ScoreBreakdown = &breakdown
	result.MatchQuality = GetMatchQuality(result.TotalScore)

	return result
}
