// Package models defines the data structures for the volunteer matching engine.
package models

// MatchQuality is the human-readable bucket derived from a total score.
type MatchQuality string

const (
	MatchQualityExcellent MatchQuality = "Excellent"
	MatchQualityVeryGood  MatchQuality = "Very Good"
	MatchQualityGood      MatchQuality = "Good"
	MatchQualityFair      MatchQuality = "Fair"
	MatchQualityModerate  MatchQuality = "Moderate"
	MatchQualityPoor      MatchQuality = "Poor"
	MatchQualityVeryPoor  MatchQuality = "Very Poor"
)

// ScoreBreakdown holds the per-dimension scores of a match, each in [0,100].
type ScoreBreakdown struct {
	Location     float64 `json:"location"`
	Skills       float64 `json:"skills"`
	Availability float64 `json:"availability"`
	Preferences  float64 `json:"preferences"`
	Reliability  float64 `json:"reliability"`
}

// MatchResult is the outcome of scoring one volunteer against one event.
// When Error is set the volunteer could not be scored and no breakdown is
// computed.
type MatchResult struct {
	VolunteerID    int64           `json:"volunteer_id"`
	TotalScore     int             `json:"total_score"`
	ScoreBreakdown *ScoreBreakdown `json:"score_breakdown,omitempty"`
	MatchQuality   MatchQuality    `json:"match_quality,omitempty"`
	Error          string          `json:"error,omitempty"`
}

// RankedVolunteer is a match result paired with the volunteer it refers to,
// as returned by the ranking endpoint.
type RankedVolunteer struct {
	MatchResult
	Volunteer VolunteerSummary `json:"volunteer"`
}

// QualityBand maps a minimum total score to its quality label. Bands are
// ordered by descending MinScore and together cover all of [0,100].
type QualityBand struct {
	MinScore int          `json:"min_score"`
	Label    MatchQuality `json:"label"`
}

// AlgorithmInfo describes how matching works, for transparency endpoints.
type AlgorithmInfo struct {
	Weights      map[string]float64 `json:"weights"`
	QualityBands []QualityBand      `json:"quality_bands"`
}
