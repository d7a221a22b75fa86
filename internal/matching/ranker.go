package matching

import (
	"sort"
	"sync"

	"volunteer-matching-engine/internal/models"
)

const (
	// DefaultResultLimit caps the ranked shortlist when the caller does not
	// ask for a specific size.
	DefaultResultLimit = 20

	// rankWorkers bounds the fan-out when scoring a pool. Pairings are
	// independent, so only the final sort needs all scores in hand.
	rankWorkers = 8
)

// RankOptions controls filtering and truncation of a ranked shortlist.
type RankOptions struct {
	Limit           int  `json:"limit,omitempty"`
	MinScore        int  `json:"min_score,omitempty"`
	IncludeAssigned bool `json:"include_assigned,omitempty"`
}

// RankVolunteers scores every volunteer in the pool against the event and
// returns a ranked shortlist. Volunteers already assigned to the event are
// excluded unless IncludeAssigned is set, results below MinScore are
// filtered, and unscorable volunteers (no profile) are dropped. The result
// is sorted by descending total score with the volunteer id as a stable
// tiebreak, then truncated to Limit.
func RankVolunteers(event *models.Event, pool []*models.Volunteer, assigned map[int64]bool, opts RankOptions) []models.RankedVolunteer {
	results := scorePool(event, pool)

	ranked := make([]models.RankedVolunteer, 0, len(pool))
	for i, volunteer := range pool {
		if !opts.IncludeAssigned && assigned[volunteer.ID] {
			continue
		}
		result := results[i]
		if result.Error != "" {
			continue
		}
		if result.TotalScore < opts.MinScore {
			continue
		}
		ranked = append(ranked, models.RankedVolunteer{
			MatchResult: result,
			Volunteer:   volunteer.ToSummary(),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TotalScore != ranked[j].TotalScore {
			return ranked[i].TotalScore > ranked[j].TotalScore
		}
		return ranked[i].Volunteer.VolunteerID < ranked[j].Volunteer.VolunteerID
	})

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultResultLimit
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}

// scorePool evaluates every pairing in parallel, collecting results by index.
func scorePool(event *models.Event, pool []*models.Volunteer) []models.MatchResult {
	results := make([]models.MatchResult, len(pool))

	workers := rankWorkers
	if len(pool) < workers {
		workers = len(pool)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = CalculateMatchScore(pool[i], event)
			}
		}()
	}

	for i := range pool {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
