package matching

import (
	"volunteer-matching-engine/internal/models"
)

const (
	requiredSkillsCap   = 70.0
	optionalSkillsBonus = 30.0
)

// CalculateSkillsScore compares a volunteer's skills against an event's
// skill requirements. Full required coverage earns 70 points plus a bonus
// scaled by optional coverage; any required shortfall caps the score at the
// met fraction of 70.
func CalculateSkillsScore(skills []models.VolunteerSkill, requiredSkills []models.RequiredSkill) float64 {
	var required, optional []models.RequiredSkill
	for _, rs := range requiredSkills {
		if rs.Required {
			required = append(required, rs)
		} else {
			optional = append(optional, rs)
		}
	}

	if len(required) == 0 && len(optional) == 0 {
		return 100
	}

	// Highest valid proficiency per skill; malformed entries are skipped and
	// treated as unmet.
	held := make(map[string]int, len(skills))
	for _, s := range skills {
		rank := s.Proficiency.Rank()
		if rank == 0 {
			continue
		}
		if rank > held[s.SkillID] {
			held[s.SkillID] = rank
		}
	}

	requiredRatio := coverageRatio(held, required)
	optionalRatio := coverageRatio(held, optional)

	if requiredRatio < 1 {
		return requiredRatio * requiredSkillsCap
	}
	return requiredSkillsCap + optionalSkillsBonus*optionalRatio
}

// coverageRatio returns the fraction of entries met by the held skills, or 1
// when there are no entries.
func coverageRatio(held map[string]int, entries []models.RequiredSkill) float64 {
	if len(entries) == 0 {
		return 1
	}

	met := 0
	for _, entry := range entries {
		rank, ok := held[entry.SkillID]
		if !ok {
			continue
		}
		minRank := entry.MinLevel.Rank()
		if minRank == 0 {
			// An unspecified minimum accepts any valid proficiency.
			minRank = models.ProficiencyBeginner.Rank()
		}
		if rank >= minRank {
			met++
		}
	}

	return float64(met) / float64(len(entries))
}
