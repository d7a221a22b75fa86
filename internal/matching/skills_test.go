// Package matching_test contains tests for the compatibility scoring engine
package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"volunteer-matching-engine/internal/matching"
	"volunteer-matching-engine/internal/models"
)

func TestCalculateSkillsScore_NoRequirements(t *testing.T) {
	skills := []models.VolunteerSkill{
		{SkillID: "skill_first_aid", Proficiency: models.ProficiencyExpert},
	}

	assert.Equal(t, 100.0, matching.CalculateSkillsScore(skills, nil))
	assert.Equal(t, 100.0, matching.CalculateSkillsScore(nil, []models.RequiredSkill{}))
}

func TestCalculateSkillsScore_NoSkillsWithRequirement(t *testing.T) {
	required := []models.RequiredSkill{
		{SkillID: "skill_001", MinLevel: models.ProficiencyBeginner, Required: true},
	}

	assert.Equal(t, 0.0, matching.CalculateSkillsScore(nil, required))
	assert.Equal(t, 0.0, matching.CalculateSkillsScore([]models.VolunteerSkill{}, required))
}

func TestCalculateSkillsScore_PartialRequiredCoverage(t *testing.T) {
	skills := []models.VolunteerSkill{
		{SkillID: "skill_first_aid", Proficiency: models.ProficiencyAdvanced},
	}
	required := []models.RequiredSkill{
		{SkillID: "skill_first_aid", MinLevel: models.ProficiencyIntermediate, Required: true},
		{SkillID: "skill_cooking", MinLevel: models.ProficiencyBeginner, Required: true},
	}

	// One of two required skills met: half of the 70-point cap.
	assert.InDelta(t, 35.0, matching.CalculateSkillsScore(skills, required), 1e-9)
}

func TestCalculateSkillsScore_ProficiencyBelowMinimum(t *testing.T) {
	skills := []models.VolunteerSkill{
		{SkillID: "skill_first_aid", Proficiency: models.ProficiencyBeginner},
	}
	required := []models.RequiredSkill{
		{SkillID: "skill_first_aid", MinLevel: models.ProficiencyAdvanced, Required: true},
	}

	assert.Equal(t, 0.0, matching.CalculateSkillsScore(skills, required))
}

func TestCalculateSkillsScore_FullRequiredNoOptional(t *testing.T) {
	skills := []models.VolunteerSkill{
		{SkillID: "skill_first_aid", Proficiency: models.ProficiencyExpert},
	}
	required := []models.RequiredSkill{
		{SkillID: "skill_first_aid", MinLevel: models.ProficiencyIntermediate, Required: true},
	}

	assert.Equal(t, 100.0, matching.CalculateSkillsScore(skills, required))
}

func TestCalculateSkillsScore_OptionalBonus(t *testing.T) {
	skills := []models.VolunteerSkill{
		{SkillID: "skill_first_aid", Proficiency: models.ProficiencyAdvanced},
		{SkillID: "skill_logistics", Proficiency: models.ProficiencyIntermediate},
	}
	requirements := []models.RequiredSkill{
		{SkillID: "skill_first_aid", MinLevel: models.ProficiencyIntermediate, Required: true},
		{SkillID: "skill_logistics", MinLevel: models.ProficiencyBeginner, Required: false},
		{SkillID: "skill_driving", MinLevel: models.ProficiencyBeginner, Required: false},
	}

	// Full required coverage plus one of two optional skills.
	assert.InDelta(t, 85.0, matching.CalculateSkillsScore(skills, requirements), 1e-9)
}

func TestCalculateSkillsScore_OptionalOnlyUnmet(t *testing.T) {
	requirements := []models.RequiredSkill{
		{SkillID: "skill_driving", MinLevel: models.ProficiencyBeginner, Required: false},
	}

	// No required skills at all: the 70-point base is granted, optional
	// coverage alone decides the bonus.
	assert.Equal(t, 70.0, matching.CalculateSkillsScore(nil, requirements))
}

func TestCalculateSkillsScore_MalformedProficiencySkipped(t *testing.T) {
	skills := []models.VolunteerSkill{
		{SkillID: "skill_first_aid", Proficiency: "ninja"},
	}
	required := []models.RequiredSkill{
		{SkillID: "skill_first_aid", MinLevel: models.ProficiencyBeginner, Required: true},
	}

	assert.Equal(t, 0.0, matching.CalculateSkillsScore(skills, required))
}

func TestCalculateSkillsScore_UnspecifiedMinLevelAcceptsAny(t *testing.T) {
	skills := []models.VolunteerSkill{
		{SkillID: "skill_first_aid", Proficiency: models.ProficiencyBeginner},
	}
	required := []models.RequiredSkill{
		{SkillID: "skill_first_aid", Required: true},
	}

	assert.Equal(t, 100.0, matching.CalculateSkillsScore(skills, required))
}

func TestCalculateSkillsScore_HighestProficiencyWins(t *testing.T) {
	// Duplicate rows for the same skill keep the strongest level.
	skills := []models.VolunteerSkill{
		{SkillID: "skill_first_aid", Proficiency: models.ProficiencyBeginner},
		{SkillID: "skill_first_aid", Proficiency: models.ProficiencyExpert},
	}
	required := []models.RequiredSkill{
		{SkillID: "skill_first_aid", MinLevel: models.ProficiencyAdvanced, Required: true},
	}

	assert.Equal(t, 100.0, matching.CalculateSkillsScore(skills, required))
}
