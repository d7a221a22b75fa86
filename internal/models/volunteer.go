// Package models defines the data structures for the volunteer matching engine.
package models

import (
	"strings"
	"time"
)

// Proficiency represents a volunteer's mastery level for a skill.
type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyExpert       Proficiency = "expert"
)

// ValidProficiencies returns all valid proficiency values in ascending order.
func ValidProficiencies() []Proficiency {
	return []Proficiency{
		ProficiencyBeginner,
		ProficiencyIntermediate,
		ProficiencyAdvanced,
		ProficiencyExpert,
	}
}

// Rank returns the ordinal position of the proficiency, 1 (beginner) through
// 4 (expert). Unknown values rank 0 and never satisfy a minimum level.
func (p Proficiency) Rank() int {
	switch p {
	case ProficiencyBeginner:
		return 1
	case ProficiencyIntermediate:
		return 2
	case ProficiencyAdvanced:
		return 3
	case ProficiencyExpert:
		return 4
	default:
		return 0
	}
}

// IsValid checks if the proficiency is a known level.
func (p Proficiency) IsValid() bool {
	return p.Rank() > 0
}

// TimeOfDay represents a coarse time-of-day bucket used in volunteer preferences.
type TimeOfDay string

const (
	TimeOfDayMorning   TimeOfDay = "morning"
	TimeOfDayAfternoon TimeOfDay = "afternoon"
	TimeOfDayEvening   TimeOfDay = "evening"
)

// IsValid checks if the time-of-day bucket is known.
func (t TimeOfDay) IsValid() bool {
	return t == TimeOfDayMorning || t == TimeOfDayAfternoon || t == TimeOfDayEvening
}

// Coordinates is a resolved geographic position.
type Coordinates struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// VolunteerSkill is a skill held by a volunteer at a given proficiency.
type VolunteerSkill struct {
	SkillID     string      `json:"skill_id" db:"skill_id"`
	Proficiency Proficiency `json:"proficiency" db:"proficiency"`
}

// AvailabilitySlot is a window of time a volunteer can work. A slot is either
// recurring (keyed by weekday) or one-off (keyed by a specific date). Times
// are local wall-clock in HH:MM format.
type AvailabilitySlot struct {
	DayOfWeek    time.Weekday `json:"day_of_week" db:"day_of_week"`
	SpecificDate *time.Time   `json:"specific_date,omitempty" db:"specific_date"`
	StartTime    string       `json:"start_time" db:"start_time"`
	EndTime      string       `json:"end_time" db:"end_time"`
	IsRecurring  bool         `json:"is_recurring" db:"is_recurring"`
}

// Preferences holds a volunteer's stated matching preferences.
type Preferences struct {
	Causes             []string    `json:"causes,omitempty"`
	MaxDistanceKm      float64     `json:"max_distance_km,omitempty"`
	WeekdaysOnly       bool        `json:"weekdays_only"`
	PreferredTimeSlots []TimeOfDay `json:"preferred_time_slots,omitempty"`
}

// VolunteerProfile is the matching-relevant snapshot of a volunteer. Every
// field may be absent; the scorers degrade gracefully on missing data.
type VolunteerProfile struct {
	Location     *Coordinates       `json:"location,omitempty"`
	FirstName    string             `json:"first_name,omitempty"`
	LastName     string             `json:"last_name,omitempty"`
	Phone        string             `json:"phone,omitempty"`
	Address      string             `json:"address,omitempty"`
	Skills       []VolunteerSkill   `json:"skills,omitempty"`
	Availability []AvailabilitySlot `json:"availability,omitempty"`
	Preferences  *Preferences       `json:"preferences,omitempty"`
}

// Volunteer represents a volunteer in the system.
type Volunteer struct {
	ID          int64             `json:"id" db:"id"`
	VolunteerID string            `json:"volunteer_id" db:"volunteer_id"`
	Email       string            `json:"email" db:"email"`
	Profile     *VolunteerProfile `json:"profile,omitempty"`
	IsActive    bool              `json:"is_active" db:"is_active"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" db:"updated_at"`
}

// VolunteerSummary is a lightweight view of a volunteer for match responses.
type VolunteerSummary struct {
	ID          int64  `json:"id"`
	VolunteerID string `json:"volunteer_id"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email"`
}

// ToSummary converts a Volunteer to VolunteerSummary.
func (v *Volunteer) ToSummary() VolunteerSummary {
	summary := VolunteerSummary{
		ID:          v.ID,
		VolunteerID: v.VolunteerID,
		Email:       v.Email,
	}
	if v.Profile != nil {
		summary.Name = strings.TrimSpace(v.Profile.FirstName + " " + v.Profile.LastName)
	}
	return summary
}

const kilometersPerMile = 1.609344

// MilesToKilometers converts a distance authored in miles to kilometers.
// The engine is kilometers-only; rows stored in miles are converted at the
// ingestion boundary.
func MilesToKilometers(miles float64) float64 {
	return miles * kilometersPerMile
}
