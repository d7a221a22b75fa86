// Package models defines the data structures for the volunteer matching engine.
package models

import (
	"time"
)

// UrgencyLevel represents how urgently an event needs volunteers.
type UrgencyLevel string

const (
	UrgencyLow    UrgencyLevel = "low"
	UrgencyNormal UrgencyLevel = "normal"
	UrgencyHigh   UrgencyLevel = "high"
	UrgencyUrgent UrgencyLevel = "urgent"
)

// ValidUrgencyLevels returns all valid urgency values in ascending order.
func ValidUrgencyLevels() []UrgencyLevel {
	return []UrgencyLevel{
		UrgencyLow,
		UrgencyNormal,
		UrgencyHigh,
		UrgencyUrgent,
	}
}

// Rank returns the ordinal position of the urgency level, 1 (low) through
// 4 (urgent). Unknown values rank 0.
func (u UrgencyLevel) Rank() int {
	switch u {
	case UrgencyLow:
		return 1
	case UrgencyNormal:
		return 2
	case UrgencyHigh:
		return 3
	case UrgencyUrgent:
		return 4
	default:
		return 0
	}
}

// IsValid checks if the urgency level is known.
func (u UrgencyLevel) IsValid() bool {
	return u.Rank() > 0
}

// RequiredSkill is a skill an event asks for, with the minimum proficiency
// and whether the skill is mandatory or nice-to-have.
type RequiredSkill struct {
	SkillID  string      `json:"skill_id" db:"skill_id"`
	MinLevel Proficiency `json:"min_level" db:"min_level"`
	Required bool        `json:"required" db:"required"`
}

// Event represents a volunteer event in the system.
type Event struct {
	ID             int64           `json:"id" db:"id"`
	Name           string          `json:"name" db:"name"`
	Category       string          `json:"category" db:"category"`
	Location       *Coordinates    `json:"location,omitempty"`
	StartDate      time.Time       `json:"start_date" db:"start_date"`
	EndDate        time.Time       `json:"end_date" db:"end_date"`
	UrgencyLevel   UrgencyLevel    `json:"urgency_level" db:"urgency_level"`
	RequiredSkills []RequiredSkill `json:"required_skills,omitempty"`
	IsActive       bool            `json:"is_active" db:"is_active"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
}

// EventSummary is a lightweight view of an event for list responses.
type EventSummary struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Category     string       `json:"category"`
	StartDate    time.Time    `json:"start_date"`
	EndDate      time.Time    `json:"end_date"`
	UrgencyLevel UrgencyLevel `json:"urgency_level"`
}

// ToSummary converts an Event to EventSummary.
func (e *Event) ToSummary() EventSummary {
	return EventSummary{
		ID:           e.ID,
		Name:         e.Name,
		Category:     e.Category,
		StartDate:    e.StartDate,
		EndDate:      e.EndDate,
		UrgencyLevel: e.UrgencyLevel,
	}
}
