// Package models defines the data structures for the volunteer matching engine.
package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Common errors
var (
	ErrMissingProfile     = errors.New("volunteer has no profile")
	ErrVolunteerNotFound  = errors.New("volunteer not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrInvalidProficiency = errors.New("invalid proficiency level")
	ErrInvalidUrgency     = errors.New("invalid urgency level")
	ErrInvalidClockTime   = errors.New("time must be in HH:MM format")
)

// NormalizeProficiency converts various proficiency formats to standard values.
func NormalizeProficiency(level string) Proficiency {
	normalized := strings.ToLower(strings.TrimSpace(level))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")

	proficiencyMap := map[string]Proficiency{
		"beginner":     ProficiencyBeginner,
		"basic":        ProficiencyBeginner,
		"novice":       ProficiencyBeginner,
		"intermediate": ProficiencyIntermediate,
		"medium":       ProficiencyIntermediate,
		"advanced":     ProficiencyAdvanced,
		"proficient":   ProficiencyAdvanced,
		"expert":       ProficiencyExpert,
		"master":       ProficiencyExpert,
	}

	if mapped, ok := proficiencyMap[normalized]; ok {
		return mapped
	}

	// Return as-is if no mapping found (will rank 0 and never satisfy a minimum)
	return Proficiency(normalized)
}

// NormalizeUrgency converts various urgency formats to standard values.
// Seed data uses "medium" and "critical" interchangeably with "normal" and
// "urgent".
func NormalizeUrgency(level string) UrgencyLevel {
	normalized := strings.ToLower(strings.TrimSpace(level))

	urgencyMap := map[string]UrgencyLevel{
		"low":      UrgencyLow,
		"normal":   UrgencyNormal,
		"medium":   UrgencyNormal,
		"moderate": UrgencyNormal,
		"high":     UrgencyHigh,
		"urgent":   UrgencyUrgent,
		"critical": UrgencyUrgent,
	}

	if mapped, ok := urgencyMap[normalized]; ok {
		return mapped
	}

	return UrgencyLevel(normalized)
}

// ParseClock parses a local wall-clock time in HH:MM format into minutes
// since midnight. "24:00" is accepted as end-of-day (1440) so slots can run
// to midnight.
func ParseClock(value string) (int, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, value)
	}

	hours, err := parseClockPart(parts[0], 24)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, value)
	}
	minutes, err := parseClockPart(parts[1], 59)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, value)
	}
	if hours == 24 && minutes != 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, value)
	}

	return hours*60 + minutes, nil
}

// parseClockPart parses a two-digit clock component within [0, max].
func parseClockPart(part string, max int) (int, error) {
	if len(part) == 0 || len(part) > 2 {
		return 0, ErrInvalidClockTime
	}
	value, err := strconv.Atoi(part)
	if err != nil || value < 0 || value > max {
		return 0, ErrInvalidClockTime
	}
	return value, nil
}

// ValidateAvailabilitySlot checks that a slot's time window is well-formed.
func ValidateAvailabilitySlot(slot *AvailabilitySlot) error {
	start, err := ParseClock(slot.StartTime)
	if err != nil {
		return err
	}
	end, err := ParseClock(slot.EndTime)
	if err != nil {
		return err
	}
	if end <= start {
		return fmt.Errorf("slot end %q must be after start %q", slot.EndTime, slot.StartTime)
	}
	if !slot.IsRecurring && slot.SpecificDate == nil {
		return errors.New("one-off slot requires a specific date")
	}
	return nil
}
