// Package database provides database operations for the volunteer matching engine.
package database

import (
	"context"
	"fmt"
	"time"

	"volunteer-matching-engine/internal/models"
)

// VolunteerRepository handles volunteer database operations.
type VolunteerRepository struct {
	db *DB
}

// NewVolunteerRepository creates a new volunteer repository.
func NewVolunteerRepository(db *DB) *VolunteerRepository {
	return &VolunteerRepository{db: db}
}

// GetByID retrieves a volunteer with their full profile by database ID.
// Returns nil when the volunteer does not exist.
func (r *VolunteerRepository) GetByID(ctx context.Context, id int64) (*models.Volunteer, error) {
	volunteers, err := r.queryVolunteers(ctx, "v.id = $1", id)
	if err != nil {
		return nil, err
	}
	if len(volunteers) == 0 {
		return nil, nil
	}
	return volunteers[0], nil
}

// GetAllActive retrieves all active volunteers with their full profiles.
func (r *VolunteerRepository) GetAllActive(ctx context.Context) ([]*models.Volunteer, error) {
	return r.queryVolunteers(ctx, "v.is_active = true")
}

// queryVolunteers loads volunteers matching the given condition, then
// batch-loads skills, availability slots, and preferences for those that
// have a profile.
func (r *VolunteerRepository) queryVolunteers(ctx context.Context, condition string, args ...interface{}) ([]*models.Volunteer, error) {
	query := fmt.Sprintf(`
		SELECT v.id, v.volunteer_id, v.email, v.is_active, v.created_at, v.updated_at,
		       p.volunteer_id IS NOT NULL AS has_profile,
		       p.first_name, p.last_name, p.phone, p.address,
		       p.latitude, p.longitude
		FROM volunteers v
		LEFT JOIN volunteer_profiles p ON p.volunteer_id = v.id
		WHERE %s
		ORDER BY v.id`, condition)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query volunteers: %w", err)
	}
	defer rows.Close()

	var volunteers []*models.Volunteer
	var profileIDs []int64
	for rows.Next() {
		var v models.Volunteer
		var hasProfile bool
		var firstName, lastName, phone, address *string
		var latitude, longitude *float64

		err := rows.Scan(
			&v.ID,
			&v.VolunteerID,
			&v.Email,
			&v.IsActive,
			&v.CreatedAt,
			&v.UpdatedAt,
			&hasProfile,
			&firstName,
			&lastName,
			&phone,
			&address,
			&latitude,
			&longitude,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan volunteer: %w", err)
		}

		if hasProfile {
			profile := &models.VolunteerProfile{
				FirstName: stringValue(firstName),
				LastName:  stringValue(lastName),
				Phone:     stringValue(phone),
				Address:   stringValue(address),
			}
			if latitude != nil && longitude != nil {
				profile.Location = &models.Coordinates{Latitude: *latitude, Longitude: *longitude}
			}
			v.Profile = profile
			profileIDs = append(profileIDs, v.ID)
		}

		volunteers = append(volunteers, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read volunteers: %w", err)
	}

	if len(profileIDs) == 0 {
		return volunteers, nil
	}

	byID := make(map[int64]*models.Volunteer, len(volunteers))
	for _, v := range volunteers {
		byID[v.ID] = v
	}

	if err := r.attachSkills(ctx, byID, profileIDs); err != nil {
		return nil, err
	}
	if err := r.attachAvailability(ctx, byID, profileIDs); err != nil {
		return nil, err
	}
	if err := r.attachPreferences(ctx, byID, profileIDs); err != nil {
		return nil, err
	}

	return volunteers, nil
}

// attachSkills loads volunteer skills for the given ids. Rows with unknown
// proficiency levels are normalized; still-invalid ones are kept as-is and
// treated as unmet by the scorer.
func (r *VolunteerRepository) attachSkills(ctx context.Context, byID map[int64]*models.Volunteer, ids []int64) error {
	query := `
		SELECT volunteer_id, skill_id, proficiency
		FROM volunteer_skills
		WHERE volunteer_id = ANY($1)
		ORDER BY volunteer_id, skill_id`

	rows, err := r.db.QueryContext(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to query volunteer skills: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var volunteerID int64
		var skillID, proficiency string
		if err := rows.Scan(&volunteerID, &skillID, &proficiency); err != nil {
			return fmt.Errorf("failed to scan volunteer skill: %w", err)
		}

		v := byID[volunteerID]
		if v == nil || v.Profile == nil {
			continue
		}
		v.Profile.Skills = append(v.Profile.Skills, models.VolunteerSkill{
			SkillID:     skillID,
			Proficiency: models.NormalizeProficiency(proficiency),
		})
	}
	return rows.Err()
}

// attachAvailability loads availability slots for the given ids.
func (r *VolunteerRepository) attachAvailability(ctx context.Context, byID map[int64]*models.Volunteer, ids []int64) error {
	query := `
		SELECT volunteer_id, day_of_week, specific_date, start_time, end_time, is_recurring
		FROM availability_slots
		WHERE volunteer_id = ANY($1)
		ORDER BY volunteer_id, id`

	rows, err := r.db.QueryContext(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to query availability slots: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var volunteerID int64
		var slot models.AvailabilitySlot
		var dayOfWeek int
		if err := rows.Scan(&volunteerID, &dayOfWeek, &slot.SpecificDate, &slot.StartTime, &slot.EndTime, &slot.IsRecurring); err != nil {
			return fmt.Errorf("failed to scan availability slot: %w", err)
		}
		slot.DayOfWeek = weekdayFromInt(dayOfWeek)

		v := byID[volunteerID]
		if v == nil || v.Profile == nil {
			continue
		}
		v.Profile.Availability = append(v.Profile.Availability, slot)
	}
	return rows.Err()
}

// attachPreferences loads stated preferences for the given ids. Travel
// radii authored in miles are converted here; the engine is kilometers-only.
func (r *VolunteerRepository) attachPreferences(ctx context.Context, byID map[int64]*models.Volunteer, ids []int64) error {
	query := `
		SELECT volunteer_id, causes, max_distance, distance_unit, weekdays_only, preferred_time_slots
		FROM volunteer_preferences
		WHERE volunteer_id = ANY($1)`

	rows, err := r.db.QueryContext(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to query volunteer preferences: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var volunteerID int64
		var causes, timeSlots []string
		var maxDistance *float64
		var distanceUnit *string
		var weekdaysOnly bool
		if err := rows.Scan(&volunteerID, &causes, &maxDistance, &distanceUnit, &weekdaysOnly, &timeSlots); err != nil {
			return fmt.Errorf("failed to scan volunteer preferences: %w", err)
		}

		v := byID[volunteerID]
		if v == nil || v.Profile == nil {
			continue
		}

		prefs := &models.Preferences{
			Causes:       causes,
			WeekdaysOnly: weekdaysOnly,
		}
		if maxDistance != nil {
			prefs.MaxDistanceKm = *maxDistance
			if distanceUnit != nil && *distanceUnit == "mi" {
				prefs.MaxDistanceKm = models.MilesToKilometers(*maxDistance)
			}
		}
		for _, slot := range timeSlots {
			bucket := models.TimeOfDay(slot)
			if bucket.IsValid() {
				prefs.PreferredTimeSlots = append(prefs.PreferredTimeSlots, bucket)
			}
		}
		v.Profile.Preferences = prefs
	}
	return rows.Err()
}

// CountActive returns the number of active volunteers.
func (r *VolunteerRepository) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM volunteers WHERE is_active = true").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count volunteers: %w", err)
	}
	return count, nil
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// weekdayFromInt maps the stored 0=Sunday..6=Saturday convention onto
// time.Weekday, which uses the same numbering.
func weekdayFromInt(day int) time.Weekday {
	if day < 0 || day > 6 {
		return time.Sunday
	}
	return time.Weekday(day)
}
