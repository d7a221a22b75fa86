// Package database provides database operations for the volunteer matching engine.
package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"volunteer-matching-engine/internal/models"
)

// EventRepository handles event database operations.
type EventRepository struct {
	db *DB
}

// NewEventRepository creates a new event repository.
func NewEventRepository(db *DB) *EventRepository {
	return &EventRepository{db: db}
}

// GetByID retrieves an event with its skill requirements by database ID.
// Returns nil when the event does not exist.
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query := `
		SELECT id, name, category, latitude, longitude, start_date, end_date, urgency_level, is_active, created_at, updated_at
		FROM events
		WHERE id = $1`

	var event models.Event
	var latitude, longitude *float64
	var urgency string

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&event.ID,
		&event.Name,
		&event.Category,
		&latitude,
		&longitude,
		&event.StartDate,
		&event.EndDate,
		&urgency,
		&event.IsActive,
		&event.CreatedAt,
		&event.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	if latitude != nil && longitude != nil {
		event.Location = &models.Coordinates{Latitude: *latitude, Longitude: *longitude}
	}
	event.UrgencyLevel = models.NormalizeUrgency(urgency)

	requiredSkills, err := r.getRequiredSkills(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	event.RequiredSkills = requiredSkills

	return &event, nil
}

// getRequiredSkills loads the skill requirements of an event.
func (r *EventRepository) getRequiredSkills(ctx context.Context, eventID int64) ([]models.RequiredSkill, error) {
	query := `
		SELECT skill_id, min_level, required
		FROM event_required_skills
		WHERE event_id = $1
		ORDER BY skill_id`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query required skills: %w", err)
	}
	defer rows.Close()

	var skills []models.RequiredSkill
	for rows.Next() {
		var skill models.RequiredSkill
		var minLevel string
		if err := rows.Scan(&skill.SkillID, &minLevel, &skill.Required); err != nil {
			return nil, fmt.Errorf("failed to scan required skill: %w", err)
		}
		skill.MinLevel = models.NormalizeProficiency(minLevel)
		skills = append(skills, skill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read required skills: %w", err)
	}

	return skills, nil
}

// ListUpcoming retrieves active events that have not yet ended, soonest first.
func (r *EventRepository) ListUpcoming(ctx context.Context, limit int) ([]models.EventSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, name, category, start_date, end_date, urgency_level
		FROM events
		WHERE is_active = true AND end_date >= NOW()
		ORDER BY start_date
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []models.EventSummary
	for rows.Next() {
		var event models.EventSummary
		var urgency string
		if err := rows.Scan(&event.ID, &event.Name, &event.Category, &event.StartDate, &event.EndDate, &urgency); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		event.UrgencyLevel = models.NormalizeUrgency(urgency)
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}

	return events, nil
}
