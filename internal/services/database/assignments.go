// Package database provides database operations for the volunteer matching engine.
package database

import (
	"context"
	"fmt"
)

// AssignmentRepository handles event assignment database operations. The
// matching engine only needs to know who is already committed to an event;
// assignment lifecycle (signup, attendance) is owned elsewhere.
type AssignmentRepository struct {
	db *DB
}

// NewAssignmentRepository creates a new assignment repository.
func NewAssignmentRepository(db *DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// GetAssignedVolunteerIDs returns the ids of volunteers currently assigned
// to an event, as a membership set.
func (r *AssignmentRepository) GetAssignedVolunteerIDs(ctx context.Context, eventID int64) (map[int64]bool, error) {
	query := `
		SELECT volunteer_id
		FROM event_assignments
		WHERE event_id = $1 AND status != 'withdrawn'`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	assigned := make(map[int64]bool)
	for rows.Next() {
		var volunteerID int64
		if err := rows.Scan(&volunteerID); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assigned[volunteerID] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read assignments: %w", err)
	}

	return assigned, nil
}

// CountForEvent returns the number of active assignments for an event.
func (r *AssignmentRepository) CountForEvent(ctx context.Context, eventID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM event_assignments WHERE event_id = $1 AND status != 'withdrawn'",
		eventID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count assignments: %w", err)
	}
	return count, nil
}
