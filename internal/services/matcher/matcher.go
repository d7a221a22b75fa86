// Package matcher wires the scoring engine to the volunteer and event stores.
package matcher

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"volunteer-matching-engine/internal/config"
	"volunteer-matching-engine/internal/matching"
	"volunteer-matching-engine/internal/models"
	"volunteer-matching-engine/internal/services/database"
	"volunteer-matching-engine/internal/utils"
)

// Service runs matching requests against the stored volunteer pool.
type Service struct {
	volunteerRepo  *database.VolunteerRepository
	eventRepo      *database.EventRepository
	assignmentRepo *database.AssignmentRepository
	config         *config.Config
}

// NewService creates a new matcher service.
func NewService(db *database.DB, cfg *config.Config) *Service {
	return &Service{
		volunteerRepo:  database.NewVolunteerRepository(db),
		eventRepo:      database.NewEventRepository(db),
		assignmentRepo: database.NewAssignmentRepository(db),
		config:         cfg,
	}
}

// FindResult is the outcome of ranking the volunteer pool for one event.
type FindResult struct {
	RequestID      string                   `json:"request_id"`
	Event          models.EventSummary      `json:"event"`
	PoolSize       int                      `json:"pool_size"`
	AssignedCount  int                      `json:"assigned_count"`
	Matches        []models.RankedVolunteer `json:"matches"`
	ProcessingTime time.Duration            `json:"-"`
	ProcessingMs   int64                    `json:"processing_ms"`
}

// FindVolunteersForEvent loads the event, the active volunteer pool, and the
// current assignment set, then ranks the pool for the event.
func (s *Service) FindVolunteersForEvent(ctx context.Context, eventID int64, opts matching.RankOptions) (*FindResult, error) {
	startTime := time.Now()
	requestID := uuid.NewString()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	if event == nil {
		return nil, models.ErrEventNotFound
	}

	pool, err := s.volunteerRepo.GetAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load volunteer pool: %w", err)
	}

	assigned, err := s.assignmentRepo.GetAssignedVolunteerIDs(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignments: %w", err)
	}

	if opts.Limit <= 0 {
		opts.Limit = s.config.DefaultResultLimit
	}

	matches := matching.RankVolunteers(event, pool, assigned, opts)

	result := &FindResult{
		RequestID:      requestID,
		Event:          event.ToSummary(),
		PoolSize:       len(pool),
		AssignedCount:  len(assigned),
		Matches:        matches,
		ProcessingTime: time.Since(startTime),
	}
	result.ProcessingMs = result.ProcessingTime.Milliseconds()

	utils.Logger.Info("volunteer ranking complete",
		zap.String("request_id", requestID),
		zap.Int64("event_id", eventID),
		zap.Int("pool_size", result.PoolSize),
		zap.Int("assigned", result.AssignedCount),
		zap.Int("matches", len(matches)),
		zap.Duration("processing_time", result.ProcessingTime),
	)

	return result, nil
}

// ScorePair scores a single volunteer against a single event.
func (s *Service) ScorePair(ctx context.Context, volunteerID, eventID int64) (*models.MatchResult, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	if event == nil {
		return nil, models.ErrEventNotFound
	}

	volunteer, err := s.volunteerRepo.GetByID(ctx, volunteerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load volunteer: %w", err)
	}
	if volunteer == nil {
		return nil, models.ErrVolunteerNotFound
	}

	result := matching.CalculateMatchScore(volunteer, event)

	utils.Logger.Debug("pair scored",
		zap.Int64("volunteer_id", volunteerID),
		zap.Int64("event_id", eventID),
		zap.Int("total_score", result.TotalScore),
		zap.String("quality", string(result.MatchQuality)),
	)

	return &result, nil
}
