// Package main provides the HTTP API server for the volunteer matching engine.
// It exposes the ranking and scoring operations plus a transparency endpoint
// describing how matching works.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"volunteer-matching-engine/internal/config"
	"volunteer-matching-engine/internal/matching"
	"volunteer-matching-engine/internal/models"
	"volunteer-matching-engine/internal/services/database"
	"volunteer-matching-engine/internal/services/matcher"
	"volunteer-matching-engine/internal/utils"
)

// Server holds all dependencies
type Server struct {
	db        *database.DB
	eventRepo *database.EventRepository
	matcher   *matcher.Service
	config    *config.Config
}

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// FindVolunteersRequest is the body of the ranking endpoint.
type FindVolunteersRequest struct {
	EventID         int64 `json:"event_id"`
	Limit           int   `json:"limit,omitempty"`
	MinScore        int   `json:"min_score,omitempty"`
	IncludeAssigned bool  `json:"include_assigned,omitempty"`
}

// ScorePairRequest is the body of the single-pair scoring endpoint.
type ScorePairRequest struct {
	VolunteerID int64 `json:"volunteer_id"`
	EventID     int64 `json:"event_id"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := utils.InitLogger(cfg.LogLevel, cfg.Stage); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer utils.Sync()

	db, err := database.New(cfg)
	if err != nil {
		utils.Logger.Fatal("could not connect to database", zap.Error(err))
	}
	defer db.Close()

	server := &Server{
		db:        db,
		eventRepo: database.NewEventRepository(db),
		matcher:   matcher.NewService(db, cfg),
		config:    cfg,
	}

	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("/health", server.healthHandler)
	mux.HandleFunc("/api/health", server.healthHandler)

	// Upcoming events
	mux.HandleFunc("/api/events", server.eventsHandler)

	// Rank the volunteer pool for an event
	mux.HandleFunc("/api/matching/find-volunteers", server.findVolunteersHandler)

	// Score a single volunteer-event pairing
	mux.HandleFunc("/api/matching/score", server.scorePairHandler)

	// Weight table and quality bands
	mux.HandleFunc("/api/matching/algorithm-info", server.algorithmInfoHandler)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := c.Handler(mux)
	addr := fmt.Sprintf("0.0.0.0:%s", cfg.Port)

	utils.Logger.Info("volunteer matching API listening",
		zap.String("addr", addr),
		zap.String("stage", cfg.Stage),
	)

	if err := http.ListenAndServe(addr, handler); err != nil {
		utils.Logger.Fatal("server failed", zap.Error(err))
	}
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	status := map[string]string{"status": "healthy", "database": "connected"}
	code := http.StatusOK
	if err := s.db.HealthCheck(r.Context()); err != nil {
		status["status"] = "degraded"
		status["database"] = "unreachable"
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, Response{Success: code == http.StatusOK, Data: status})
}

func (s *Server) eventsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	events, err := s.eventRepo.ListUpcoming(r.Context(), 0)
	if err != nil {
		utils.Logger.Error("failed to list events", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to fetch events",
		})
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Data: events})
}

func (s *Server) findVolunteersHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req FindVolunteersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}
	if req.EventID <= 0 {
		writeJSON(w, http.StatusBadRequest, Response{Success: false, Error: "event_id is required"})
		return
	}

	opts := matching.RankOptions{
		Limit:           req.Limit,
		MinScore:        req.MinScore,
		IncludeAssigned: req.IncludeAssigned,
	}

	result, err := s.matcher.FindVolunteersForEvent(r.Context(), req.EventID, opts)
	if err != nil {
		if errors.Is(err, models.ErrEventNotFound) {
			writeJSON(w, http.StatusNotFound, Response{Success: false, Error: err.Error()})
			return
		}
		utils.Logger.Error("ranking failed", zap.Int64("event_id", req.EventID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to rank volunteers",
		})
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Data: result})
}

func (s *Server) scorePairHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ScorePairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}
	if req.VolunteerID <= 0 || req.EventID <= 0 {
		writeJSON(w, http.StatusBadRequest, Response{Success: false, Error: "volunteer_id and event_id are required"})
		return
	}

	result, err := s.matcher.ScorePair(r.Context(), req.VolunteerID, req.EventID)
	if err != nil {
		if errors.Is(err, models.ErrEventNotFound) || errors.Is(err, models.ErrVolunteerNotFound) {
			writeJSON(w, http.StatusNotFound, Response{Success: false, Error: err.Error()})
			return
		}
		utils.Logger.Error("pair scoring failed",
			zap.Int64("volunteer_id", req.VolunteerID),
			zap.Int64("event_id", req.EventID),
			zap.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to score pairing",
		})
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Data: result})
}

func (s *Server) algorithmInfoHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Data: matching.AlgorithmInfo()})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		utils.Logger.Error("failed to encode response", zap.Error(err))
	}
}
