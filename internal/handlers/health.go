package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"resumewise-backend/internal/dto"
	"resumewise-backend/internal/utils"
)

// Version is the reported service version
const Version = "2.0.0"

// HealthHandler handles health check related requests
type HealthHandler struct {
	db          *pgxpool.Pool
	environment string
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(db *pgxpool.Pool, environment string) *HealthHandler {
	return &HealthHandler{db: db, environment: environment}
}

// HealthCheck reports service status for monitoring
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.ServiceInfoResponse
// @Router /health [get]
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.ServiceInfoResponse{
		Status:      "healthy",
		Service:     "ResumeWise API",
		Version:     Version,
		Environment: h.environment,
	})
}

// LivenessCheck handles process liveness check
func (h *HealthHandler) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "alive"})
}

// ReadinessCheck handles readiness check (includes database connectivity)
func (h *HealthHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		utils.WriteJSONResponse(w, http.StatusServiceUnavailable, dto.HealthResponse{
			Status:  "degraded",
			Details: map[string]any{"db": err.Error()},
		})
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{
		Status:  "ready",
		Details: map[string]any{"db": "ok"},
	})
}
