package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/maxikash/condonaciones-api/pkg/response"
)

type HealthHandler struct {
	db      *sqlx.DB
	timeout time.Duration
}

func NewHealthHandler(db *sqlx.DB, timeout time.Duration) *HealthHandler {
	return &HealthHandler{
		db:      db,
		timeout: timeout,
	}
}

type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// Health performs a basic liveness check
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, HealthStatus{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready performs a readiness check including reporting-database connectivity
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status:    "ok",
		Timestamp: time.Now(),
		Checks:    make(map[string]string),
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		status.Status = "error"
		status.Checks["database"] = "failed: " + err.Error()
		response.JSON(w, http.StatusServiceUnavailable, status)
		return
	}

	status.Checks["database"] = "ok"
	response.JSON(w, http.StatusOK, status)
}
