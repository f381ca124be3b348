package handler

import (
	"context"
	"go-cms-app/internal/middleware"
	"net/http"
	"time"
)

// Pinger is satisfied by *sqlx.DB and *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler serves the liveness and readiness checks.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

type statusBody struct {
	Status string `json:"status"`
}

func (h *HealthHandler) healthzHandler(w http.ResponseWriter, r *http.Request) {
	_ = middleware.WriteJSON(w, http.StatusOK, statusBody{Status: "ok"})
}

func (h *HealthHandler) readyzHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := h.db.PingContext(ctx); err != nil {
		_ = middleware.WriteJSON(w, http.StatusServiceUnavailable, statusBody{Status: "unavailable"})
		return
	}
	_ = middleware.WriteJSON(w, http.StatusOK, statusBody{Status: "ready"})
}
