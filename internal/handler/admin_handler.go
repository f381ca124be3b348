package handler

import (
	"go-cms-app/internal/middleware"
	"go-cms-app/internal/service"
	"net/http"
)

// AdminHandler serves the bootstrap endpoint.
type AdminHandler struct {
	bootstrap *service.BootstrapService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(bs *service.BootstrapService) *AdminHandler {
	return &AdminHandler{bootstrap: bs}
}

// initDBHandler applies pending migrations and inserts the example rows.
func (h *AdminHandler) initDBHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	if err := h.bootstrap.Init(r.Context()); err != nil {
		return serviceError(err, "failed to initialize database")
	}
	return respond(w, http.StatusOK, successBody{
		Success: true,
		Message: "database initialized: categories and pages tables are ready",
	})
}
