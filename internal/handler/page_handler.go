package handler

import (
	"go-cms-app/internal/middleware"
	"go-cms-app/internal/service"
	"net/http"
)

const msgPageNotFound = "page not found"

// PageHandler holds the dependencies for the page handlers.
type PageHandler struct {
	pageService service.PageServicer
}

// NewPageHandler creates a new PageHandler with the given dependencies.
func NewPageHandler(ps service.PageServicer) *PageHandler {
	return &PageHandler{pageService: ps}
}

func (h *PageHandler) listHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	pages, err := h.pageService.List(r.Context())
	if err != nil {
		return serviceError(err, "failed to list pages")
	}
	return respond(w, http.StatusOK, pages)
}

// viewHandler returns one page with its rendered description.
func (h *PageHandler) viewHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, appErr := pathID(r, msgPageNotFound)
	if appErr != nil {
		return appErr
	}
	page, err := h.pageService.Get(r.Context(), id)
	if err != nil {
		return serviceError(err, "failed to get page")
	}
	return respond(w, http.StatusOK, page)
}

func (h *PageHandler) createHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	var in service.PageInput
	if appErr := decodeJSON(r, &in); appErr != nil {
		return appErr
	}
	page, err := h.pageService.Create(r.Context(), in)
	if err != nil {
		return serviceError(err, "failed to create page")
	}
	return respond(w, http.StatusCreated, page)
}

func (h *PageHandler) updateHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, appErr := pathID(r, msgPageNotFound)
	if appErr != nil {
		return appErr
	}
	var in service.PageInput
	if appErr := decodeJSON(r, &in); appErr != nil {
		return appErr
	}
	page, err := h.pageService.Update(r.Context(), id, in)
	if err != nil {
		return serviceError(err, "failed to update page")
	}
	return respond(w, http.StatusOK, page)
}

func (h *PageHandler) deleteHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, appErr := pathID(r, msgPageNotFound)
	if appErr != nil {
		return appErr
	}
	if err := h.pageService.Delete(r.Context(), id); err != nil {
		return serviceError(err, "failed to delete page")
	}
	return respond(w, http.StatusOK, successBody{Success: true})
}
