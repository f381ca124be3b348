package handler

import (
	"go-cms-app/internal/middleware"
	"go-cms-app/internal/service"
	"net/http"
)

const msgCategoryNotFound = "category not found"

// CategoryHandler serves /api/categories.
type CategoryHandler struct {
	categories *service.CategoryService
	pages      service.PageServicer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(cs *service.CategoryService, ps service.PageServicer) *CategoryHandler {
	return &CategoryHandler{categories: cs, pages: ps}
}

func (h *CategoryHandler) listHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		return serviceError(err, "failed to list categories")
	}
	return respond(w, http.StatusOK, categories)
}

func (h *CategoryHandler) createHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	var in service.CategoryInput
	if appErr := decodeJSON(r, &in); appErr != nil {
		return appErr
	}
	category, err := h.categories.Create(r.Context(), in)
	if err != nil {
		return serviceError(err, "failed to create category")
	}
	return respond(w, http.StatusCreated, category)
}

func (h *CategoryHandler) updateHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, appErr := pathID(r, msgCategoryNotFound)
	if appErr != nil {
		return appErr
	}
	var in service.CategoryInput
	if appErr := decodeJSON(r, &in); appErr != nil {
		return appErr
	}
	category, err := h.categories.Update(r.Context(), id, in)
	if err != nil {
		return serviceError(err, "failed to update category")
	}
	return respond(w, http.StatusOK, category)
}

func (h *CategoryHandler) deleteHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, appErr := pathID(r, msgCategoryNotFound)
	if appErr != nil {
		return appErr
	}
	if err := h.categories.Delete(r.Context(), id); err != nil {
		return serviceError(err, "failed to delete category")
	}
	return respond(w, http.StatusOK, successBody{Success: true})
}

// pagesHandler lists the pages of one category; an unknown category yields [].
func (h *CategoryHandler) pagesHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, appErr := pathID(r, msgCategoryNotFound)
	if appErr != nil {
		return respond(w, http.StatusOK, []struct{}{})
	}
	pages, err := h.pages.ListByCategory(r.Context(), id)
	if err != nil {
		return serviceError(err, "failed to list category pages")
	}
	return respond(w, http.StatusOK, pages)
}
