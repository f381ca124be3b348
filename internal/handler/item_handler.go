package handler

import (
	"go-cms-app/internal/middleware"
	"go-cms-app/internal/service"
	"net/http"
)

const msgItemNotFound = "item not found"

// ItemHandler serves the legacy /api/items endpoints.
type ItemHandler struct {
	items *service.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(is *service.ItemService) *ItemHandler {
	return &ItemHandler{items: is}
}

func (h *ItemHandler) listHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	items, err := h.items.List(r.Context())
	if err != nil {
		return serviceError(err, "failed to list items")
	}
	return respond(w, http.StatusOK, items)
}

func (h *ItemHandler) viewHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, appErr := pathID(r, msgItemNotFound)
	if appErr != nil {
		return appErr
	}
	item, err := h.items.Get(r.Context(), id)
	if err != nil {
		return serviceError(err, "failed to get item")
	}
	return respond(w, http.StatusOK, item)
}

func (h *ItemHandler) createHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	var in service.ItemInput
	if appErr := decodeJSON(r, &in); appErr != nil {
		return appErr
	}
	item, err := h.items.Create(r.Context(), in)
	if err != nil {
		return serviceError(err, "failed to create item")
	}
	return respond(w, http.StatusCreated, item)
}

func (h *ItemHandler) updateHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, appErr := pathID(r, msgItemNotFound)
	if appErr != nil {
		return appErr
	}
	var in service.ItemInput
	if appErr := decodeJSON(r, &in); appErr != nil {
		return appErr
	}
	item, err := h.items.Update(r.Context(), id, in)
	if err != nil {
		return serviceError(err, "failed to update item")
	}
	return respond(w, http.StatusOK, item)
}

func (h *ItemHandler) deleteHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, appErr := pathID(r, msgItemNotFound)
	if appErr != nil {
		return appErr
	}
	if err := h.items.Delete(r.Context(), id); err != nil {
		return serviceError(err, "failed to delete item")
	}
	return respond(w, http.StatusOK, successBody{Success: true})
}
