package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"go-cms-app/internal/middleware"
	"go-cms-app/internal/service"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// successBody is returned by delete and bootstrap operations.
type successBody struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// decodeJSON reads the request body into dst. An empty body leaves dst untouched so
// that the required-field checks report what is missing.
func decodeJSON(r *http.Request, dst interface{}) *middleware.AppError {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return &middleware.AppError{Error: err, Message: fmt.Sprintf("%s has an invalid type", typeErr.Field), Code: http.StatusBadRequest}
	}
	return &middleware.AppError{Error: err, Message: "invalid JSON body", Code: http.StatusBadRequest}
}

// pathID parses the numeric {id} segment. The router only matches digits, so the
// only failure left is overflow, which cannot name an existing row.
func pathID(r *http.Request, notFound string) (int64, *middleware.AppError) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, &middleware.AppError{Error: err, Message: notFound, Code: http.StatusNotFound}
	}
	return id, nil
}

// serviceError maps a service failure onto its HTTP status.
func serviceError(err error, message string) *middleware.AppError {
	var (
		validationErr *service.ValidationError
		notFoundErr   *service.NotFoundError
		conflictErr   *service.ConflictError
	)
	switch {
	case errors.As(err, &validationErr):
		return &middleware.AppError{Error: err, Message: validationErr.Message, Code: http.StatusBadRequest}
	case errors.As(err, &notFoundErr):
		return &middleware.AppError{Error: err, Message: notFoundErr.Message, Code: http.StatusNotFound}
	case errors.As(err, &conflictErr):
		return &middleware.AppError{Error: err, Message: conflictErr.Message, Code: http.StatusBadRequest}
	default:
		return &middleware.AppError{Error: err, Message: message, Code: http.StatusInternalServerError}
	}
}

// respond writes v as JSON. An encoding failure leaves the response untouched, so the
// returned AppError is the only thing the client sees.
func respond(w http.ResponseWriter, status int, v interface{}) *middleware.AppError {
	if err := middleware.WriteJSON(w, status, v); err != nil {
		return &middleware.AppError{Error: err, Message: "failed to write response", Code: http.StatusInternalServerError}
	}
	return nil
}
