package middleware

import (
	"encoding/json"
	"fmt"
	"go-cms-app/internal/logger"
	"net/http"
)

// AppError represents a custom error type for the application.
type AppError struct {
	Error   error
	Message string
	Code    int
}

// AppHandler is a custom handler function type that returns an AppError.
type AppHandler func(http.ResponseWriter, *http.Request) *AppError

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error string `json:"error"`
}

const internalErrorMessage = "internal server error"

// Error is a middleware that converts handler errors into {"error": ...} JSON responses.
// Only server faults are logged. When exposeStoreErrors is set, a fault's own message is
// returned to the client instead of a generic one. Panics are left to Recoverer.
func Error(log logger.Logger, exposeStoreErrors bool) func(AppHandler) http.Handler {
	return func(next AppHandler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			appErr := next(w, r)
			if appErr == nil {
				return
			}

			message := appErr.Message
			if appErr.Code >= http.StatusInternalServerError {
				log.With(map[string]interface{}{
					"method": r.Method,
					"path":   r.URL.Path,
				}).Error(appErr.Error, appErr.Message)
				switch {
				case exposeStoreErrors && appErr.Error != nil:
					message = appErr.Error.Error()
				case !exposeStoreErrors:
					message = internalErrorMessage
				}
			}
			WriteError(w, appErr.Code, message)
		})
	}
}

// WriteJSON serializes v as the response body with the given status. v is encoded
// before anything is written, so on error the response is still untouched.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
	return nil
}

// WriteError writes an {"error": message} body.
func WriteError(w http.ResponseWriter, status int, message string) {
	_ = WriteJSON(w, status, errorBody{Error: message})
}
