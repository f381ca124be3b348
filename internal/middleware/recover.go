package middleware

import (
	"fmt"
	"go-cms-app/internal/logger"
	"net/http"
)

// Recoverer turns a panic anywhere below it into a logged 500 {"error": ...} response.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func Recoverer(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("%v", rec)
				}
				log.With(map[string]interface{}{
					"method": r.Method,
					"path":   r.URL.Path,
				}).Error(err, "Panic recovered")
				WriteError(w, http.StatusInternalServerError, internalErrorMessage)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
