package middleware

import (
	"net/http"

	"github.com/casbin/casbin/v2"
)

// Authorizer creates a middleware that checks subject's permission for the request's
// path and method with Casbin. Denied requests get a 403 JSON error.
func Authorizer(e casbin.IEnforcer, subject string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, err := e.Enforce(subject, r.URL.Path, r.Method)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "authorization error")
				return
			}

			if !allowed {
				WriteError(w, http.StatusForbidden, "forbidden")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
