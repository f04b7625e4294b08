package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/abdelmajidelayachi/task-manager/internal/api/shared"
	"github.com/abdelmajidelayachi/task-manager/internal/platform/logger"
)

// Recover converts panics in downstream handlers into the standard
// 500 envelope instead of tearing down the connection.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.FromContext(r.Context()).Error("panic recovered",
					"panic", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()))

				shared.RespondWithError(w, r, http.StatusInternalServerError,
					"Internal Server Error",
					"An unexpected error occurred. Please try again later.")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
