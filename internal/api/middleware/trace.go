package middleware

import (
	"log/slog"
	"net/http"

	"github.com/abdelmajidelayachi/task-manager/internal/api/shared"
	"github.com/abdelmajidelayachi/task-manager/internal/platform/logger"
)

// Trace assigns each request a trace ID and stores a request-scoped
// logger carrying it in the context, so every log line and error
// envelope produced downstream can be correlated.
func Trace(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			reqLog := log.With("trace_id", shared.GetTraceID(ctx))
			ctx = logger.WithContext(ctx, reqLog)

			reqLog.Debug("request started",
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
