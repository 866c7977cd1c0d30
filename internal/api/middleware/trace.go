package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/skillpilot-api/internal/api/shared"
	"github.com/phrazzld/skillpilot-api/internal/platform/logger"
)

// Trace adds a trace ID to the request context and returns it in the
// X-Trace-ID response header. Handlers get a request-scoped logger carrying
// the trace ID through logger.FromContext.
// It should be applied early in the middleware chain.
func Trace(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			log.DebugContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			w.Header().Set(shared.TraceIDHeader, traceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
