package httpapi

import (
	"net/http"

	"github.com/riskibarqy/hockey-stats/internal/platform/logging"
)

// RouterOptions carries the boundary settings the router needs besides the
// handler itself.
type RouterOptions struct {
	CORSAllowedOrigins []string
	AdminKey           string
	// MetricsHandler is served on /metrics when set.
	MetricsHandler http.Handler
	Observer       RequestObserver
}

func NewRouter(handler *Handler, logger *logging.Logger, opts RouterOptions) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts.MetricsHandler)
	registerPublicRoutes(mux, handler)
	registerAdminRoutes(mux, handler, opts.AdminKey)

	return RequestTracing(RequestLogging(logger, opts.Observer, CORS(opts.CORSAllowedOrigins, recoverPanic(logger, recordRoute(mux)))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
