package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const indexPage = `<!DOCTYPE html>
<html>
<head><title>Kubernetes Monitoring App</title></head>
<body>
<h1>Kubernetes Monitoring App</h1>
<p>Available endpoints:</p>
<ul>
<li><a href="/health">/health</a> - application status</li>
<li><a href="/metrics">/metrics</a> - host metrics</li>
<li><a href="/info">/info</a> - host information</li>
</ul>
</body>
</html>
`

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte(indexPage)); err != nil {
		s.logger.DebugContext(r.Context(), "failed to write index page", "reason", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, s.stats.HealthQuery(r.Context()))
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	metrics, err := s.stats.MetricsQuery(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "host metrics unavailable",
			"requestID", middleware.GetReqID(ctx),
			"reason", err,
		)
		s.writeJSON(w, r, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})

		return
	}

	s.writeJSON(w, r, http.StatusOK, metrics)
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	info, err := s.stats.InfoQuery(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "host info unavailable",
			"requestID", middleware.GetReqID(ctx),
			"reason", err,
		)
		s.writeJSON(w, r, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})

		return
	}

	s.writeJSON(w, r, http.StatusOK, info)
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.ErrorContext(r.Context(), "failed to encode response", "reason", err)
	}
}

// instrument reports every request to observer under its route pattern.
func instrument(observer requestObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}

			code := ww.Status()
			if code == 0 {
				code = http.StatusOK
			}

			observer.Observe(route, r.Method, code, time.Since(start))
		})
	}
}
