package appstate

import (
	"context"
	"encoding/json"
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/skillcoder/workload-reconciler/internal/infra/pinger"
)

type statusResponse struct {
	State     string                   `json:"state"`
	Uptime    string                   `json:"uptime"`
	StartTime time.Time                `json:"startTime"`
	UptimeSec float64                  `json:"uptimeSeconds"`
	Probes    map[string]pinger.Result `json:"probes,omitempty"`
}

type readinessResponse struct {
	Ready   bool     `json:"ready"`
	State   string   `json:"state"`
	Failing []string `json:"failing,omitempty"`
}

// HandleHealthz returns an http.HandlerFunc for the /-/healthz endpoint.
// Liveness only depends on the lifecycle state, never on the probes.
func HandleHealthz(
	logger *slog.Logger,
	appState healthChecker,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if !appState.IsHealthy() {
			w.WriteHeader(http.StatusServiceUnavailable)
			requestLogger(ctx, logger).DebugContext(ctx, "health check failed")

			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// HandleReadyz returns an http.HandlerFunc for the /-/readyz endpoint.
// A 503 body names the probes whose last ping failed.
func HandleReadyz(
	logger *slog.Logger,
	appState readyChecker,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := requestLogger(ctx, logger)

		response := readinessResponse{
			Ready: appState.IsReady(),
			State: string(appState.GetState()),
		}

		code := http.StatusOK
		if !response.Ready {
			code = http.StatusServiceUnavailable
			response.Failing = failingProbes(appState.GetProbeResults())

			log.DebugContext(ctx, "readiness check failed",
				"state", response.State,
				"failing", response.Failing,
			)
		}

		writeJSON(ctx, log, w, code, response)
	}
}

// HandleStatus returns an http.HandlerFunc for the /-/status endpoint
func HandleStatus(
	logger *slog.Logger,
	appState statusGetter,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		uptime := appState.GetUptime()

		writeJSON(ctx, requestLogger(ctx, logger), w, http.StatusOK, statusResponse{
			State:     string(appState.GetState()),
			Uptime:    uptime.String(),
			StartTime: appState.GetStartTime(),
			UptimeSec: uptime.Seconds(),
			Probes:    appState.GetProbeResults(),
		})
	}
}

func requestLogger(ctx context.Context, logger *slog.Logger) *slog.Logger {
	return logger.With("requestID", middleware.GetReqID(ctx))
}

// failingProbes returns the sorted names of the probes that are not OK.
func failingProbes(results map[string]pinger.Result) []string {
	failing := make([]string, 0, len(results))

	for _, name := range slices.Sorted(maps.Keys(results)) {
		if !results[name].OK() {
			failing = append(failing, name)
		}
	}

	return failing
}

func writeJSON(ctx context.Context, log *slog.Logger, w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ErrorContext(ctx, "failed to encode response", "reason", err)
	}
}
