package appstate

import (
	"time"

	"github.com/skillcoder/workload-reconciler/internal/infra/pinger"
)

// pingerServer is the readiness prober consulted by AppState
type pingerServer interface {
	Register(p pinger.Pinger) error
	IsReady() bool
	Results() map[string]pinger.Result
}

// healthChecker is an internal interface for health checking
type healthChecker interface {
	IsHealthy() bool
}

// readyChecker is an internal interface for readiness checking
type readyChecker interface {
	IsReady() bool
	GetState() State
	GetProbeResults() map[string]pinger.Result
}

// statusGetter is an internal interface for getting the application status
type statusGetter interface {
	GetState() State
	GetUptime() time.Duration
	GetStartTime() time.Time
	GetProbeResults() map[string]pinger.Result
}
