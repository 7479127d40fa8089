package httpserver

import (
	"context"
	"time"

	"github.com/skillcoder/workload-reconciler/internal/infra/appstate"
	"github.com/skillcoder/workload-reconciler/internal/infra/pinger"
	"github.com/skillcoder/workload-reconciler/internal/logic/hoststats"
)

// appstater is an internal interface for application state management
type appstater interface {
	GetState() appstate.State
	IsHealthy() bool
	IsReady() bool
	GetUptime() time.Duration
	GetStartTime() time.Time
	GetProbeResults() map[string]pinger.Result
}

// hostStater answers the workload API.
type hostStater interface {
	HealthQuery(ctx context.Context) hoststats.Health
	MetricsQuery(ctx context.Context) (hoststats.Metrics, error)
	InfoQuery(ctx context.Context) (hoststats.Info, error)
}

type requestObserver interface {
	Observe(route, method string, code int, duration time.Duration)
}
