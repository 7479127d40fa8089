package prometheus

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/api"
	promv1 "github.com/prometheus/client_golang/api/prometheus/v1"

	"github.com/skillcoder/workload-reconciler/internal/logic/reconciler"
)

// Adapter runs PromQL instant queries against one Prometheus server.
type Adapter struct {
	logger *slog.Logger
	api    promv1.API
	now    func() time.Time
}

// New creates a new Prometheus adapter on top of an HTTP API client.
func New(logger *slog.Logger, promAPI promv1.API) *Adapter {
	return &Adapter{
		logger: logger,
		api:    promAPI,
		now:    time.Now,
	}
}

var _ reconciler.MonitoringRepository = (*Adapter)(nil)

// InstantQuery evaluates expr at the current time.
func (a *Adapter) InstantQuery(ctx context.Context, expr string) ([]reconciler.Sample, error) {
	value, warnings, err := a.api.Query(ctx, expr, a.now())
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", expr, err)
	}

	if len(warnings) > 0 {
		a.logger.WarnContext(ctx, "prometheus returned warnings",
			"query", expr,
			"warnings", []string(warnings),
		)
	}

	samples, err := toDomainSamples(value)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", expr, err)
	}

	return samples, nil
}

// PingQuery checks that the server answers the HTTP API.
func (a *Adapter) PingQuery(ctx context.Context) error {
	info, err := a.api.Buildinfo(ctx)
	if err != nil {
		return fmt.Errorf("get build info: %w", err)
	}

	a.logger.DebugContext(ctx, "prometheus reachable", "version", info.Version)

	return nil
}

// Connector builds adapters for resolved Prometheus URLs.
type Connector struct {
	logger       *slog.Logger
	roundTripper http.RoundTripper
}

// NewConnector creates a new connector. A nil roundTripper selects the client default.
func NewConnector(logger *slog.Logger, roundTripper http.RoundTripper) *Connector {
	return &Connector{
		logger:       logger,
		roundTripper: roundTripper,
	}
}

var _ reconciler.MonitoringConnector = (*Connector)(nil)

// Connect creates a client for baseURL and probes it once.
func (c *Connector) Connect(ctx context.Context, baseURL string) (reconciler.MonitoringRepository, error) {
	client, err := api.NewClient(api.Config{
		Address:      baseURL,
		RoundTripper: c.roundTripper,
	})
	if err != nil {
		return nil, fmt.Errorf("new prometheus client: %w", err)
	}

	adapter := New(c.logger.With("prometheus", baseURL), promv1.NewAPI(client))

	if err := adapter.PingQuery(ctx); err != nil {
		return nil, err
	}

	return adapter, nil
}
