package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skillcoder/workload-reconciler/internal/infra/shutdown"
)

// MetricsServer serves Prometheus metrics on a dedicated port.
type MetricsServer struct {
	logger     *slog.Logger
	gatherer   prometheus.Gatherer
	port       string
	server     *http.Server
	addr       atomic.Pointer[string]
	ready      chan struct{}
	inShutdown atomic.Bool
}

// NewMetricsServer creates a new metrics server that serves GET /metrics from
// gatherer on the given port.
func NewMetricsServer(logger *slog.Logger, gatherer prometheus.Gatherer, port string) *MetricsServer {
	if port == "" {
		port = defaultMetricsPort
	}

	return &MetricsServer{
		logger:   logger,
		gatherer: gatherer,
		port:     port,
		ready:    make(chan struct{}),
	}
}

var _ shutdown.Shutdowner = (*MetricsServer)(nil)

// Name returns the name of the metrics server component.
func (s *MetricsServer) Name() string {
	return "metrics-server"
}

// Ping scrapes the metrics endpoint over loopback once the server is serving,
// which also catches collectors that fail to gather.
func (s *MetricsServer) Ping(ctx context.Context) error {
	if err := pingReady(ctx, s.ready, "metrics server"); err != nil {
		return err
	}

	return probe(ctx, s.Addr(), metricsPath)
}

// Addr returns the bound listener address, or "" before Start.
func (s *MetricsServer) Addr() string {
	if addr := s.addr.Load(); addr != nil {
		return *addr
	}

	return ""
}

// Start starts the metrics HTTP server in a goroutine.
func (s *MetricsServer) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "metrics server is shutting down, skipping start")

		return nil
	}

	mux := http.NewServeMux()
	mux.Handle(metricsPath, promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{
		ErrorLog:      slog.NewLogLogger(s.logger.Handler(), slog.LevelError),
		ErrorHandling: promhttp.HTTPErrorOnError,
	}))

	s.server = newHTTPServer(":"+s.port, mux)

	listener, err := listen(ctx, s.server.Addr)
	if err != nil {
		return fmt.Errorf("listen metrics tcp: %w", err)
	}

	addr := listener.Addr().String()
	s.addr.Store(&addr)

	s.logger.InfoContext(ctx, "metrics server listening", "addr", addr)

	go func() {
		close(s.ready)

		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.ErrorContext(ctx, "metrics server error", "reason", err)
		}
	}()

	return nil
}

// Ready returns a channel that is closed when the metrics server is ready.
func (s *MetricsServer) Ready() <-chan struct{} {
	return s.ready
}

// Shutdown gracefully shuts down the metrics server.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	return shutdownServer(ctx, s.logger, &s.inShutdown, s.server, "metrics server")
}
