package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/skillcoder/workload-reconciler/internal/adapters/outbound/hostfs"
	"github.com/skillcoder/workload-reconciler/internal/config"
	"github.com/skillcoder/workload-reconciler/internal/httpserver"
	"github.com/skillcoder/workload-reconciler/internal/infra/appstate"
	"github.com/skillcoder/workload-reconciler/internal/infra/metrics"
	"github.com/skillcoder/workload-reconciler/internal/infra/pinger"
	"github.com/skillcoder/workload-reconciler/internal/infra/shutdown"
	"github.com/skillcoder/workload-reconciler/internal/logic/hoststats"
)

var errComponentsNotReady = errors.New("components not ready")

// SampleApp is the HTTP workload deployed by the reconciler.
type SampleApp struct {
	logger   *slog.Logger
	appState *appstate.AppState
	signals  signalHandler
	servers  []appServer
	pingers  appServer
}

// NewSampleApp wires the host stats service behind the HTTP and metrics servers.
func NewSampleApp(
	logger *slog.Logger,
	cfg *config.SampleAppConfig,
	signals <-chan os.Signal,
	appStart time.Time,
) (*SampleApp, error) {
	reader, err := hostfs.New("")
	if err != nil {
		return nil, fmt.Errorf("open host stats: %w", err)
	}

	hostname, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("get hostname: %w", err)
	}

	stats := hoststats.NewService(logger, reader, hostname, 0, "")
	pingers := pinger.New(logger, cfg.PingerInterval, 0)
	appState := appstate.New(logger, appStart, signals, cfg.ShutdownTimeout, pingers)
	observer := metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)

	metricsServer := httpserver.NewMetricsServer(logger, prometheus.DefaultGatherer, cfg.MetricsPort)
	httpServer := httpserver.New(logger, appState, stats, observer, cfg.HTTPPort)

	for _, p := range []pinger.Pinger{reader, metricsServer, httpServer} {
		if err := appState.RegisterPinger(p); err != nil {
			return nil, fmt.Errorf("register pinger: %w", err)
		}
	}

	return &SampleApp{
		logger:   logger,
		appState: appState,
		signals:  shutdown.New(logger, appState),
		servers:  []appServer{metricsServer, httpServer},
		pingers:  pingers,
	}, nil
}

// Run starts the servers and blocks until a termination signal arrives or ctx is cancelled.
func (a *SampleApp) Run(originCtx context.Context) error {
	if err := a.signals.CheckTermination(originCtx); err != nil {
		return fmt.Errorf("check termination: %w", err)
	}

	ctx, cancel := context.WithCancel(originCtx)
	defer cancel()

	go a.signals.HandleSignals(ctx, cancel)

	if err := a.appState.SetStarting(ctx); err != nil {
		return fmt.Errorf("set starting application state: %w", err)
	}

	// Servers first, so the first ping round finds them listening.
	if err := a.start(ctx, a.servers...); err != nil {
		return errors.Join(err, a.appState.Shutdown(originCtx))
	}

	if err := a.start(ctx, a.pingers); err != nil {
		return errors.Join(err, a.appState.Shutdown(originCtx))
	}

	if err := a.appState.SetRunning(ctx); err != nil {
		return fmt.Errorf("set running application state: %w", err)
	}

	<-ctx.Done()

	a.logger.InfoContext(originCtx, "shutting down")

	return a.appState.Shutdown(originCtx)
}

// start starts the components, registers them for shutdown and waits until
// all of them are ready.
func (a *SampleApp) start(ctx context.Context, components ...appServer) error {
	readyChans := make([]<-chan struct{}, 0, len(components))

	for _, c := range components {
		if err := c.Start(ctx); err != nil {
			return fmt.Errorf("start %s: %w", c.Name(), err)
		}

		a.appState.RegisterShutdowner(c)
		readyChans = append(readyChans, c.Ready())
	}

	<-allChannelsClose(ctx, a.logger, readyChans...)

	if ctx.Err() != nil {
		return fmt.Errorf("%w: %w", errComponentsNotReady, ctx.Err())
	}

	return nil
}

// allChannelsClose returns a channel closed once every input channel is closed.
// It is also closed when ctx is done, so callers must check ctx themselves.
func allChannelsClose(ctx context.Context, logger *slog.Logger, chans ...<-chan struct{}) <-chan struct{} {
	out := make(chan struct{})

	var wg sync.WaitGroup

	for _, ch := range chans {
		wg.Go(func() {
			select {
			case <-ch:
			case <-ctx.Done():
				logger.DebugContext(ctx, "stopped waiting for readiness", "reason", ctx.Err())
			}
		})
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
