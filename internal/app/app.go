package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/docker/docker/client"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"
	metricsv "k8s.io/metrics/pkg/client/clientset/versioned"

	"github.com/skillcoder/workload-reconciler/internal/adapters/outbound/docker"
	"github.com/skillcoder/workload-reconciler/internal/adapters/outbound/k8s"
	"github.com/skillcoder/workload-reconciler/internal/adapters/outbound/minikube"
	"github.com/skillcoder/workload-reconciler/internal/adapters/outbound/prometheus"
	"github.com/skillcoder/workload-reconciler/internal/config"
	"github.com/skillcoder/workload-reconciler/internal/infra/metrics"
	"github.com/skillcoder/workload-reconciler/internal/infra/shutdown"
	"github.com/skillcoder/workload-reconciler/internal/logic/reconciler"
)

const (
	pushJob     = "workload-reconciler"
	pushTimeout = 5 * time.Second
)

// App runs one reconciler command per invocation.
type App struct {
	logger   *slog.Logger
	cfg      *config.Config
	service  reconcileUseCase
	recorder *metrics.CycleRecorder
	signals  signalHandler
	closers  []io.Closer
}

// New creates a new application instance with all dependencies wired.
// Image build progress is written to progress.
func New(
	logger *slog.Logger,
	cfg *config.Config,
	signals <-chan os.Signal,
	progress io.Writer,
) (*App, error) {
	kubeConfig, err := clientcmd.BuildConfigFromFlags(
		cfg.KubeMaster,
		cfg.KubeConfig,
	)
	if err != nil {
		return nil, fmt.Errorf("build k8s config: %w", err)
	}

	clientset, err := kubernetes.NewForConfig(kubeConfig)
	if err != nil {
		return nil, fmt.Errorf("create clientset: %w", err)
	}

	metricsClientset, err := metricsv.NewForConfig(kubeConfig)
	if err != nil {
		return nil, fmt.Errorf("create metrics clientset: %w", err)
	}

	k8sRepo := k8s.New(logger, clientset, metricsClientset)
	connector := prometheus.NewConnector(logger, nil)

	var (
		nodes   reconciler.NodeAddressProvider = k8sRepo
		runtime reconciler.ClusterRuntime
		images  reconciler.ImageStager
		closers []io.Closer
	)

	if cfg.ManageCluster {
		minikubeRuntime := minikube.New(logger, minikube.Options{
			Binary:   cfg.MinikubeBinary,
			Profile:  cfg.MinikubeProfile,
			Driver:   cfg.MinikubeDriver,
			MemoryMB: cfg.MinikubeMemoryMB,
			CPUs:     cfg.MinikubeCPUs,
		}, k8sRepo)
		runtime = minikubeRuntime
		nodes = minikubeRuntime

		if !cfg.SkipImage {
			dockerClient, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
			if err != nil {
				return nil, fmt.Errorf("create docker client: %w", err)
			}

			closers = append(closers, dockerClient)
			images = &imageStager{
				builder: docker.NewBuilder(logger, dockerClient, cfg.BuildContext, cfg.Dockerfile, progress),
				loader:  minikubeRuntime,
			}
		}
	}

	service := reconciler.NewService(
		logger,
		k8sRepo,
		nodes,
		runtime,
		images,
		connector,
		cfg.Options(),
	)

	return newApp(logger, cfg, service, shutdown.New(logger, shutdown.Signals(signals)), closers...), nil
}

func newApp(
	logger *slog.Logger,
	cfg *config.Config,
	service reconcileUseCase,
	signals signalHandler,
	closers ...io.Closer,
) *App {
	return &App{
		logger:   logger,
		cfg:      cfg,
		service:  service,
		recorder: metrics.NewCycleRecorder(),
		signals:  signals,
		closers:  closers,
	}
}

// ReconcileCommand runs one full cycle for the configured workload.
func (a *App) ReconcileCommand(ctx context.Context) (*reconciler.Report, error) {
	var report *reconciler.Report

	err := a.run(ctx, func(ctx context.Context) error {
		var err error

		report, err = a.service.ReconcileCommand(ctx, a.cfg.Workload)
		if err != nil {
			a.recorder.RecordCycle(a.cfg.Workload.Name, metrics.ResultNoConnect, 0)

			return err
		}

		a.recordReport(report)

		return nil
	})

	return report, err
}

// SetupCommand checks the cluster and the monitoring backend and returns the Prometheus URL.
func (a *App) SetupCommand(ctx context.Context) (string, error) {
	var promURL string

	err := a.run(ctx, func(ctx context.Context) error {
		var err error

		_, promURL, err = a.service.SetupCommand(ctx)

		return err
	})

	return promURL, err
}

// StatusQuery checks the workload deployment once.
func (a *App) StatusQuery(ctx context.Context) (reconciler.PollResult, error) {
	var result reconciler.PollResult

	err := a.run(ctx, func(ctx context.Context) error {
		var err error

		result, err = a.service.StatusQuery(ctx, a.cfg.Workload)

		return err
	})

	return result, err
}

// MetricsQuery fetches a fresh cluster metrics snapshot.
func (a *App) MetricsQuery(ctx context.Context) (reconciler.MetricsSnapshot, string, error) {
	var (
		snapshot reconciler.MetricsSnapshot
		promURL  string
	)

	err := a.run(ctx, func(ctx context.Context) error {
		var err error

		snapshot, promURL, err = a.service.MetricsQuery(ctx)
		if err == nil {
			a.recordSnapshot(snapshot)
		}

		return err
	})

	return snapshot, promURL, err
}

// Close releases the engine clients.
func (a *App) Close() error {
	var errs error

	for _, c := range a.closers {
		errs = errors.Join(errs, c.Close())
	}

	return errs
}

// run executes fn under a context cancelled by SIGINT/SIGTERM and pushes the
// cycle metrics afterwards.
func (a *App) run(originCtx context.Context, fn func(ctx context.Context) error) error {
	if err := a.signals.CheckTermination(originCtx); err != nil {
		return fmt.Errorf("check termination: %w", err)
	}

	ctx, cancel := context.WithCancel(originCtx)
	defer cancel()

	go a.signals.HandleSignals(ctx, cancel)

	err := fn(ctx)

	a.push(originCtx)

	return err
}

func (a *App) push(ctx context.Context) {
	if a.cfg.PushgatewayURL == "" {
		return
	}

	pushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), pushTimeout)
	defer cancel()

	if err := a.recorder.Push(pushCtx, a.cfg.PushgatewayURL, pushJob); err != nil {
		a.logger.WarnContext(ctx, "failed to push cycle metrics", "reason", err)

		return
	}

	a.logger.DebugContext(ctx, "cycle metrics pushed", "pushgateway", a.cfg.PushgatewayURL)
}

func (a *App) recordReport(report *reconciler.Report) {
	for _, outcome := range report.Apply.Outcomes {
		a.recorder.RecordApply(report.Workload, outcome.Kind, string(outcome.Action))
	}

	a.recordSnapshot(report.Metrics)
	a.recorder.RecordCycle(report.Workload, cycleResult(report), report.Duration)
}

func (a *App) recordSnapshot(snapshot reconciler.MetricsSnapshot) {
	for _, name := range []reconciler.MetricName{
		reconciler.MetricCPU,
		reconciler.MetricMemory,
		reconciler.MetricDisk,
		reconciler.MetricPods,
	} {
		a.recorder.RecordMetricAvailability(string(name), snapshot.Get(name).Available)
	}
}

func cycleResult(report *reconciler.Report) string {
	switch {
	case report.Status.Converged && report.Apply.OK():
		return metrics.ResultConverged
	case report.Poll != nil && report.Poll.State == reconciler.StateTimedOut:
		return metrics.ResultTimedOut
	default:
		return metrics.ResultFailed
	}
}
