package reconciler

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Options tune the reconciliation pipeline. Zero values fall back to defaults.
type Options struct {
	PollAttempts        int
	PollInterval        time.Duration
	QueryTimeout        time.Duration
	FallbackNodeAddress string

	MonitoringNamespace   string
	PrometheusSelector    string
	PrometheusURL         string
	PrometheusFallbackURL string
	PodPhase              string

	SkipImage bool
}

// Service sequences one reconciliation cycle.
type Service struct {
	logger     *slog.Logger
	cluster    ClusterRepository
	runtime    ClusterRuntime
	images     ImageStager
	connector  MonitoringConnector
	resolver   *Resolver
	applier    *Applier
	poller     *Poller
	aggregator *Aggregator
	opts       Options
}

// NewService creates a new reconciliation service. runtime and images may be nil
// when the cluster is managed elsewhere and the image is already available.
func NewService(
	logger *slog.Logger,
	cluster ClusterRepository,
	nodes NodeAddressProvider,
	runtime ClusterRuntime,
	images ImageStager,
	connector MonitoringConnector,
	opts Options,
) *Service {
	if opts.PollAttempts == 0 {
		opts.PollAttempts = DefaultPollAttempts
	}

	if opts.PollInterval == 0 {
		opts.PollInterval = DefaultPollInterval
	}

	if opts.MonitoringNamespace == "" {
		opts.MonitoringNamespace = DefaultMonitoringNamespace
	}

	if opts.PrometheusSelector == "" {
		opts.PrometheusSelector = DefaultPrometheusSelector
	}

	if opts.PrometheusFallbackURL == "" {
		opts.PrometheusFallbackURL = DefaultPrometheusFallbackURL
	}

	resolver := NewResolver(logger, cluster, nodes, opts.FallbackNodeAddress)

	return &Service{
		logger:     logger,
		cluster:    cluster,
		runtime:    runtime,
		images:     images,
		connector:  connector,
		resolver:   resolver,
		applier:    NewApplier(logger, cluster),
		poller:     NewPoller(logger, cluster, resolver, opts.PollAttempts, opts.PollInterval),
		aggregator: NewAggregator(logger, opts.MonitoringNamespace, opts.PodPhase, opts.QueryTimeout),
		opts:       opts,
	}
}

// SetupCommand makes sure the cluster and the monitoring backend are reachable.
// Every failure wraps ErrConnectivity.
func (s *Service) SetupCommand(ctx context.Context) (MonitoringRepository, string, error) {
	logger := s.logger.With("reconciler", "SetupCommand")

	if s.runtime != nil {
		if err := s.runtime.EnsureRunningCommand(ctx); err != nil {
			return nil, "", fmt.Errorf("%w: cluster runtime: %w", ErrConnectivity, err)
		}
	}

	if err := s.cluster.PingQuery(ctx); err != nil {
		return nil, "", fmt.Errorf("%w: cluster api: %w", ErrConnectivity, err)
	}

	promURL := s.prometheusURL(ctx)

	monitoring, err := s.connector.Connect(ctx, promURL)
	if err != nil {
		return nil, promURL, fmt.Errorf("%w: prometheus %s: %w", ErrConnectivity, promURL, err)
	}

	logger.InfoContext(ctx, "environment ready", "prometheus", promURL)

	return monitoring, promURL, nil
}

// ReconcileCommand runs one full cycle. The returned error is non-nil only for
// connectivity failures; every other failure is recorded in the report.
func (s *Service) ReconcileCommand(ctx context.Context, spec WorkloadSpec) (*Report, error) {
	id := uuid.NewString()
	logger := s.logger.With("reconciler", "ReconcileCommand", "workload", spec.Name, "cycle", id)
	start := time.Now()

	monitoring, promURL, err := s.SetupCommand(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{
		ID:            id,
		Workload:      spec.Name,
		StartedAt:     start,
		PrometheusURL: promURL,
		Status:        NewDeploymentStatus(spec.Name, spec.Replicas, 0),
	}

	report.Image = s.stageImage(ctx, logger, spec)

	if report.Image != nil && !report.Image.OK() {
		report.Apply = skippedApply(spec, report.Image.Err)
	} else {
		report.Apply = s.applier.Apply(ctx, spec)
	}

	if deployment, ok := report.Apply.Outcome(KindDeployment); ok && deployment.Applied() {
		poll := s.poller.Poll(ctx, spec)

		report.Poll = &poll
		report.Status = poll.Status

		if poll.State == StateConverged {
			report.Endpoint = poll.Status.Endpoint
		}
	} else {
		logger.WarnContext(ctx, "deployment not applied, skipping convergence wait")
	}

	report.Metrics = s.aggregator.Aggregate(ctx, monitoring)

	report.Usage, report.UsageErr = s.cluster.WorkloadUsageQuery(ctx, spec.Namespace, spec.Selector())
	if report.UsageErr != nil {
		logger.DebugContext(ctx, "workload usage unavailable", "reason", report.UsageErr)
	}

	report.Duration = time.Since(start)

	logger.InfoContext(ctx, "reconciliation finished",
		"applied", report.Apply.OK(),
		"converged", report.Status.Converged,
		"metrics", report.Metrics.AvailableCount(),
		"duration", report.Duration,
	)

	return report, nil
}

// StatusQuery checks the deployment once and resolves its endpoint when converged.
func (s *Service) StatusQuery(ctx context.Context, spec WorkloadSpec) (PollResult, error) {
	if err := s.cluster.PingQuery(ctx); err != nil {
		return PollResult{}, fmt.Errorf("%w: cluster api: %w", ErrConnectivity, err)
	}

	return s.poller.WithAttempts(1).Poll(ctx, spec), nil
}

// MetricsQuery connects to the monitoring backend and fetches a fresh snapshot.
func (s *Service) MetricsQuery(ctx context.Context) (MetricsSnapshot, string, error) {
	monitoring, promURL, err := s.SetupCommand(ctx)
	if err != nil {
		return nil, promURL, err
	}

	return s.aggregator.Aggregate(ctx, monitoring), promURL, nil
}

func (s *Service) stageImage(ctx context.Context, logger *slog.Logger, spec WorkloadSpec) *StageResult {
	if s.images == nil || s.opts.SkipImage {
		return nil
	}

	result := &StageResult{Image: spec.Image}

	if err := s.images.BuildImageCommand(ctx, spec.Image); err != nil {
		result.Err = fmt.Errorf("%w: build %s: %w", ErrImageStage, spec.Image, err)
		logger.ErrorContext(ctx, "image build failed", "reason", result.Err)

		return result
	}

	result.Built = true

	if err := s.images.LoadImageCommand(ctx, spec.Image); err != nil {
		result.Err = fmt.Errorf("%w: load %s: %w", ErrImageStage, spec.Image, err)
		logger.ErrorContext(ctx, "image load failed", "reason", result.Err)

		return result
	}

	result.Loaded = true

	logger.InfoContext(ctx, "image staged", "image", spec.Image)

	return result
}

func (s *Service) prometheusURL(ctx context.Context) string {
	if s.opts.PrometheusURL != "" {
		return s.opts.PrometheusURL
	}

	resolution := s.resolver.Resolve(ctx, ResolveRequest{
		Namespace: s.opts.MonitoringNamespace,
		Selector:  s.opts.PrometheusSelector,
		Scheme:    schemeHTTP,
		Fallback:  endpointFromURL(s.opts.PrometheusFallbackURL),
	})

	return resolution.Endpoint.URL()
}

// endpointFromURL converts a fallback URL into an endpoint, defaulting to
// DefaultPrometheusFallbackURL when raw cannot be parsed.
func endpointFromURL(raw string) ServiceEndpoint {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		u, _ = url.Parse(DefaultPrometheusFallbackURL)
	}

	port, err := strconv.ParseInt(u.Port(), 10, 32)
	if err != nil {
		port = 80
		if u.Scheme == "https" {
			port = 443
		}
	}

	return ServiceEndpoint{
		Scheme: u.Scheme,
		Host:   u.Hostname(),
		Port:   int32(port),
	}
}
