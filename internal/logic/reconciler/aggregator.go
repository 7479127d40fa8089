package reconciler

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

type metricQuery struct {
	name   MetricName
	expr   string
	reduce func([]Sample) float64
}

// Aggregator assembles a MetricsSnapshot from independent instant queries.
type Aggregator struct {
	logger       *slog.Logger
	queries      []metricQuery
	queryTimeout time.Duration
}

// NewAggregator creates a new metrics aggregator. Pods are counted in podNamespace
// when they are in podPhase.
func NewAggregator(
	logger *slog.Logger,
	podNamespace,
	podPhase string,
	queryTimeout time.Duration,
) *Aggregator {
	if podNamespace == "" {
		podNamespace = DefaultMonitoringNamespace
	}

	if podPhase == "" {
		podPhase = DefaultPodPhase
	}

	if queryTimeout <= 0 {
		queryTimeout = DefaultQueryTimeout
	}

	return &Aggregator{
		logger: logger,
		queries: []metricQuery{
			{name: MetricCPU, expr: queryCPU, reduce: firstValue},
			{name: MetricMemory, expr: queryMemory, reduce: firstValue},
			{name: MetricDisk, expr: queryDisk, reduce: firstValue},
			{name: MetricPods, expr: fmt.Sprintf(queryPodsFormat, podNamespace, podPhase), reduce: countActive},
		},
		queryTimeout: queryTimeout,
	}
}

// Aggregate runs every query with its own timeout. A failed or empty query only
// marks its own field unavailable. The snapshot always holds all four names.
func (a *Aggregator) Aggregate(ctx context.Context, repo MonitoringRepository) MetricsSnapshot {
	logger := a.logger.With("aggregator", "Aggregate")

	var (
		mu       sync.Mutex
		snapshot = make(MetricsSnapshot, len(a.queries))
		group    errgroup.Group
	)

	for _, q := range a.queries {
		group.Go(func() error {
			value := a.evaluate(ctx, repo, q)

			if !value.Available {
				logger.WarnContext(ctx, "metric unavailable", "metric", q.name, "reason", value.Err)
			}

			mu.Lock()
			snapshot[q.name] = value
			mu.Unlock()

			return nil
		})
	}

	_ = group.Wait()

	logger.DebugContext(ctx, "metrics aggregated", "available", snapshot.AvailableCount())

	return snapshot
}

func (a *Aggregator) evaluate(ctx context.Context, repo MonitoringRepository, q metricQuery) MetricValue {
	if repo == nil {
		return UnavailableValue(fmt.Errorf("%w: monitoring backend not connected", ErrQueryFailed))
	}

	queryCtx, cancel := context.WithTimeout(ctx, a.queryTimeout)
	defer cancel()

	samples, err := repo.InstantQuery(queryCtx, q.expr)
	if err != nil {
		return UnavailableValue(fmt.Errorf("%w: %s: %w", ErrQueryFailed, q.name, err))
	}

	if len(samples) == 0 {
		return UnavailableValue(fmt.Errorf("%w: %s", ErrNoData, q.name))
	}

	v := q.reduce(samples)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return UnavailableValue(fmt.Errorf("%w: %s: non-finite value", ErrNoData, q.name))
	}

	return AvailableValue(v)
}

func firstValue(samples []Sample) float64 {
	return samples[0].Value
}

// countActive counts kube_pod_status_phase series flagged with 1.
func countActive(samples []Sample) float64 {
	n := 0

	for _, s := range samples {
		if s.Value == 1 {
			n++
		}
	}

	return float64(n)
}
