package metrics

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

const namespace = "workload_reconciler"

// Cycle outcomes used as the result label.
const (
	ResultConverged = "converged"
	ResultTimedOut  = "timed_out"
	ResultFailed    = "failed"
	ResultNoConnect = "connectivity_error"
)

// CycleRecorder holds the metrics of reconciliation cycles on its own registry,
// so one-shot runs can push exactly these series to a Pushgateway.
type CycleRecorder struct {
	registry *prometheus.Registry

	cyclesTotal       *prometheus.CounterVec
	applyTotal        *prometheus.CounterVec
	cycleDuration     *prometheus.GaugeVec
	metricAvailable   *prometheus.GaugeVec
	lastCycleUnixTime *prometheus.GaugeVec
}

func NewCycleRecorder() *CycleRecorder {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &CycleRecorder{
		registry: registry,
		cyclesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cycles_total",
				Help:      "Total number of reconciliation cycles by workload and result.",
			},
			[]string{"workload", "result"},
		),
		applyTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "apply_total",
				Help:      "Total number of object applies by kind and action.",
			},
			[]string{"workload", "kind", "action"},
		),
		cycleDuration: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "cycle_duration_seconds",
				Help:      "Duration of the last reconciliation cycle.",
			},
			[]string{"workload"},
		),
		metricAvailable: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "metric_available",
				Help:      "1 when the cluster metric was available in the last snapshot, 0 otherwise.",
			},
			[]string{"metric"},
		),
		lastCycleUnixTime: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_cycle_timestamp_seconds",
				Help:      "Unix time of the last finished reconciliation cycle.",
			},
			[]string{"workload"},
		),
	}
}

// Gatherer exposes the recorder registry.
func (r *CycleRecorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// RecordCycle counts a finished cycle.
func (r *CycleRecorder) RecordCycle(workload, result string, duration time.Duration) {
	r.cyclesTotal.WithLabelValues(workload, result).Inc()
	r.cycleDuration.WithLabelValues(workload).Set(duration.Seconds())
	r.lastCycleUnixTime.WithLabelValues(workload).SetToCurrentTime()
}

// RecordApply counts one object apply.
func (r *CycleRecorder) RecordApply(workload, kind, action string) {
	r.applyTotal.WithLabelValues(workload, kind, action).Inc()
}

// RecordMetricAvailability tracks whether a snapshot field carried a value.
func (r *CycleRecorder) RecordMetricAvailability(metric string, available bool) {
	value := 0.0
	if available {
		value = 1
	}

	r.metricAvailable.WithLabelValues(metric).Set(value)
}

// Push replaces the job's series on the Pushgateway at url with the recorder registry.
func (r *CycleRecorder) Push(ctx context.Context, url, job string) error {
	if err := push.New(url, job).Gatherer(r.registry).PushContext(ctx); err != nil {
		return fmt.Errorf("push metrics to %s: %w", url, err)
	}

	return nil
}

// HTTPMetrics counts requests served by the sample workload.
type HTTPMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	factory := promauto.With(reg)

	return &HTTPMetrics{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sample_app_http_requests_total",
				Help: "Total number of HTTP requests by route, method and status code.",
			},
			[]string{"route", "method", "code"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sample_app_http_request_duration_seconds",
				Help:    "HTTP request latency by route.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
	}
}

// Observe records one served request.
func (m *HTTPMetrics) Observe(route, method string, code int, duration time.Duration) {
	m.requestsTotal.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(duration.Seconds())
}
