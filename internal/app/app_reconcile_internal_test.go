package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/workload-reconciler/internal/config"
	"github.com/skillcoder/workload-reconciler/internal/infra/metrics"
	"github.com/skillcoder/workload-reconciler/internal/infra/shutdown"
	"github.com/skillcoder/workload-reconciler/internal/logic/reconciler"
)

var errClose = errors.New("close failed")

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}

func testConfig() *config.Config {
	return &config.Config{
		Workload: config.DefaultWorkload(),
	}
}

func passingSignals(t *testing.T) *mocksignalHandler {
	t.Helper()

	signals := newMocksignalHandler(t)
	signals.EXPECT().CheckTermination(mock.Anything).Return(nil)
	signals.EXPECT().HandleSignals(mock.Anything, mock.Anything).Return().Maybe()

	return signals
}

func convergedReport(workload string) *reconciler.Report {
	return &reconciler.Report{
		Workload: workload,
		Duration: 2 * time.Second,
		Apply: reconciler.ApplyResult{Outcomes: []reconciler.ObjectOutcome{
			{Kind: reconciler.KindDeployment, Name: workload, Action: reconciler.ActionCreated},
			{Kind: reconciler.KindService, Name: "my-docker-service", Action: reconciler.ActionUnchanged},
		}},
		Poll:   &reconciler.PollResult{State: reconciler.StateConverged},
		Status: reconciler.NewDeploymentStatus(workload, 1, 1),
		Metrics: reconciler.MetricsSnapshot{
			reconciler.MetricCPU:    reconciler.AvailableValue(12),
			reconciler.MetricMemory: reconciler.AvailableValue(40),
			reconciler.MetricDisk:   reconciler.UnavailableValue(reconciler.ErrNoData),
			reconciler.MetricPods:   reconciler.AvailableValue(3),
		},
	}
}

func TestApp_ReconcileCommand(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	service := newMockreconcileUseCase(t)
	service.EXPECT().ReconcileCommand(mock.Anything, cfg.Workload).Return(convergedReport(cfg.Workload.Name), nil).Once()

	a := newApp(slog.Default(), cfg, service, passingSignals(t))

	report, err := a.ReconcileCommand(t.Context())
	require.NoError(t, err)
	require.True(t, report.Status.Converged)

	expected := `
# HELP workload_reconciler_apply_total Total number of object applies by kind and action.
# TYPE workload_reconciler_apply_total counter
workload_reconciler_apply_total{action="created",kind="Deployment",workload="my-docker-app"} 1
workload_reconciler_apply_total{action="unchanged",kind="Service",workload="my-docker-app"} 1
# HELP workload_reconciler_cycles_total Total number of reconciliation cycles by workload and result.
# TYPE workload_reconciler_cycles_total counter
workload_reconciler_cycles_total{result="converged",workload="my-docker-app"} 1
# HELP workload_reconciler_metric_available 1 when the cluster metric was available in the last snapshot, 0 otherwise.
# TYPE workload_reconciler_metric_available gauge
workload_reconciler_metric_available{metric="cpu"} 1
workload_reconciler_metric_available{metric="disk"} 0
workload_reconciler_metric_available{metric="memory"} 1
workload_reconciler_metric_available{metric="pods"} 1
`
	require.NoError(t, testutil.GatherAndCompare(a.recorder.Gatherer(), strings.NewReader(expected),
		"workload_reconciler_apply_total",
		"workload_reconciler_cycles_total",
		"workload_reconciler_metric_available",
	))
}

func TestApp_ReconcileCommand_Connectivity(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	service := newMockreconcileUseCase(t)
	service.EXPECT().ReconcileCommand(mock.Anything, cfg.Workload).Return(nil, reconciler.ErrConnectivity).Once()

	a := newApp(slog.Default(), cfg, service, passingSignals(t))

	report, err := a.ReconcileCommand(t.Context())
	require.ErrorIs(t, err, reconciler.ErrConnectivity)
	require.Nil(t, report)

	expected := `
# HELP workload_reconciler_cycles_total Total number of reconciliation cycles by workload and result.
# TYPE workload_reconciler_cycles_total counter
workload_reconciler_cycles_total{result="connectivity_error",workload="my-docker-app"} 1
`
	require.NoError(t, testutil.GatherAndCompare(a.recorder.Gatherer(), strings.NewReader(expected),
		"workload_reconciler_cycles_total",
	))
}

func TestApp_TerminatedBeforeStartup(t *testing.T) {
	t.Parallel()

	signals := newMocksignalHandler(t)
	signals.EXPECT().CheckTermination(mock.Anything).Return(shutdown.ErrTerminatedBeforeStartup)

	// no expectations: the service must not be called
	a := newApp(slog.Default(), testConfig(), newMockreconcileUseCase(t), signals)

	_, err := a.ReconcileCommand(t.Context())
	require.ErrorIs(t, err, shutdown.ErrTerminatedBeforeStartup)

	_, err = a.SetupCommand(t.Context())
	require.ErrorIs(t, err, shutdown.ErrTerminatedBeforeStartup)
}

func TestApp_Queries(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	snapshot := reconciler.MetricsSnapshot{reconciler.MetricPods: reconciler.AvailableValue(2)}

	service := newMockreconcileUseCase(t)
	service.EXPECT().SetupCommand(mock.Anything).Return(nil, "http://192.168.49.2:30090", nil).Once()
	service.EXPECT().StatusQuery(mock.Anything, cfg.Workload).
		Return(reconciler.PollResult{State: reconciler.StatePending, Attempts: 1}, nil).Once()
	service.EXPECT().MetricsQuery(mock.Anything).Return(snapshot, "http://192.168.49.2:30090", nil).Once()

	a := newApp(slog.Default(), cfg, service, passingSignals(t))

	promURL, err := a.SetupCommand(t.Context())
	require.NoError(t, err)
	require.Equal(t, "http://192.168.49.2:30090", promURL)

	status, err := a.StatusQuery(t.Context())
	require.NoError(t, err)
	require.Equal(t, reconciler.StatePending, status.State)

	got, promURL, err := a.MetricsQuery(t.Context())
	require.NoError(t, err)
	require.Equal(t, snapshot, got)
	require.Equal(t, "http://192.168.49.2:30090", promURL)

	expected := `
# HELP workload_reconciler_metric_available 1 when the cluster metric was available in the last snapshot, 0 otherwise.
# TYPE workload_reconciler_metric_available gauge
workload_reconciler_metric_available{metric="cpu"} 0
workload_reconciler_metric_available{metric="disk"} 0
workload_reconciler_metric_available{metric="memory"} 0
workload_reconciler_metric_available{metric="pods"} 1
`
	require.NoError(t, testutil.GatherAndCompare(a.recorder.Gatherer(), strings.NewReader(expected),
		"workload_reconciler_metric_available",
	))
}

func TestApp_PushesCycleMetrics(t *testing.T) {
	t.Parallel()

	var pushes atomic.Int32

	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut && r.URL.Path == "/metrics/job/"+pushJob {
			pushes.Add(1)
		}

		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(gateway.Close)

	cfg := testConfig()
	cfg.PushgatewayURL = gateway.URL

	service := newMockreconcileUseCase(t)
	service.EXPECT().ReconcileCommand(mock.Anything, cfg.Workload).Return(convergedReport(cfg.Workload.Name), nil).Once()

	a := newApp(slog.Default(), cfg, service, passingSignals(t))

	_, err := a.ReconcileCommand(t.Context())
	require.NoError(t, err)
	require.EqualValues(t, 1, pushes.Load())
}

func TestApp_Close(t *testing.T) {
	t.Parallel()

	closed := 0
	ok := closerFunc(func() error {
		closed++

		return nil
	})
	failing := closerFunc(func() error {
		closed++

		return errClose
	})

	a := newApp(slog.Default(), testConfig(), newMockreconcileUseCase(t), newMocksignalHandler(t), ok, failing)

	require.ErrorIs(t, a.Close(), errClose)
	require.Equal(t, 2, closed)
}

func TestCycleResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		report func() *reconciler.Report
		want   string
	}{
		{
			name:   "converged",
			report: func() *reconciler.Report { return convergedReport("web") },
			want:   metrics.ResultConverged,
		},
		{
			name: "timed out",
			report: func() *reconciler.Report {
				r := convergedReport("web")
				r.Poll = &reconciler.PollResult{State: reconciler.StateTimedOut}
				r.Status = reconciler.NewDeploymentStatus("web", 2, 1)

				return r
			},
			want: metrics.ResultTimedOut,
		},
		{
			name: "apply failed",
			report: func() *reconciler.Report {
				r := convergedReport("web")
				r.Apply.Outcomes[1].Action = reconciler.ActionFailed
				r.Apply.Outcomes[1].Err = errClose

				return r
			},
			want: metrics.ResultFailed,
		},
		{
			name: "not polled",
			report: func() *reconciler.Report {
				r := convergedReport("web")
				r.Poll = nil
				r.Status = reconciler.NewDeploymentStatus("web", 1, 0)

				return r
			},
			want: metrics.ResultFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, cycleResult(tt.report()))
		})
	}
}

func TestImageStager(t *testing.T) {
	t.Parallel()

	var calls []string

	stager := &imageStager{
		builder: stageFunc(func(_ context.Context, image string) error {
			calls = append(calls, "build "+image)

			return nil
		}),
		loader: stageFunc(func(_ context.Context, image string) error {
			calls = append(calls, "load "+image)

			return nil
		}),
	}

	require.NoError(t, stager.BuildImageCommand(t.Context(), "web:latest"))
	require.NoError(t, stager.LoadImageCommand(t.Context(), "web:latest"))
	require.Equal(t, []string{"build web:latest", "load web:latest"}, calls)
}

type stageFunc func(ctx context.Context, image string) error

func (f stageFunc) BuildImageCommand(ctx context.Context, image string) error {
	return f(ctx, image)
}

func (f stageFunc) LoadImageCommand(ctx context.Context, image string) error {
	return f(ctx, image)
}
