package reconciler_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/workload-reconciler/internal/logic/reconciler"
)

func TestWorkloadSpec_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*reconciler.WorkloadSpec)
		wantErr bool
	}{
		{name: "valid", mutate: func(*reconciler.WorkloadSpec) {}},
		{name: "empty name", mutate: func(w *reconciler.WorkloadSpec) { w.Name = "" }, wantErr: true},
		{name: "empty namespace", mutate: func(w *reconciler.WorkloadSpec) { w.Namespace = "" }, wantErr: true},
		{name: "empty image", mutate: func(w *reconciler.WorkloadSpec) { w.Image = "" }, wantErr: true},
		{name: "zero replicas", mutate: func(w *reconciler.WorkloadSpec) { w.Replicas = 0 }, wantErr: true},
		{name: "port out of range", mutate: func(w *reconciler.WorkloadSpec) { w.ContainerPort = 70000 }, wantErr: true},
		{name: "unknown pull policy", mutate: func(w *reconciler.WorkloadSpec) { w.ImagePullPolicy = "Sometimes" }, wantErr: true},
		{name: "bad cpu limit", mutate: func(w *reconciler.WorkloadSpec) { w.Resources.Limits.CPU = "lots" }, wantErr: true},
		{name: "empty resources allowed", mutate: func(w *reconciler.WorkloadSpec) { w.Resources = reconciler.Resources{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			spec := testSpec("app", 1)
			tt.mutate(&spec)

			err := spec.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, reconciler.ErrInvalidWorkloadSpec)

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestWorkloadSpec_Defaults(t *testing.T) {
	t.Parallel()

	spec := reconciler.WorkloadSpec{Name: "app", ContainerPort: 5000}

	require.Equal(t, "app", spec.EffectiveServiceName())
	require.Equal(t, int32(5000), spec.EffectiveServicePort())
	require.Equal(t, "app=app", spec.Selector())
}

func TestNewDeploymentStatus(t *testing.T) {
	t.Parallel()

	require.True(t, reconciler.NewDeploymentStatus("app", 2, 2).Converged)
	require.False(t, reconciler.NewDeploymentStatus("app", 2, 1).Converged)
	require.False(t, reconciler.NewDeploymentStatus("app", 1, 2).Converged)
}

func TestMetricsSnapshot_JSON(t *testing.T) {
	t.Parallel()

	snapshot := reconciler.MetricsSnapshot{
		reconciler.MetricCPU:    reconciler.AvailableValue(42.1),
		reconciler.MetricMemory: reconciler.UnavailableValue(reconciler.ErrQueryFailed),
		reconciler.MetricDisk:   reconciler.AvailableValue(0),
		reconciler.MetricPods:   reconciler.AvailableValue(3),
	}

	data, err := json.Marshal(snapshot)
	require.NoError(t, err)
	require.JSONEq(t, `{"cpu":42.1,"memory":"unavailable","disk":0,"pods":3}`, string(data))
}

func TestMetricValue_MarshalNonFinite(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		data, err := json.Marshal(reconciler.AvailableValue(v))
		require.NoError(t, err)
		require.JSONEq(t, `"unavailable"`, string(data))
	}
}

func TestServiceEndpoint_URL(t *testing.T) {
	t.Parallel()

	require.Equal(t, "http://192.168.49.2:30080",
		reconciler.ServiceEndpoint{Host: "192.168.49.2", Port: 30080}.URL())
	require.Equal(t, "https://[fd00::1]:443",
		reconciler.ServiceEndpoint{Scheme: "https", Host: "fd00::1", Port: 443}.URL())
}
