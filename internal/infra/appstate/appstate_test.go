package appstate_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/workload-reconciler/internal/infra/appstate"
	"github.com/skillcoder/workload-reconciler/internal/infra/pinger"
)

type stubShutdowner struct {
	name string
	err  error
	done bool
}

func (s *stubShutdowner) Name() string { return s.name }

func (s *stubShutdowner) Shutdown(_ context.Context) error {
	s.done = true

	return s.err
}

func newState(startTime time.Time) *appstate.AppState {
	return appstate.New(slog.Default(), startTime, make(chan os.Signal, 1), time.Second, nil)
}

func TestAppState_StateTransitions(t *testing.T) {
	t.Parallel()

	t.Run("init to starting", func(t *testing.T) {
		t.Parallel()

		s := newState(time.Now())
		require.NoError(t, s.SetStarting(t.Context()))
		require.Equal(t, appstate.StateStarting, s.GetState())
	})

	t.Run("starting to running", func(t *testing.T) {
		t.Parallel()

		s := newState(time.Now())
		require.NoError(t, s.SetStarting(t.Context()))
		require.NoError(t, s.SetRunning(t.Context()))
		require.Equal(t, appstate.StateRunning, s.GetState())
	})

	t.Run("running to terminating", func(t *testing.T) {
		t.Parallel()

		s := newState(time.Now())
		require.NoError(t, s.SetStarting(t.Context()))
		require.NoError(t, s.SetRunning(t.Context()))
		require.NoError(t, s.SetTerminating(t.Context()))
		require.Equal(t, appstate.StateTerminating, s.GetState())
		require.False(t, s.IsHealthy())
	})

	t.Run("invalid: init to running", func(t *testing.T) {
		t.Parallel()

		s := newState(time.Now())
		err := s.SetRunning(t.Context())
		require.ErrorIs(t, err, appstate.ErrInvalidStateTransition)
		require.Equal(t, appstate.StateInit, s.GetState())
	})

	t.Run("invalid: terminated cannot change", func(t *testing.T) {
		t.Parallel()

		s := newState(time.Now())
		require.NoError(t, s.SetStarting(t.Context()))
		require.NoError(t, s.SetRunning(t.Context()))
		require.NoError(t, s.Shutdown(t.Context()))
		require.Equal(t, appstate.StateTerminated, s.GetState())

		require.Error(t, s.SetStarting(t.Context()))
		require.ErrorIs(t, s.SetTerminating(t.Context()), appstate.ErrAlreadyTerminated)
		require.Equal(t, appstate.StateTerminated, s.GetState())
	})
}

func TestAppState_QueryMethods(t *testing.T) {
	t.Parallel()

	startTime := time.Now()
	s := newState(startTime)

	require.Equal(t, appstate.StateInit, s.GetState())
	require.Equal(t, startTime, s.GetStartTime())
	require.False(t, s.IsHealthy())
	require.False(t, s.IsReady())

	require.NoError(t, s.SetStarting(t.Context()))
	require.False(t, s.IsReady())

	require.NoError(t, s.SetRunning(t.Context()))
	require.True(t, s.IsHealthy())
	require.True(t, s.IsReady())
}

type flakyPinger struct {
	err error
}

func (p *flakyPinger) Name() string { return "procfs" }

func (p *flakyPinger) Ping(_ context.Context) error { return p.err }

func TestAppState_ReadinessFollowsPinger(t *testing.T) {
	t.Parallel()

	pingers := pinger.New(slog.Default(), time.Hour, 0)
	s := appstate.New(slog.Default(), time.Now(), make(chan os.Signal, 1), time.Second, pingers)

	require.NoError(t, s.RegisterPinger(&flakyPinger{err: errors.New("unreadable")}))
	require.NoError(t, s.SetStarting(t.Context()))
	require.NoError(t, s.SetRunning(t.Context()))
	require.False(t, s.IsReady(), "no ping round yet")

	require.NoError(t, pingers.Start(t.Context()))
	<-pingers.Ready()

	require.True(t, s.IsHealthy())
	require.False(t, s.IsReady())
	require.Equal(t, "unreadable", s.GetProbeResults()["procfs"].LastError)
}

func TestAppState_RegisterPingerWithoutService(t *testing.T) {
	t.Parallel()

	s := newState(time.Now())

	require.ErrorIs(t, s.RegisterPinger(&flakyPinger{}), appstate.ErrNoPinger)
	require.Nil(t, s.GetProbeResults())
}

func TestAppState_GetUptime(t *testing.T) {
	t.Parallel()

	s := newState(time.Now().Add(-time.Minute))

	require.GreaterOrEqual(t, s.GetUptime(), time.Minute)
}

func TestAppState_Shutdown(t *testing.T) {
	t.Parallel()

	t.Run("stops components and is idempotent", func(t *testing.T) {
		t.Parallel()

		s := newState(time.Now())
		http := &stubShutdowner{name: "http-server"}
		metrics := &stubShutdowner{name: "metrics-server"}
		s.RegisterShutdowner(http)
		s.RegisterShutdowner(metrics)

		require.NoError(t, s.SetStarting(t.Context()))
		require.NoError(t, s.SetRunning(t.Context()))

		require.NoError(t, s.Shutdown(t.Context()))
		require.Equal(t, appstate.StateTerminated, s.GetState())
		require.True(t, http.done)
		require.True(t, metrics.done)

		require.NoError(t, s.Shutdown(t.Context()))
		require.Equal(t, appstate.StateTerminated, s.GetState())
	})

	t.Run("component error still terminates", func(t *testing.T) {
		t.Parallel()

		errStuck := errors.New("stuck")
		s := newState(time.Now())
		s.RegisterShutdowner(&stubShutdowner{name: "http-server", err: errStuck})

		err := s.Shutdown(t.Context())
		require.ErrorIs(t, err, errStuck)
		require.Equal(t, appstate.StateTerminated, s.GetState())
	})
}
