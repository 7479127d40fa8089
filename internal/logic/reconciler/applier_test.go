package reconciler_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/workload-reconciler/internal/logic/reconciler"
	"github.com/skillcoder/workload-reconciler/internal/logic/reconciler/mocks"
)

func TestApplier_Apply(t *testing.T) {
	t.Parallel()

	logger := slog.Default()
	spec := testSpec("my-docker-app", 1)

	t.Run("both objects applied", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockClusterRepository(t)
		repo.EXPECT().ApplyDeploymentCommand(mock.Anything, spec).Return(reconciler.ActionCreated, nil).Once()
		repo.EXPECT().ApplyServiceCommand(mock.Anything, spec).Return(reconciler.ActionCreated, nil).Once()

		got := reconciler.NewApplier(logger, repo).Apply(t.Context(), spec)

		require.True(t, got.OK())
		require.False(t, got.Partial())
		require.NoError(t, got.Err())
		require.Len(t, got.Outcomes, 2)
		require.Equal(t, reconciler.KindDeployment, got.Outcomes[0].Kind)
		require.Equal(t, reconciler.KindService, got.Outcomes[1].Kind)
		require.Equal(t, "my-docker-app-service", got.Outcomes[1].Name)
	})

	t.Run("service failure is reported as partial", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockClusterRepository(t)
		repo.EXPECT().ApplyDeploymentCommand(mock.Anything, spec).Return(reconciler.ActionConfigured, nil).Once()
		repo.EXPECT().
			ApplyServiceCommand(mock.Anything, spec).
			Return("", errors.New("provided port is already allocated")).
			Once()

		got := reconciler.NewApplier(logger, repo).Apply(t.Context(), spec)

		require.False(t, got.OK())
		require.True(t, got.Partial())

		deployment, ok := got.Outcome(reconciler.KindDeployment)
		require.True(t, ok)
		require.True(t, deployment.Applied())
		require.Equal(t, reconciler.ActionConfigured, deployment.Action)

		service, ok := got.Outcome(reconciler.KindService)
		require.True(t, ok)
		require.False(t, service.Applied())
		require.Equal(t, reconciler.ActionFailed, service.Action)
		require.ErrorIs(t, service.Err, reconciler.ErrApply)
	})

	t.Run("deployment failure still applies service", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockClusterRepository(t)
		repo.EXPECT().
			ApplyDeploymentCommand(mock.Anything, spec).
			Return("", errors.New("admission webhook denied the request")).
			Once()
		repo.EXPECT().ApplyServiceCommand(mock.Anything, spec).Return(reconciler.ActionUnchanged, nil).Once()

		got := reconciler.NewApplier(logger, repo).Apply(t.Context(), spec)

		require.True(t, got.Partial())
		require.ErrorIs(t, got.Err(), reconciler.ErrApply)
	})

	t.Run("invalid spec is rejected without cluster calls", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockClusterRepository(t)
		invalid := spec
		invalid.Replicas = 0

		got := reconciler.NewApplier(logger, repo).Apply(t.Context(), invalid)

		require.False(t, got.OK())
		require.False(t, got.Partial())

		for _, o := range got.Outcomes {
			require.ErrorIs(t, o.Err, reconciler.ErrInvalidWorkloadSpec)
			require.Equal(t, reconciler.ActionFailed, o.Action)
		}
	})
}
