package app

import (
	"context"

	"github.com/skillcoder/workload-reconciler/internal/logic/reconciler"
)

// reconcileUseCase is the reconciliation pipeline driven by the CLI commands.
type reconcileUseCase interface {
	SetupCommand(ctx context.Context) (reconciler.MonitoringRepository, string, error)
	ReconcileCommand(ctx context.Context, spec reconciler.WorkloadSpec) (*reconciler.Report, error)
	StatusQuery(ctx context.Context, spec reconciler.WorkloadSpec) (reconciler.PollResult, error)
	MetricsQuery(ctx context.Context) (reconciler.MetricsSnapshot, string, error)
}

type signalHandler interface {
	HandleSignals(ctx context.Context, cancel func())
	CheckTermination(ctx context.Context) error
}

type appServer interface {
	Name() string
	Start(ctx context.Context) error
	Ready() <-chan struct{}
	Shutdown(ctx context.Context) error
}
