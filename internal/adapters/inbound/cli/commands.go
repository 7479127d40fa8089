package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/skillcoder/workload-reconciler/internal/config"
	"github.com/skillcoder/workload-reconciler/internal/infra/logging"
	"github.com/skillcoder/workload-reconciler/internal/logic/reconciler"
)

// Application is the wired reconciler driven by the commands.
type Application interface {
	ReconcileCommand(ctx context.Context) (*reconciler.Report, error)
	SetupCommand(ctx context.Context) (string, error)
	StatusQuery(ctx context.Context) (reconciler.PollResult, error)
	MetricsQuery(ctx context.Context) (reconciler.MetricsSnapshot, string, error)
	Close() error
}

// AppFactory builds the application once the configuration is loaded.
type AppFactory func(logger *slog.Logger, cfg *config.Config) (Application, error)

type session struct {
	factory AppFactory
	stdout  io.Writer
	stderr  io.Writer
	cfg     *config.Config
	logger  *slog.Logger
}

// NewRootCmd creates the workload-reconciler command tree. Results go to
// stdout, logs and build progress to stderr.
func NewRootCmd(factory AppFactory, stdout, stderr io.Writer) *cobra.Command {
	s := &session{
		factory: factory,
		stdout:  stdout,
		stderr:  stderr,
	}

	root := &cobra.Command{
		Use:           "workload-reconciler",
		Short:         "Deploy a workload to a local cluster and verify it converges",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.load(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		s.reconcileCmd(),
		s.setupCmd(),
		s.statusCmd(),
		s.metricsCmd(),
	)

	return root
}

func (s *session) load(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	s.cfg = cfg
	s.logger = logging.New(s.stderr, cfg.LogFormat, cfg.LogLevel)

	return nil
}

func (s *session) reconcileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Run one cycle: set up, apply, wait for convergence, report metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.withApp(cmd.Context(), func(ctx context.Context, a Application, r *Renderer) error {
				report, err := a.ReconcileCommand(ctx)
				if err != nil {
					return fmt.Errorf("reconcile: %w", err)
				}

				if err := r.Report(report); err != nil {
					return err
				}

				if !report.Apply.OK() || !report.Status.Converged {
					return fmt.Errorf("%w: %s", errCycleIncomplete, report.Workload)
				}

				return nil
			})
		},
	}
}

func (s *session) setupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Make sure the cluster and Prometheus are reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.withApp(cmd.Context(), func(ctx context.Context, a Application, r *Renderer) error {
				promURL, err := a.SetupCommand(ctx)
				if err != nil {
					return fmt.Errorf("setup: %w", err)
				}

				return r.Setup(promURL)
			})
		},
	}
}

func (s *session) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check the workload deployment once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.withApp(cmd.Context(), func(ctx context.Context, a Application, r *Renderer) error {
				result, err := a.StatusQuery(ctx)
				if err != nil {
					return fmt.Errorf("status: %w", err)
				}

				if err := r.Status(result); err != nil {
					return err
				}

				if result.State != reconciler.StateConverged {
					return fmt.Errorf("%w: %s", errNotConverged, result.Status.Name)
				}

				return nil
			})
		},
	}
}

func (s *session) metricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Fetch cluster utilization from Prometheus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.withApp(cmd.Context(), func(ctx context.Context, a Application, r *Renderer) error {
				snapshot, promURL, err := a.MetricsQuery(ctx)
				if err != nil {
					return fmt.Errorf("metrics: %w", err)
				}

				return r.Metrics(snapshot, promURL)
			})
		},
	}
}

func (s *session) withApp(
	ctx context.Context,
	fn func(ctx context.Context, a Application, r *Renderer) error,
) error {
	application, err := s.factory(s.logger, s.cfg)
	if err != nil {
		return fmt.Errorf("new application: %w", err)
	}

	defer func() {
		if err := application.Close(); err != nil {
			s.logger.WarnContext(ctx, "failed to close application", "reason", err)
		}
	}()

	return fn(ctx, application, NewRenderer(s.stdout, s.cfg.Output))
}
