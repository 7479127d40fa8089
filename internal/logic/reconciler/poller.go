package reconciler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// PollState is the state of the convergence poller.
type PollState string

const (
	StatePending   PollState = "Pending"
	StateConverged PollState = "Converged"
	StateTimedOut  PollState = "TimedOut"
)

// PollResult is the terminal outcome of Poll.
type PollResult struct {
	State    PollState
	Status   DeploymentStatus
	Attempts int

	// Resolution is set only when State is StateConverged.
	Resolution *Resolution

	// LastErr is the last status query error, or the timeout cause.
	LastErr error
}

type endpointResolver interface {
	Resolve(ctx context.Context, req ResolveRequest) Resolution
}

// Poller waits for a deployment to reach its declared replica count.
type Poller struct {
	logger   *slog.Logger
	repo     ClusterRepository
	resolver endpointResolver
	attempts int
	interval time.Duration
}

// NewPoller creates a new convergence poller. attempts below 1 are raised to 1.
func NewPoller(
	logger *slog.Logger,
	repo ClusterRepository,
	resolver endpointResolver,
	attempts int,
	interval time.Duration,
) *Poller {
	if attempts < 1 {
		attempts = 1
	}

	return &Poller{
		logger:   logger,
		repo:     repo,
		resolver: resolver,
		attempts: attempts,
		interval: interval,
	}
}

// WithAttempts returns a copy of the poller using a different attempt budget.
func (p *Poller) WithAttempts(attempts int) *Poller {
	return NewPoller(p.logger, p.repo, p.resolver, attempts, p.interval)
}

// Poll issues one status query per attempt and blocks for the interval between
// attempts. Query errors count as non-converging attempts.
func (p *Poller) Poll(ctx context.Context, spec WorkloadSpec) PollResult {
	logger := p.logger.With("poller", "Poll", "workload", spec.Name, "namespace", spec.Namespace)

	result := PollResult{
		State:  StatePending,
		Status: NewDeploymentStatus(spec.Name, spec.Replicas, 0),
	}

	for attempt := 1; attempt <= p.attempts; attempt++ {
		result.Attempts = attempt

		declared, ready, err := p.repo.GetDeploymentStatusQuery(ctx, spec.Namespace, spec.Name)
		if err != nil {
			result.LastErr = err

			var nf notFound
			if errors.As(err, &nf) {
				logger.InfoContext(ctx, "deployment not found yet", "attempt", attempt)
			} else {
				logger.WarnContext(ctx, "status query failed",
					"attempt", attempt,
					"reason", err,
				)
			}
		} else {
			result.Status = NewDeploymentStatus(spec.Name, declared, ready)

			logger.DebugContext(ctx, "deployment status",
				"attempt", attempt,
				"ready", ready,
				"declared", declared,
			)

			if result.Status.Converged {
				return p.converge(ctx, logger, spec, result)
			}
		}

		if attempt == p.attempts {
			break
		}

		timer := time.NewTimer(p.interval)

		select {
		case <-ctx.Done():
			timer.Stop()
			logger.InfoContext(ctx, "context done, stopping convergence wait")

			result.State = StateTimedOut
			result.LastErr = fmt.Errorf("%w: %w", ErrConvergenceTimeout, ctx.Err())

			return result
		case <-timer.C:
		}
	}

	result.State = StateTimedOut

	if result.LastErr != nil {
		result.LastErr = fmt.Errorf("%w after %d attempts: %w", ErrConvergenceTimeout, result.Attempts, result.LastErr)
	} else {
		result.LastErr = fmt.Errorf("%w after %d attempts: %d/%d ready",
			ErrConvergenceTimeout, result.Attempts, result.Status.Ready, result.Status.Declared)
	}

	logger.WarnContext(ctx, "deployment did not converge", "reason", result.LastErr)

	return result
}

func (p *Poller) converge(
	ctx context.Context,
	logger *slog.Logger,
	spec WorkloadSpec,
	result PollResult,
) PollResult {
	result.State = StateConverged
	result.LastErr = nil

	resolution := p.resolver.Resolve(ctx, ResolveRequest{
		Name:      spec.EffectiveServiceName(),
		Namespace: spec.Namespace,
		Selector:  spec.Selector(),
		Scheme:    schemeHTTP,
		Fallback: ServiceEndpoint{
			Scheme: schemeHTTP,
			Host:   "localhost",
			Port:   spec.ContainerPort,
		},
	})

	result.Resolution = &resolution
	result.Status.Endpoint = resolution.Endpoint

	logger.InfoContext(ctx, "deployment converged",
		"attempts", result.Attempts,
		"ready", result.Status.Ready,
		"url", resolution.Endpoint.URL(),
		"resolved", resolution.Resolved,
	)

	return result
}
