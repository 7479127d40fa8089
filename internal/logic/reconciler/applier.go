package reconciler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// ApplyAction is what applying an object did to the cluster.
type ApplyAction string

const (
	ActionCreated    ApplyAction = "created"
	ActionConfigured ApplyAction = "configured"
	ActionUnchanged  ApplyAction = "unchanged"
	ActionFailed     ApplyAction = "failed"
	ActionSkipped    ApplyAction = "skipped"
)

// Object kinds submitted by the Applier.
const (
	KindDeployment = "Deployment"
	KindService    = "Service"
)

// ObjectOutcome is the apply result of one cluster object.
type ObjectOutcome struct {
	Kind   string
	Name   string
	Action ApplyAction
	Err    error
}

// Applied reports whether the object reached the cluster.
func (o ObjectOutcome) Applied() bool {
	return o.Err == nil
}

// ApplyResult lists per-object outcomes in apply order.
type ApplyResult struct {
	Outcomes []ObjectOutcome
}

// OK reports whether every object was applied.
func (r ApplyResult) OK() bool {
	if len(r.Outcomes) == 0 {
		return false
	}

	for _, o := range r.Outcomes {
		if !o.Applied() {
			return false
		}
	}

	return true
}

// Partial reports whether some but not all objects were applied.
func (r ApplyResult) Partial() bool {
	applied := 0

	for _, o := range r.Outcomes {
		if o.Applied() {
			applied++
		}
	}

	return applied > 0 && applied < len(r.Outcomes)
}

// Outcome returns the outcome of the given kind.
func (r ApplyResult) Outcome(kind string) (ObjectOutcome, bool) {
	for _, o := range r.Outcomes {
		if o.Kind == kind {
			return o, true
		}
	}

	return ObjectOutcome{}, false
}

// Err joins the errors of all failed objects.
func (r ApplyResult) Err() error {
	var errs error

	for _, o := range r.Outcomes {
		if o.Err != nil {
			errs = errors.Join(errs, o.Err)
		}
	}

	return errs
}

// skippedApply marks both objects as not submitted because of cause.
func skippedApply(spec WorkloadSpec, cause error) ApplyResult {
	return ApplyResult{Outcomes: []ObjectOutcome{
		{Kind: KindDeployment, Name: spec.Name, Action: ActionSkipped, Err: cause},
		{Kind: KindService, Name: spec.EffectiveServiceName(), Action: ActionSkipped, Err: cause},
	}}
}

// Applier submits a workload as a deployment and a service.
type Applier struct {
	logger *slog.Logger
	repo   ClusterRepository
}

// NewApplier creates a new manifest applier.
func NewApplier(logger *slog.Logger, repo ClusterRepository) *Applier {
	return &Applier{
		logger: logger,
		repo:   repo,
	}
}

// Apply applies the deployment and then the service. A failure of one object
// does not stop the other; nothing is rolled back.
func (a *Applier) Apply(ctx context.Context, spec WorkloadSpec) ApplyResult {
	logger := a.logger.With("applier", "Apply", "workload", spec.Name, "namespace", spec.Namespace)

	if err := spec.Validate(); err != nil {
		logger.ErrorContext(ctx, "workload spec rejected", "reason", err)

		return ApplyResult{Outcomes: []ObjectOutcome{
			{Kind: KindDeployment, Name: spec.Name, Action: ActionFailed, Err: err},
			{Kind: KindService, Name: spec.EffectiveServiceName(), Action: ActionFailed, Err: err},
		}}
	}

	steps := []struct {
		kind  string
		name  string
		apply func(context.Context, WorkloadSpec) (ApplyAction, error)
	}{
		{KindDeployment, spec.Name, a.repo.ApplyDeploymentCommand},
		{KindService, spec.EffectiveServiceName(), a.repo.ApplyServiceCommand},
	}

	result := ApplyResult{Outcomes: make([]ObjectOutcome, 0, len(steps))}

	for _, step := range steps {
		action, err := step.apply(ctx, spec)
		if err != nil {
			err = fmt.Errorf("%w: %s %s/%s: %w", ErrApply, step.kind, spec.Namespace, step.name, err)
			logger.ErrorContext(ctx, "apply failed", "kind", step.kind, "name", step.name, "reason", err)

			result.Outcomes = append(result.Outcomes, ObjectOutcome{
				Kind:   step.kind,
				Name:   step.name,
				Action: ActionFailed,
				Err:    err,
			})

			continue
		}

		logger.InfoContext(ctx, "object applied", "kind", step.kind, "name", step.name, "action", action)

		result.Outcomes = append(result.Outcomes, ObjectOutcome{
			Kind:   step.kind,
			Name:   step.name,
			Action: action,
		})
	}

	if result.Partial() {
		logger.WarnContext(ctx, "workload partially applied, leaving applied objects in place")
	}

	return result
}
