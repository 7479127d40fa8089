package reconciler

import (
	"context"
	"fmt"
	"log/slog"
)

// ResolveReason explains the outcome of an endpoint resolution.
type ResolveReason string

const (
	ReasonResolved       ResolveReason = "resolved"
	ReasonInvalidRequest ResolveReason = "invalid request"
	ReasonNoService      ResolveReason = "no matching service"
	ReasonNoNodePort     ResolveReason = "no node port assigned"
	ReasonLookupFailed   ResolveReason = "service lookup failed"
)

// ResolveRequest selects the service to resolve. Fallback is returned,
// marked as such, when the service cannot be resolved.
type ResolveRequest struct {
	Name      string
	Namespace string
	Selector  string
	Scheme    string
	Fallback  ServiceEndpoint
}

// Resolution is the advisory result of Resolve. Endpoint is never nil.
type Resolution struct {
	Endpoint *ServiceEndpoint
	Resolved bool
	Reason   ResolveReason
	Err      error
}

// Resolver discovers node-port endpoints of cluster services.
type Resolver struct {
	logger              *slog.Logger
	repo                ClusterRepository
	nodes               NodeAddressProvider
	fallbackNodeAddress string
}

// NewResolver creates a new endpoint resolver.
func NewResolver(
	logger *slog.Logger,
	repo ClusterRepository,
	nodes NodeAddressProvider,
	fallbackNodeAddress string,
) *Resolver {
	if fallbackNodeAddress == "" {
		fallbackNodeAddress = DefaultFallbackNodeAddress
	}

	return &Resolver{
		logger:              logger,
		repo:                repo,
		nodes:               nodes,
		fallbackNodeAddress: fallbackNodeAddress,
	}
}

// Resolve never fails: lookup problems turn into an unresolved result carrying
// the request fallback.
func (r *Resolver) Resolve(ctx context.Context, req ResolveRequest) Resolution {
	logger := r.logger.With(
		"resolver", "Resolve",
		"namespace", req.Namespace,
		"selector", req.Selector,
		"service", req.Name,
	)

	if req.Namespace == "" {
		return unresolved(req, ReasonInvalidRequest, fmt.Errorf("%w: namespace is empty", ErrResolutionUnresolved))
	}

	services, err := r.repo.ListServicesQuery(ctx, req.Namespace, req.Selector)
	if err != nil {
		logger.WarnContext(ctx, "list services failed, using fallback", "reason", err)

		return unresolved(req, ReasonLookupFailed, fmt.Errorf("%w: %w", ErrResolutionUnresolved, err))
	}

	svc, ok := pickService(services, req.Name)
	if !ok {
		logger.DebugContext(ctx, "no service matched, using fallback")

		return unresolved(req, ReasonNoService, ErrResolutionUnresolved)
	}

	if len(svc.Ports) == 0 || svc.Ports[0].NodePort == 0 {
		logger.DebugContext(ctx, "service has no node port, using fallback", "matched", svc.Name)

		return unresolved(req, ReasonNoNodePort, ErrResolutionUnresolved)
	}

	scheme := req.Scheme
	if scheme == "" {
		scheme = schemeHTTP
	}

	endpoint := &ServiceEndpoint{
		Scheme: scheme,
		Host:   r.nodeAddress(ctx, logger),
		Port:   svc.Ports[0].NodePort,
	}

	logger.DebugContext(ctx, "endpoint resolved", "url", endpoint.URL())

	return Resolution{
		Endpoint: endpoint,
		Resolved: true,
		Reason:   ReasonResolved,
	}
}

func (r *Resolver) nodeAddress(ctx context.Context, logger *slog.Logger) string {
	if r.nodes == nil {
		return r.fallbackNodeAddress
	}

	addr, err := r.nodes.NodeAddressQuery(ctx)
	if err != nil || addr == "" {
		logger.WarnContext(ctx, "node address lookup failed, using fallback node address",
			"fallback", r.fallbackNodeAddress,
			"reason", err,
		)

		return r.fallbackNodeAddress
	}

	return addr
}

// pickService prefers a service with the requested name and otherwise takes
// the first one returned.
func pickService(services []Service, name string) (Service, bool) {
	if len(services) == 0 {
		return Service{}, false
	}

	if name != "" {
		for i := range services {
			if services[i].Name == name {
				return services[i], true
			}
		}
	}

	return services[0], true
}

func unresolved(req ResolveRequest, reason ResolveReason, err error) Resolution {
	fallback := req.Fallback
	fallback.Fallback = true

	if fallback.Scheme == "" {
		fallback.Scheme = schemeHTTP
	}

	return Resolution{
		Endpoint: &fallback,
		Reason:   reason,
		Err:      err,
	}
}
