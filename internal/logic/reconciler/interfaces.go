package reconciler

import "context"

// ClusterRepository is the port interface for cluster API operations.
// Implementations are provided by adapters in the outbound layer.
type ClusterRepository interface {
	PingQuery(ctx context.Context) error

	ApplyDeploymentCommand(
		ctx context.Context,
		spec WorkloadSpec,
	) (ApplyAction, error)

	ApplyServiceCommand(
		ctx context.Context,
		spec WorkloadSpec,
	) (ApplyAction, error)

	// GetDeploymentStatusQuery returns the declared and ready replica counts.
	GetDeploymentStatusQuery(
		ctx context.Context,
		namespace,
		name string,
	) (declared, ready int32, err error)

	ListServicesQuery(
		ctx context.Context,
		namespace,
		labelSelector string,
	) ([]Service, error)

	WorkloadUsageQuery(
		ctx context.Context,
		namespace,
		labelSelector string,
	) (*PodUsage, error)
}

// MonitoringRepository is the port interface for the time-series backend.
type MonitoringRepository interface {
	// InstantQuery returns an empty slice, not an error, when the query has no data.
	InstantQuery(
		ctx context.Context,
		expr string,
	) ([]Sample, error)

	PingQuery(ctx context.Context) error
}

// MonitoringConnector builds a MonitoringRepository for a resolved backend URL.
type MonitoringConnector interface {
	Connect(
		ctx context.Context,
		baseURL string,
	) (MonitoringRepository, error)
}

// NodeAddressProvider returns the address of a cluster node.
type NodeAddressProvider interface {
	NodeAddressQuery(ctx context.Context) (string, error)
}

// ClusterRuntime controls the local cluster runtime.
type ClusterRuntime interface {
	NodeAddressProvider
	EnsureRunningCommand(ctx context.Context) error
}

// ImageStager builds the workload image and transfers it into the cluster image store.
type ImageStager interface {
	BuildImageCommand(
		ctx context.Context,
		image string,
	) error

	LoadImageCommand(
		ctx context.Context,
		image string,
	) error
}

// notFound is a private interface for checking "not found" errors
// without importing the adapter package.
type notFound interface {
	IsNotFound()
}
