package reconciler

import (
	"encoding/json"
	"fmt"
	"math"
	"net"
	"strconv"
	"time"

	"k8s.io/apimachinery/pkg/api/resource"
)

// ResourceList holds Kubernetes quantity strings, e.g. "100m" or "128Mi".
type ResourceList struct {
	CPU    string `json:"cpu,omitempty"`
	Memory string `json:"memory,omitempty"`
}

// Resources are the container resource requests and limits.
type Resources struct {
	Requests ResourceList `json:"requests"`
	Limits   ResourceList `json:"limits"`
}

// WorkloadSpec is the declared intent for one reconciliation cycle.
type WorkloadSpec struct {
	Name            string    `json:"name"`
	Namespace       string    `json:"namespace,omitempty"`
	Image           string    `json:"image"`
	ImagePullPolicy string    `json:"imagePullPolicy,omitempty"`
	Replicas        int32     `json:"replicas"`
	ContainerPort   int32     `json:"containerPort"`
	ServiceName     string    `json:"serviceName,omitempty"`
	ServicePort     int32     `json:"servicePort,omitempty"`
	NodePort        int32     `json:"nodePort,omitempty"`
	Resources       Resources `json:"resources"`
}

const maxPort = 65535

// Validate checks the fields the applier relies on.
func (w WorkloadSpec) Validate() error {
	switch {
	case w.Name == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidWorkloadSpec)
	case w.Namespace == "":
		return fmt.Errorf("%w: namespace is empty", ErrInvalidWorkloadSpec)
	case w.Image == "":
		return fmt.Errorf("%w: image is empty", ErrInvalidWorkloadSpec)
	case w.Replicas < 1:
		return fmt.Errorf("%w: replicas must be >= 1, got %d", ErrInvalidWorkloadSpec, w.Replicas)
	case w.ContainerPort < 1 || w.ContainerPort > maxPort:
		return fmt.Errorf("%w: container port %d out of range", ErrInvalidWorkloadSpec, w.ContainerPort)
	case w.ServicePort < 0 || w.ServicePort > maxPort:
		return fmt.Errorf("%w: service port %d out of range", ErrInvalidWorkloadSpec, w.ServicePort)
	case w.NodePort < 0 || w.NodePort > maxPort:
		return fmt.Errorf("%w: node port %d out of range", ErrInvalidWorkloadSpec, w.NodePort)
	}

	switch w.ImagePullPolicy {
	case "", "Always", "IfNotPresent", "Never":
	default:
		return fmt.Errorf("%w: unknown image pull policy %q", ErrInvalidWorkloadSpec, w.ImagePullPolicy)
	}

	quantities := [...]struct{ field, value string }{
		{"requests.cpu", w.Resources.Requests.CPU},
		{"requests.memory", w.Resources.Requests.Memory},
		{"limits.cpu", w.Resources.Limits.CPU},
		{"limits.memory", w.Resources.Limits.Memory},
	}

	for _, q := range quantities {
		if q.value == "" {
			continue
		}

		if _, err := resource.ParseQuantity(q.value); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidWorkloadSpec, q.field, err)
		}
	}

	return nil
}

// Labels returns the labels shared by the pods and the service of the workload.
func (w WorkloadSpec) Labels() map[string]string {
	return map[string]string{WorkloadLabelKey: w.Name}
}

// Selector returns the label selector matching the workload objects.
func (w WorkloadSpec) Selector() string {
	return WorkloadLabelKey + "=" + w.Name
}

// EffectiveServiceName defaults to the workload name.
func (w WorkloadSpec) EffectiveServiceName() string {
	if w.ServiceName == "" {
		return w.Name
	}

	return w.ServiceName
}

// EffectiveServicePort defaults to the container port.
func (w WorkloadSpec) EffectiveServicePort() int32 {
	if w.ServicePort == 0 {
		return w.ContainerPort
	}

	return w.ServicePort
}

// DeploymentStatus is the observed state of the workload deployment.
type DeploymentStatus struct {
	Name      string
	Declared  int32
	Ready     int32
	Converged bool
	Endpoint  *ServiceEndpoint
}

// NewDeploymentStatus is the only way to build a status, so Converged always
// reflects ready == declared.
func NewDeploymentStatus(name string, declared, ready int32) DeploymentStatus {
	return DeploymentStatus{
		Name:      name,
		Declared:  declared,
		Ready:     ready,
		Converged: ready == declared,
	}
}

// ServiceEndpoint is an externally reachable address of a service.
type ServiceEndpoint struct {
	Scheme   string
	Host     string
	Port     int32
	Fallback bool
}

// URL renders the endpoint as scheme://host:port.
func (e ServiceEndpoint) URL() string {
	scheme := e.Scheme
	if scheme == "" {
		scheme = schemeHTTP
	}

	return scheme + "://" + net.JoinHostPort(e.Host, strconv.Itoa(int(e.Port)))
}

// Service is a Kubernetes service in the domain layer.
type Service struct {
	Name  string
	Ports []ServicePort
}

// ServicePort is one port entry of a service. NodePort is zero when unassigned.
type ServicePort struct {
	Name     string
	Port     int32
	NodePort int32
}

// Sample is one element of an instant query result.
type Sample struct {
	Labels map[string]string
	Value  float64
}

// MetricName is a key of a MetricsSnapshot.
type MetricName string

// MetricValue is either an available number or an unavailable marker with its cause.
type MetricValue struct {
	Value     float64
	Available bool
	Err       error
}

// AvailableValue builds an available metric value.
func AvailableValue(v float64) MetricValue {
	return MetricValue{Value: v, Available: true}
}

// UnavailableValue builds an unavailable metric value.
func UnavailableValue(err error) MetricValue {
	return MetricValue{Err: err}
}

const unavailableMarker = "unavailable"

func (v MetricValue) String() string {
	if !v.Available {
		return unavailableMarker
	}

	return strconv.FormatFloat(v.Value, 'f', -1, 64)
}

// MarshalJSON renders unavailable values as the "unavailable" string so they
// never read as a real zero. Non-finite numbers have no JSON form and render
// the same way.
func (v MetricValue) MarshalJSON() ([]byte, error) {
	if !v.Available || math.IsNaN(v.Value) || math.IsInf(v.Value, 0) {
		return json.Marshal(unavailableMarker)
	}

	return json.Marshal(v.Value)
}

// MetricsSnapshot maps every metric name to its value.
type MetricsSnapshot map[MetricName]MetricValue

// Get returns the value for name; missing names are unavailable.
func (s MetricsSnapshot) Get(name MetricName) MetricValue {
	v, ok := s[name]
	if !ok {
		return UnavailableValue(ErrNoData)
	}

	return v
}

// AvailableCount returns how many fields carry a value.
func (s MetricsSnapshot) AvailableCount() int {
	n := 0

	for _, v := range s {
		if v.Available {
			n++
		}
	}

	return n
}

// PodUsage is the summed resource usage of the workload pods as seen by metrics-server.
type PodUsage struct {
	Pods        int
	CPUMillis   int64
	MemoryBytes int64
}

// Report is the outcome of one reconciliation cycle.
type Report struct {
	// ID identifies the cycle in logs and pushed metrics.
	ID            string
	Workload      string
	StartedAt     time.Time
	Duration      time.Duration
	PrometheusURL string

	// Image is nil when image staging was skipped.
	Image *StageResult

	Apply ApplyResult

	// Poll is nil when polling did not run.
	Poll *PollResult

	Status   DeploymentStatus
	Endpoint *ServiceEndpoint
	Metrics  MetricsSnapshot

	Usage    *PodUsage
	UsageErr error
}

// StageResult is the outcome of building and loading the workload image.
type StageResult struct {
	Image  string
	Built  bool
	Loaded bool
	Err    error
}

// OK reports whether the image is ready to be applied.
func (r StageResult) OK() bool {
	return r.Err == nil
}
