package config

import "time"

// Config keys. Every key is also a flag name and maps to an env var with the
// RECONCILER_ prefix, dashes replaced by underscores (poll-interval ->
// RECONCILER_POLL_INTERVAL). Duration values need explicit units (e.g. 2s, 1m).
const envPrefix = "RECONCILER"

// Path to kubeconfig file. If unset, KUBECONFIG is used as fallback.
const keyKubeConfig = "kubeconfig"

// Kubernetes API server URL. If unset, KUBERNETES_MASTER is used as fallback.
const keyKubeMaster = "kube-master"

// Log level: debug, info, warn, error.
const keyLogLevel = "log-level"

// Log format: json or text.
const keyLogFormat = "log-format"

// Report output: text or json.
const keyOutput = "output"

// YAML or JSON file with the workload spec; fields override the built-in defaults.
const keyWorkloadFile = "workload-file"

// Per-field workload overrides, applied on top of the workload file.
const (
	keyWorkloadName      = "workload-name"
	keyWorkloadNamespace = "workload-namespace"
	keyWorkloadImage     = "workload-image"
	keyWorkloadReplicas  = "workload-replicas"
)

// Number of deployment status checks before the cycle gives up waiting.
const (
	keyPollAttempts    = "poll-attempts"
	envMinPollAttempts = 1
)

// Pause between deployment status checks. Units: ms, s, m.
const (
	keyPollInterval    = "poll-interval"
	envMinPollInterval = 100 * time.Millisecond
)

// Deadline of each monitoring query. Units: ms, s, m.
const (
	keyQueryTimeout    = "query-timeout"
	envMinQueryTimeout = 100 * time.Millisecond
)

// Prometheus base URL; when set, discovery through the cluster is skipped.
const keyPrometheusURL = "prometheus-url"

// Prometheus URL used when discovery finds no node-port service.
const keyPrometheusFallbackURL = "prometheus-fallback-url"

// Namespace holding the Prometheus service and the counted pods.
const keyMonitoringNamespace = "monitoring-namespace"

// Label selector of the Prometheus service (e.g. app=prometheus).
const keyPrometheusSelector = "prometheus-selector"

// Pod phase counted by the pods metric; empty counts every phase.
const keyPodPhase = "pod-phase"

// Node address used when the cluster runtime cannot report one.
const keyFallbackNodeAddress = "fallback-node-address"

// Start the local minikube cluster when it is not running and stage images into it.
const keyManageCluster = "manage-cluster"

// minikube CLI settings.
const (
	keyMinikubeBinary   = "minikube-binary"
	keyMinikubeProfile  = "minikube-profile"
	keyMinikubeDriver   = "minikube-driver"
	keyMinikubeMemoryMB = "minikube-memory"
	keyMinikubeCPUs     = "minikube-cpus"
)

// Skip building and loading the workload image.
const keySkipImage = "skip-image"

// Docker build context directory and Dockerfile path relative to it.
const (
	keyBuildContext = "build-context"
	keyDockerfile   = "dockerfile"
)

// Pushgateway URL; when set, cycle metrics are pushed after every command.
const keyPushgatewayURL = "pushgateway-url"

// Standard k8s env keys used as fallback when RECONCILER_* are unset.
const (
	envKeyKubeConfigFallback = "KUBECONFIG"
	envKeyKubeMasterFallback = "KUBERNETES_MASTER"
)

// Sample workload keys use the SAMPLEAPP_ prefix.
const sampleAppEnvPrefix = "SAMPLEAPP"

const (
	keySampleAppHTTPPort        = "http-port"
	keySampleAppMetricsPort     = "metrics-port"
	keySampleAppShutdownTimeout = "shutdown-timeout"
	envMinShutdownTimeout       = time.Second
	keySampleAppPingerInterval  = "pinger-interval"
	envMinPingerInterval        = 100 * time.Millisecond
)
