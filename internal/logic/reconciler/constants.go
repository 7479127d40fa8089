package reconciler

import "time"

const (
	// WorkloadLabelKey is the pod/service label that ties the workload objects together.
	WorkloadLabelKey = "app"

	// FieldManager identifies this tool as the writer of the applied objects.
	FieldManager = "workload-reconciler"

	DefaultNamespace           = "default"
	DefaultMonitoringNamespace = "monitoring"
	DefaultPrometheusSelector  = "app=prometheus"
	DefaultPodPhase            = "Running"

	// DefaultFallbackNodeAddress is the address minikube assigns to its first node
	// with the docker driver.
	DefaultFallbackNodeAddress = "192.168.49.2"

	DefaultPrometheusFallbackURL = "http://localhost:9090"

	DefaultPollAttempts = 30
	DefaultPollInterval = 2 * time.Second
	DefaultQueryTimeout = 5 * time.Second

	schemeHTTP = "http"
)

// Metric names of a MetricsSnapshot.
const (
	MetricCPU    MetricName = "cpu"
	MetricMemory MetricName = "memory"
	MetricDisk   MetricName = "disk"
	MetricPods   MetricName = "pods"
)

const (
	queryCPU = `100 - (avg(rate(node_cpu_seconds_total{mode="idle"}[5m])) * 100)`

	queryMemory = `100 * (1 - (node_memory_MemAvailable_bytes / node_memory_MemTotal_bytes))`

	queryDisk = `100 - ((node_filesystem_avail_bytes{mountpoint="/"} * 100) / ` +
		`node_filesystem_size_bytes{mountpoint="/"})`

	// queryPodsFormat yields one series per pod; value 1 marks the pod as being in the phase.
	queryPodsFormat = `kube_pod_status_phase{namespace=%q,phase=%q}`
)
