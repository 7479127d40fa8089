package httpserver

import "time"

const (
	defaultPort        = "5000"
	defaultMetricsPort = "9100"

	readTimeout       = 3 * time.Second
	readHeaderTimeout = 3 * time.Second
	// writeTimeout covers the CPU sampling window of GET /metrics.
	writeTimeout   = 5 * time.Second
	idleTimeout    = 60 * time.Second
	maxHeaderBytes = 1 << 12 // 4kb

	unmatchedRoute = "unmatched"

	healthPath  = "/health"
	metricsPath = "/metrics"
)
