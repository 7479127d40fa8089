package hoststats

import "time"

// CPUTimes are cumulative CPU seconds across all cores since boot.
type CPUTimes struct {
	Busy  float64
	Total float64
}

// Memory is the host memory in bytes.
type Memory struct {
	TotalBytes     uint64
	AvailableBytes uint64
}

// Disk is the usage of one filesystem in bytes. AvailableBytes is what an
// unprivileged user may still write.
type Disk struct {
	TotalBytes     uint64
	FreeBytes      uint64
	AvailableBytes uint64
}

// Health is the liveness answer of the workload.
type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Hostname  string    `json:"hostname"`
}

// Metrics is the host usage snapshot served by the workload.
type Metrics struct {
	CPUPercent        float64 `json:"cpu_percent"`
	MemoryPercent     float64 `json:"memory_percent"`
	MemoryAvailableGB float64 `json:"memory_available_gb"`
	DiskPercent       float64 `json:"disk_percent"`
	DiskFreeGB        float64 `json:"disk_free_gb"`
}

// Info describes the host and the runtime.
type Info struct {
	System         string  `json:"system"`
	Platform       string  `json:"platform"`
	RuntimeVersion string  `json:"runtime_version"`
	Cores          int     `json:"cores"`
	TotalMemoryGB  float64 `json:"total_memory_gb"`
}
