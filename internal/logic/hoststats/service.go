package hoststats

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"time"
)

const (
	statusHealthy = "healthy"

	bytesPerGB = 1 << 30

	// DefaultCPUSampleInterval is the window over which CPU usage is measured.
	DefaultCPUSampleInterval = time.Second

	DefaultDiskPath = "/"
)

// Service turns raw host counters into the workload's health, metrics and info answers.
type Service struct {
	logger         *slog.Logger
	reader         StatsReader
	hostname       string
	sampleInterval time.Duration
	diskPath       string
	now            func() time.Time
}

// NewService creates a new host stats service. A zero sampleInterval uses
// DefaultCPUSampleInterval and an empty diskPath uses DefaultDiskPath.
func NewService(
	logger *slog.Logger,
	reader StatsReader,
	hostname string,
	sampleInterval time.Duration,
	diskPath string,
) *Service {
	if sampleInterval <= 0 {
		sampleInterval = DefaultCPUSampleInterval
	}

	if diskPath == "" {
		diskPath = DefaultDiskPath
	}

	return &Service{
		logger:         logger,
		reader:         reader,
		hostname:       hostname,
		sampleInterval: sampleInterval,
		diskPath:       diskPath,
		now:            time.Now,
	}
}

// HealthQuery always reports healthy; it answers as long as the process serves.
func (s *Service) HealthQuery(_ context.Context) Health {
	return Health{
		Status:    statusHealthy,
		Timestamp: s.now(),
		Hostname:  s.hostname,
	}
}

// MetricsQuery samples CPU usage over the sample interval and reads memory and disk usage.
func (s *Service) MetricsQuery(ctx context.Context) (Metrics, error) {
	cpuPercent, err := s.cpuPercent(ctx)
	if err != nil {
		return Metrics{}, err
	}

	memory, err := s.reader.MemoryQuery(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("%w: memory: %w", ErrStatsUnavailable, err)
	}

	disk, err := s.reader.DiskQuery(ctx, s.diskPath)
	if err != nil {
		return Metrics{}, fmt.Errorf("%w: disk %s: %w", ErrStatsUnavailable, s.diskPath, err)
	}

	return Metrics{
		CPUPercent:        round(cpuPercent, 1),
		MemoryPercent:     round(memoryPercent(memory), 1),
		MemoryAvailableGB: round(float64(memory.AvailableBytes)/bytesPerGB, 2),
		DiskPercent:       round(diskPercent(disk), 1),
		DiskFreeGB:        round(float64(disk.AvailableBytes)/bytesPerGB, 2),
	}, nil
}

// InfoQuery describes the host.
func (s *Service) InfoQuery(ctx context.Context) (Info, error) {
	cores, err := s.reader.CPUCountQuery(ctx)
	if err != nil {
		return Info{}, fmt.Errorf("%w: cpu count: %w", ErrStatsUnavailable, err)
	}

	memory, err := s.reader.MemoryQuery(ctx)
	if err != nil {
		return Info{}, fmt.Errorf("%w: memory: %w", ErrStatsUnavailable, err)
	}

	return Info{
		System:         s.hostname,
		Platform:       runtime.GOOS,
		RuntimeVersion: runtime.Version(),
		Cores:          cores,
		TotalMemoryGB:  round(float64(memory.TotalBytes)/bytesPerGB, 2),
	}, nil
}

func (s *Service) cpuPercent(ctx context.Context) (float64, error) {
	before, err := s.reader.CPUTimesQuery(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: cpu: %w", ErrStatsUnavailable, err)
	}

	timer := time.NewTimer(s.sampleInterval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("cpu sample: %w", ctx.Err())
	case <-timer.C:
	}

	after, err := s.reader.CPUTimesQuery(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: cpu: %w", ErrStatsUnavailable, err)
	}

	total := after.Total - before.Total
	if total <= 0 {
		s.logger.DebugContext(ctx, "no cpu time elapsed between samples")

		return 0, nil
	}

	return clampPercent((after.Busy - before.Busy) / total * 100), nil
}

func memoryPercent(m Memory) float64 {
	if m.TotalBytes == 0 {
		return 0
	}

	used := m.TotalBytes - min(m.AvailableBytes, m.TotalBytes)

	return clampPercent(float64(used) / float64(m.TotalBytes) * 100)
}

// diskPercent matches df: used over what is usable by unprivileged users.
func diskPercent(d Disk) float64 {
	used := d.TotalBytes - min(d.FreeBytes, d.TotalBytes)

	usable := used + d.AvailableBytes
	if usable == 0 {
		return 0
	}

	return clampPercent(float64(used) / float64(usable) * 100)
}

func clampPercent(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))

	return math.Round(v*scale) / scale
}
