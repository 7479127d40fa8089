package hostfs

import (
	"context"
	"fmt"

	"github.com/prometheus/procfs"
	"golang.org/x/sys/unix"

	"github.com/skillcoder/workload-reconciler/internal/logic/hoststats"
)

const bytesPerKB = 1024

// Reader reads host counters from procfs and statfs(2).
type Reader struct {
	fs procfs.FS
}

// New creates a reader over the proc filesystem mounted at procPath; an empty
// procPath uses procfs.DefaultMountPoint.
func New(procPath string) (*Reader, error) {
	if procPath == "" {
		procPath = procfs.DefaultMountPoint
	}

	fs, err := procfs.NewFS(procPath)
	if err != nil {
		return nil, fmt.Errorf("open procfs %s: %w", procPath, err)
	}

	return &Reader{fs: fs}, nil
}

var _ hoststats.StatsReader = (*Reader)(nil)

// Name identifies the reader as a readiness dependency.
func (r *Reader) Name() string {
	return "procfs"
}

// Ping checks that the proc filesystem is still readable.
func (r *Reader) Ping(ctx context.Context) error {
	_, err := r.MemoryQuery(ctx)

	return err
}

// CPUTimesQuery returns the aggregate CPU times. Idle and iowait count as idle.
func (r *Reader) CPUTimesQuery(_ context.Context) (hoststats.CPUTimes, error) {
	stat, err := r.fs.Stat()
	if err != nil {
		return hoststats.CPUTimes{}, fmt.Errorf("read stat: %w", err)
	}

	c := stat.CPUTotal
	idle := c.Idle + c.Iowait
	total := c.User + c.Nice + c.System + c.Idle + c.Iowait + c.IRQ + c.SoftIRQ + c.Steal

	return hoststats.CPUTimes{
		Busy:  total - idle,
		Total: total,
	}, nil
}

func (r *Reader) CPUCountQuery(_ context.Context) (int, error) {
	stat, err := r.fs.Stat()
	if err != nil {
		return 0, fmt.Errorf("read stat: %w", err)
	}

	return len(stat.CPU), nil
}

// MemoryQuery reads /proc/meminfo. Kernels without MemAvailable fall back to
// free plus buffers plus page cache.
func (r *Reader) MemoryQuery(_ context.Context) (hoststats.Memory, error) {
	info, err := r.fs.Meminfo()
	if err != nil {
		return hoststats.Memory{}, fmt.Errorf("read meminfo: %w", err)
	}

	if info.MemTotal == nil {
		return hoststats.Memory{}, fmt.Errorf("read meminfo: %w", errMemTotalMissing)
	}

	available := value(info.MemAvailable)
	if info.MemAvailable == nil {
		available = value(info.MemFree) + value(info.Buffers) + value(info.Cached)
	}

	return hoststats.Memory{
		TotalBytes:     *info.MemTotal * bytesPerKB,
		AvailableBytes: available * bytesPerKB,
	}, nil
}

func (r *Reader) DiskQuery(_ context.Context, path string) (hoststats.Disk, error) {
	var st unix.Statfs_t

	if err := unix.Statfs(path, &st); err != nil {
		return hoststats.Disk{}, fmt.Errorf("statfs %s: %w", path, err)
	}

	blockSize := uint64(st.Bsize) //nolint:gosec // block size is never negative

	return hoststats.Disk{
		TotalBytes:     st.Blocks * blockSize,
		FreeBytes:      st.Bfree * blockSize,
		AvailableBytes: st.Bavail * blockSize,
	}, nil
}

func value(v *uint64) uint64 {
	if v == nil {
		return 0
	}

	return *v
}
