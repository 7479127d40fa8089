package hoststats

import "context"

// StatsReader reads raw host counters.
type StatsReader interface {
	CPUTimesQuery(ctx context.Context) (CPUTimes, error)
	CPUCountQuery(ctx context.Context) (int, error)
	MemoryQuery(ctx context.Context) (Memory, error)
	DiskQuery(ctx context.Context, path string) (Disk, error)
}
