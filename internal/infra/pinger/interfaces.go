package pinger

import "context"

// Pinger is a dependency probed periodically for readiness.
type Pinger interface {
	Name() string
	Ping(ctx context.Context) error
}
