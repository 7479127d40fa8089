package pinger

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/skillcoder/workload-reconciler/internal/infra/shutdown"
)

const (
	defaultPingTimeout = 1 * time.Second
	defaultInterval    = 5 * time.Second
)

// Result is the latest outcome of one pinger.
type Result struct {
	LastRun             time.Time     `json:"lastRun"`
	LastLatency         time.Duration `json:"lastLatencyNs"`
	LastError           string        `json:"lastError,omitempty"`
	Successes           int           `json:"successes"`
	Failures            int           `json:"failures"`
	ConsecutiveFailures int           `json:"consecutiveFailures"`
}

// OK reports whether the pinger ran and its last ping succeeded.
func (r Result) OK() bool {
	return !r.LastRun.IsZero() && r.LastError == ""
}

// Service pings the registered dependencies at a fixed interval.
type Service struct {
	logger     *slog.Logger
	interval   time.Duration
	timeout    time.Duration
	mu         sync.RWMutex
	pingers    map[string]Pinger
	results    map[string]Result
	ready      chan struct{}
	inShutdown atomic.Bool
	started    atomic.Bool
	doneCh     chan struct{}
}

// New creates a new pinger service. Non-positive durations use the defaults.
func New(
	logger *slog.Logger,
	interval time.Duration,
	timeout time.Duration,
) *Service {
	if interval <= 0 {
		interval = defaultInterval
	}

	if timeout <= 0 {
		timeout = defaultPingTimeout
	}

	return &Service{
		logger:   logger,
		interval: interval,
		timeout:  timeout,
		pingers:  make(map[string]Pinger),
		results:  make(map[string]Result),
		ready:    make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

var _ shutdown.Shutdowner = (*Service)(nil)

// Name returns the name of the pinger service component
func (s *Service) Name() string {
	return "pinger-service"
}

// Register adds a pinger. Names must be unique.
func (s *Service) Register(pinger Pinger) error {
	if pinger == nil {
		return fmt.Errorf("register pinger: %w", errNilPinger)
	}

	name := pinger.Name()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.pingers[name]; exists {
		return fmt.Errorf("register pinger %s: %w", name, ErrPingerAlreadyRegistered)
	}

	s.pingers[name] = pinger

	s.logger.Info("pinger registered", "name", name)

	return nil
}

// Start pings in a goroutine until ctx is done or Shutdown is called.
func (s *Service) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "pinger service is shutting down, skipping start")

		return nil
	}

	if !s.started.CompareAndSwap(false, true) {
		return nil
	}

	go s.run(ctx)

	return nil
}

// Ready returns a channel that is closed after the first round of pings.
func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

// IsReady reports whether every registered pinger succeeded on its last run.
func (s *Service) IsReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for name := range s.pingers {
		if !s.results[name].OK() {
			return false
		}
	}

	return true
}

// Results returns a copy of the latest results keyed by pinger name.
func (s *Service) Results() map[string]Result {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return maps.Clone(s.results)
}

// Shutdown stops the ping loop and waits for the in-flight round.
func (s *Service) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.InfoContext(ctx, "pinger service is already shutting down, skipping shutdown")

		return nil
	}

	if !s.started.Load() {
		return nil
	}

	s.logger.InfoContext(ctx, "shutting down pinger service")

	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before pinger loop exited: %w", ctx.Err())
	case <-s.doneCh:
		s.logger.InfoContext(ctx, "pinger loop exited")
	}

	return nil
}

func (s *Service) run(ctx context.Context) {
	defer close(s.doneCh)

	logger := s.logger.With("component", "pinger-run")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.pingAll(ctx, logger)
	close(s.ready)

	for {
		if s.inShutdown.Load() {
			logger.InfoContext(ctx, "terminating pinger loop")

			return
		}

		select {
		case <-ticker.C:
			s.pingAll(ctx, logger)
		case <-ctx.Done():
			logger.InfoContext(ctx, "terminating pinger loop")

			return
		}
	}
}

// pingAll runs every pinger in parallel, each under its own timeout.
func (s *Service) pingAll(ctx context.Context, logger *slog.Logger) {
	s.mu.RLock()
	pingers := maps.Clone(s.pingers)
	s.mu.RUnlock()

	var g errgroup.Group

	for name, pinger := range pingers {
		g.Go(func() error {
			pingCtx, cancel := context.WithTimeout(ctx, s.timeout)
			defer cancel()

			start := time.Now()
			err := pinger.Ping(pingCtx)
			latency := time.Since(start)

			s.record(name, start, latency, err)

			if err != nil {
				logger.DebugContext(ctx, "ping failed", "name", name, "latency", latency, "reason", err)
			}

			return nil
		})
	}

	_ = g.Wait()
}

func (s *Service) record(name string, at time.Time, latency time.Duration, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.results[name]
	result.LastRun = at
	result.LastLatency = latency

	if err != nil {
		result.LastError = err.Error()
		result.Failures++
		result.ConsecutiveFailures++
	} else {
		result.LastError = ""
		result.Successes++
		result.ConsecutiveFailures = 0
	}

	s.results[name] = result
}
