package appstate

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/skillcoder/workload-reconciler/internal/infra/pinger"
	"github.com/skillcoder/workload-reconciler/internal/infra/shutdown"
)

// State represents the application state
type State string

const (
	// StateInit is the initial state when the application is created
	StateInit State = "init"

	// StateStarting is the state when the application is starting up
	StateStarting State = "starting"

	// StateRunning is the state when the application is running normally
	StateRunning State = "running"

	// StateTerminating is the state when the application is shutting down
	StateTerminating State = "terminating"

	// StateTerminated is the final state when the application has terminated
	StateTerminated State = "terminated"
)

const defaultShutdownersCount = 4

// AppState manages the application state with thread-safe operations
type AppState struct {
	mu              sync.RWMutex
	logger          *slog.Logger
	startedAt       time.Time
	readyAt         *time.Time
	terminatingAt   *time.Time
	state           State
	quit            <-chan os.Signal
	shutdownTimeout time.Duration
	shutdowners     []shutdown.Shutdowner
	pinger          pingerServer
}

// New creates a new AppState. quit delivers the termination signals; the
// registered components get shutdownTimeout to stop. prober may be nil, then
// readiness depends on the state only.
func New(
	logger *slog.Logger,
	appStart time.Time,
	quit <-chan os.Signal,
	shutdownTimeout time.Duration,
	prober pingerServer,
) *AppState {
	return &AppState{
		logger:          logger,
		startedAt:       appStart,
		state:           StateInit,
		quit:            quit,
		shutdownTimeout: shutdownTimeout,
		shutdowners:     make([]shutdown.Shutdowner, 0, defaultShutdownersCount),
		pinger:          prober,
	}
}

// RegisterPinger adds a readiness dependency to the pinger service.
func (s *AppState) RegisterPinger(p pinger.Pinger) error {
	if s.pinger == nil {
		return ErrNoPinger
	}

	return s.pinger.Register(p)
}

// GetProbeResults returns the latest pinger results, or nil without a pinger service.
func (s *AppState) GetProbeResults() map[string]pinger.Result {
	if s.pinger == nil {
		return nil
	}

	return s.pinger.Results()
}

// RegisterShutdowner adds a component stopped by Shutdown, in reverse registration order.
func (s *AppState) RegisterShutdowner(shutdowner shutdown.Shutdowner) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shutdowners = append(s.shutdowners, shutdowner)
}

// SetStarting transitions the state from Init to Starting
func (s *AppState) SetStarting(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInit {
		return fmt.Errorf("set starting: %w", ErrInvalidStateTransition)
	}

	return s.setState(StateStarting)
}

// SetRunning transitions the state from Starting to Running
func (s *AppState) SetRunning(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateStarting {
		return fmt.Errorf("set running: %w", ErrInvalidStateTransition)
	}

	now := time.Now()
	s.readyAt = &now

	s.logger.InfoContext(ctx, "application running", "startup", now.Sub(s.startedAt))

	return s.setState(StateRunning)
}

// SetTerminating transitions the state to Terminating
func (s *AppState) SetTerminating(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateTerminated {
		return fmt.Errorf("set terminating: %w", ErrAlreadyTerminated)
	}

	now := time.Now()
	s.terminatingAt = &now

	return s.setState(StateTerminating)
}

// setState is an internal method to set the state
func (s *AppState) setState(newState State) error {
	if s.state == StateTerminated {
		return fmt.Errorf("set state: %w", ErrAlreadyTerminated)
	}

	s.state = newState

	return nil
}

// GetState returns the current application state
func (s *AppState) GetState() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// GetStartTime returns the time when the application started
func (s *AppState) GetStartTime() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.startedAt
}

// GetUptime returns the duration since the application started
func (s *AppState) GetUptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return time.Since(s.startedAt)
}

// IsHealthy returns true if the application is in a healthy state (running)
func (s *AppState) IsHealthy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state == StateRunning
}

// IsReady returns true if the application is running, readyAt is set and
// every pinger succeeded on its last run
func (s *AppState) IsReady() bool {
	s.mu.RLock()
	ready := s.state == StateRunning && s.readyAt != nil
	s.mu.RUnlock()

	if !ready {
		return false
	}

	return s.pinger == nil || s.pinger.IsReady()
}

// Quit returns the channel that will receive the signal when shutdown is requested
func (s *AppState) Quit() <-chan os.Signal {
	return s.quit
}

// Shutdown stops the registered components and transitions to the terminated state.
// Repeated calls are no-ops.
func (s *AppState) Shutdown(ctx context.Context) error {
	if s.GetState() == StateTerminated {
		return nil
	}

	if err := s.SetTerminating(ctx); err != nil {
		return fmt.Errorf("set terminating application state: %w", err)
	}

	s.mu.RLock()
	shutdowners := append([]shutdown.Shutdowner(nil), s.shutdowners...)
	s.mu.RUnlock()

	shutdownErr := shutdown.GracefulShutdown(ctx, s.logger, shutdowners, s.shutdownTimeout)

	s.mu.Lock()
	s.state = StateTerminated
	s.mu.Unlock()

	if shutdownErr != nil {
		return fmt.Errorf("shutdown: %w", shutdownErr)
	}

	return nil
}
