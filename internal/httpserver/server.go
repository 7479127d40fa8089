package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/skillcoder/workload-reconciler/internal/infra/appstate"
	"github.com/skillcoder/workload-reconciler/internal/infra/shutdown"
)

// Server serves the sample workload API and its health endpoints.
type Server struct {
	logger     *slog.Logger
	appState   appstater
	stats      hostStater
	observer   requestObserver
	port       string
	server     *http.Server
	addr       atomic.Pointer[string]
	ready      chan struct{}
	inShutdown atomic.Bool
}

// New creates a new HTTP server instance. observer may be nil.
func New(
	logger *slog.Logger,
	appState appstater,
	stats hostStater,
	observer requestObserver,
	port string,
) *Server {
	if port == "" {
		port = defaultPort
	}

	return &Server{
		logger:   logger,
		appState: appState,
		stats:    stats,
		observer: observer,
		port:     port,
		ready:    make(chan struct{}),
	}
}

var _ shutdown.Shutdowner = (*Server)(nil)

// Name returns the name of the server component
func (s *Server) Name() string {
	return "http-server"
}

// Handler builds the router with every route of the workload.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	if s.observer != nil {
		router.Use(instrument(s.observer))
	}

	router.Get("/", s.handleIndex)
	router.Get(healthPath, s.handleHealth)
	router.Get(metricsPath, s.handleMetrics)
	router.Get("/info", s.handleInfo)

	router.Get("/-/healthz", appstate.HandleHealthz(s.logger, s.appState))
	router.Get("/-/readyz", appstate.HandleReadyz(s.logger, s.appState))
	router.Get("/-/status", appstate.HandleStatus(s.logger, s.appState))

	return router
}

// Start listens on the configured port and serves in a goroutine.
func (s *Server) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "http server is shutting down, skipping start")

		return nil
	}

	s.server = newHTTPServer(":"+s.port, s.Handler())

	listener, err := listen(ctx, s.server.Addr)
	if err != nil {
		return fmt.Errorf("listen http tcp: %w", err)
	}

	addr := listener.Addr().String()
	s.addr.Store(&addr)

	s.logger.InfoContext(ctx, "http server listening", "addr", addr)

	go func() {
		close(s.ready)

		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.ErrorContext(ctx, "http server error", "reason", err)
		}
	}()

	return nil
}

// Addr returns the bound listener address, or "" before Start.
func (s *Server) Addr() string {
	if addr := s.addr.Load(); addr != nil {
		return *addr
	}

	return ""
}

// Ping requests GET /health over loopback once the server is serving.
func (s *Server) Ping(ctx context.Context) error {
	if err := pingReady(ctx, s.ready, "http server"); err != nil {
		return err
	}

	return probe(ctx, s.Addr(), healthPath)
}

// Ready returns a channel that is closed when the HTTP server is ready to serve requests
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return shutdownServer(ctx, s.logger, &s.inShutdown, s.server, "http server")
}

func newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		MaxHeaderBytes:    maxHeaderBytes,
	}
}

func listen(ctx context.Context, addr string) (net.Listener, error) {
	lc := &net.ListenConfig{
		KeepAliveConfig: net.KeepAliveConfig{
			Enable: true,
		},
	}

	return lc.Listen(ctx, "tcp", addr)
}

func pingReady(ctx context.Context, ready <-chan struct{}, name string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-ready:
		return nil
	default:
		return fmt.Errorf("%s: %w", name, ErrNotReady)
	}
}

func shutdownServer(
	ctx context.Context,
	logger *slog.Logger,
	inShutdown *atomic.Bool,
	server *http.Server,
	name string,
) error {
	if !inShutdown.CompareAndSwap(false, true) {
		logger.WarnContext(ctx, name+" is already shutting down, skipping shutdown")

		return nil
	}

	logger.InfoContext(ctx, "shutting down "+name)

	if server == nil {
		return nil
	}

	if err := server.Shutdown(ctx); err != nil {
		logger.ErrorContext(ctx, "error shutting down "+name, "reason", err)

		return fmt.Errorf("%s shutdown: %w", name, err)
	}

	logger.InfoContext(ctx, name+" closed properly")

	return nil
}
