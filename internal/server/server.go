package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zeusync/btree/internal/core/bt"
	"github.com/zeusync/btree/internal/core/bt/graph"
	"github.com/zeusync/btree/internal/core/events/bus"
	"github.com/zeusync/btree/internal/core/observability/log"
)

// Config holds server configuration
type Config struct {
	ListenAddr      string
	ReadTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// DefaultServerConfig returns default server configuration
func DefaultServerConfig() Config {
	return Config{
		ListenAddr:      "127.0.0.1:8080",
		ReadTimeout:     10 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}

// Server exposes a running tree over HTTP: the notice stream on /ws,
// Prometheus metrics on /metrics, the tree diagram on /tree and /healthz.
type Server struct {
	config   Config
	logger   log.Log
	diagram  string
	hub      *Hub
	gatherer prometheus.Gatherer
	router   chi.Router

	running atomic.Bool
	addr    atomic.Value // string
}

// New creates the server. A nil gatherer serves the default Prometheus registry.
// The diagram is rendered once here because a running RandomSelector reorders
// its children in place. New must not be called while the tree is running.
func New(config Config, tree *bt.Tree, b bus.EventBus, gatherer prometheus.Gatherer, logger log.Log) (*Server, error) {
	if logger == nil {
		logger = log.Nop()
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	hub, err := NewHub(b, logger)
	if err != nil {
		return nil, err
	}
	s := &Server{
		config:   config,
		logger:   logger.With(log.String("component", "server")),
		diagram:  graph.GenerateMermaid(tree),
		hub:      hub,
		gatherer: gatherer,
		router:   chi.NewRouter(),
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.router.Use(middleware.Recoverer)
	s.router.Get("/ws", s.hub.handleWebSocket)
	s.router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	s.router.Get("/tree", s.handleTree)
	s.router.Get("/healthz", s.handleHealth)
}

func (s *Server) Handler() http.Handler { return s.router }
func (s *Server) Hub() *Hub             { return s.hub }

// Addr is the bound listen address once Start is running.
func (s *Server) Addr() string {
	if v, ok := s.addr.Load().(string); ok {
		return v
	}
	return ""
}

func (s *Server) handleTree(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(s.diagram))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

// Start listens and serves until ctx is done, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrServerAlreadyRunning
	}
	defer s.running.Store(false)

	ln, err := net.Listen("tcp", s.config.ListenAddr)
	if err != nil {
		return err
	}
	s.addr.Store(ln.Addr().String())

	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: s.config.ReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info("server started", log.String("addr", ln.Addr().String()))

	select {
	case err = <-errCh:
		_ = s.hub.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	_ = s.hub.Close()
	err = srv.Shutdown(shutdownCtx)
	s.logger.Info("server stopped")
	return err
}
