// Package server exposes the simulator over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/theirongolddev/creditsim/internal/export"
	"github.com/theirongolddev/creditsim/internal/observability"
	"github.com/theirongolddev/creditsim/internal/store"
)

// ScenarioStore is the subset of the scenario library the API uses.
type ScenarioStore interface {
	Save(ctx context.Context, name string, doc export.Document) (store.Scenario, error)
	Get(ctx context.Context, name string) (store.Scenario, error)
	List(ctx context.Context) ([]store.Scenario, error)
	Delete(ctx context.Context, name string) error
}

// Config controls the server runtime behavior.
type Config struct {
	Addr           string
	AllowedOrigins []string
	EventsBuffer   int
}

// Service provides the HTTP API.
type Service struct {
	cfg     Config
	logger  *zap.Logger
	metrics *observability.Metrics
	store   ScenarioStore

	mu        sync.RWMutex
	startedAt time.Time
	runCount  int64

	feed *runFeed
}

// New returns a service. scenarios may be nil, in which case the scenario
// routes answer 404.
func New(cfg Config, logger *zap.Logger, metrics *observability.Metrics, scenarios ScenarioStore) *Service {
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8080"
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"http://localhost:5173", "http://localhost:8080"}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = observability.NewMetrics()
	}

	return &Service{
		cfg:       cfg,
		logger:    logger,
		metrics:   metrics,
		store:     scenarios,
		startedAt: time.Now(),
		feed:      newRunFeed(cfg.EventsBuffer),
	}
}

// Router builds the chi router with all routes configured.
func (s *Service) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(observability.ZapLoggerMiddleware(s.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Post("/simulate", s.handleSimulate)
		r.Post("/simulate.csv", s.handleSimulateCSV)
		r.Get("/example", s.handleExample)
		r.Get("/status", s.handleStatus)
		r.Get("/events", s.handleEvents)
		r.Get("/stream", s.handleStream)

		r.Route("/scenarios", func(r chi.Router) {
			r.Use(s.requireStore)
			r.Get("/", s.handleListScenarios)
			r.Get("/{name}", s.handleGetScenario)
			r.Put("/{name}", s.handlePutScenario)
			r.Delete("/{name}", s.handleDeleteScenario)
			r.Get("/{name}/run", s.handleRunScenario)
		})
	})

	return r
}

// Run serves the API until ctx is canceled, then shuts down gracefully.
func (s *Service) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve handles requests on ln until ctx is canceled. Request contexts
// derive from ctx, so open event streams end with it.
func (s *Service) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
