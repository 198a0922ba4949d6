package mockapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"nycschools/internal/logfields"
	"nycschools/internal/remote"
)

// Resources that can be forced to fail.
const (
	FailSchools = "schools"
	FailScores  = "scores"
)

// ResourcePrefix is the path under which the resources are served.
const ResourcePrefix = "/resource/"

// Server represents the mock API server.
type Server struct {
	Addr     string
	fixture  Fixture
	fail     map[string]bool
	latency  time.Duration
	logger   *slog.Logger
	router   *chi.Mux
	server   *http.Server
	reg      *prom.Registry
	requests *prom.CounterVec
}

// Option customises a Server.
type Option func(*Server)

// WithFailure makes resource (FailSchools or FailScores) answer 500.
func WithFailure(resource string) Option {
	return func(s *Server) { s.fail[resource] = true }
}

// WithLatency delays every resource response by d.
func WithLatency(d time.Duration) Option { return func(s *Server) { s.latency = d } }

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option { return func(s *Server) { s.logger = l } }

// NewServer creates a server for fixture listening on addr.
func NewServer(addr string, fixture Fixture, opts ...Option) *Server {
	s := &Server{
		Addr:    addr,
		fixture: fixture,
		fail:    map[string]bool{},
		logger:  slog.Default(),
		router:  chi.NewRouter(),
		reg:     prom.NewRegistry(),
		requests: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "nycschools_mockapi",
			Name:      "requests_total",
			Help:      "Resource requests served by the mock API",
		}, []string{"resource", "code"}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reg.MustRegister(s.requests)

	s.setupRoutes()

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15*time.Second + s.latency,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)
	s.router.Use(s.logRequests)

	s.router.Get("/health", s.handleHealth)
	s.router.Get(ResourcePrefix+remote.SchoolsResource, s.resource(FailSchools, func() any { return s.fixture.Schools }))
	s.router.Get(ResourcePrefix+remote.ScoresResource, s.resource(FailScores, func() any { return s.fixture.Scores }))
	s.router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.reg, promhttp.HandlerOpts{}))
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// Start starts the server and blocks until it stops.
func (s *Server) Start() error {
	s.logger.Info("mock api listening", logfields.URL("http://"+s.Addr+ResourcePrefix))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) resource(name string, body func() any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.latency > 0 {
			t := time.NewTimer(s.latency)
			select {
			case <-t.C:
			case <-r.Context().Done():
				t.Stop()
				return
			}
		}
		if s.fail[name] {
			s.requests.WithLabelValues(name, "500").Inc()
			http.Error(w, "forced failure", http.StatusInternalServerError)
			return
		}
		s.requests.WithLabelValues(name, "200").Inc()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(body())
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"healthy"}`))
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request served",
			logfields.URL(r.URL.Path),
			logfields.Status(ww.Status()),
			logfields.Duration(time.Since(start)))
	})
}
