package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"nycschools/internal/domain"
	"nycschools/internal/logfields"
	"nycschools/internal/metrics"
	"nycschools/internal/remote"
	"nycschools/internal/render"
	"nycschools/internal/services/coordinator"
	"nycschools/internal/services/school"
	"nycschools/internal/store"
)

// Wire bundles the stores, services and clients for the CLI.
type Wire struct {
	Config      Config
	Logger      *slog.Logger
	Metrics     *metrics.PrometheusRecorder
	Remote      *remote.HTTP
	Schools     *school.Service
	Selections  domain.SelectionStore
	Coordinator *coordinator.Coordinator
	Sink        domain.StateSink
	HTTP        *http.Client

	closers []io.Closer
}

// WireOption customises NewWire.
type WireOption func(*wireOptions)

type wireOptions struct {
	http    *http.Client
	out     io.Writer
	logger  *slog.Logger
	service domain.SchoolService
}

// WithHTTPClient sets the client used for outbound calls.
func WithHTTPClient(c *http.Client) WireOption { return func(o *wireOptions) { o.http = c } }

// WithOutput sets where rendered states are written. Defaults to stdout.
func WithOutput(w io.Writer) WireOption { return func(o *wireOptions) { o.out = w } }

// WithLogger sets the logger. Defaults to one built from Config on stderr.
func WithLogger(l *slog.Logger) WireOption { return func(o *wireOptions) { o.logger = l } }

// WithSchoolService replaces the HTTP remote service.
func WithSchoolService(s domain.SchoolService) WireOption {
	return func(o *wireOptions) { o.service = s }
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, opts ...WireOption) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	o := wireOptions{out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if logger == nil {
		if logger, err = NewLogger(cfg, os.Stderr); err != nil {
			return nil, err
		}
	}

	// Ensure an HTTP client is available for outbound calls
	httpClient := o.http
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	recorder := metrics.NewPrometheusRecorder(nil)

	rc := remote.NewHTTP(cfg.BaseURL, httpClient,
		remote.WithAppToken(cfg.AppToken),
		remote.WithRateLimit(cfg.RateLimit),
		remote.WithLogger(logger),
		remote.WithMetrics(recorder))
	var svc domain.SchoolService = rc
	if o.service != nil {
		svc = o.service
	}

	w := &Wire{
		Config:  cfg,
		Logger:  logger,
		Metrics: recorder,
		Remote:  rc,
		HTTP:    httpClient,
	}

	w.Selections, err = w.openStore()
	if err != nil {
		return nil, err
	}

	format, err := render.ParseFormat(cfg.Output)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	if w.Sink, err = render.New(format, o.out); err != nil {
		_ = w.Close()
		return nil, err
	}
	if c, ok := w.Sink.(io.Closer); ok {
		w.closers = append(w.closers, c)
	}

	w.Schools = school.New(svc,
		school.WithLogger(logger),
		school.WithMetrics(recorder))
	w.Coordinator = coordinator.New(w.Schools, w.Selections,
		coordinator.WithLogger(logger),
		coordinator.WithMetrics(recorder),
		coordinator.WithLoadingDelays(cfg.ListDelay, cfg.ScoresDelay))
	return w, nil
}

func (w *Wire) openStore() (domain.SelectionStore, error) {
	cfg := w.Config
	if cfg.Store == StoreMemory {
		w.Logger.Debug("selection store opened", logfields.Store(StoreMemory))
		return store.NewMemoryStore(), nil
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, fmt.Errorf("create home: %w", err)
	}
	switch cfg.Store {
	case StoreSQLite:
		s, err := store.OpenSQLite(store.SQLitePath(cfg.Home))
		if err != nil {
			return nil, err
		}
		w.closers = append(w.closers, s)
		w.Logger.Debug("selection store opened", logfields.Store(StoreSQLite))
		return s, nil
	default:
		w.Logger.Debug("selection store opened", logfields.Store(StoreFile))
		return store.NewFileStore(cfg.Home), nil
	}
}

// Close releases the store and flushes the sink.
func (w *Wire) Close() error {
	var errs []error
	for i := len(w.closers) - 1; i >= 0; i-- {
		errs = append(errs, w.closers[i].Close())
	}
	w.closers = nil
	return errors.Join(errs...)
}
