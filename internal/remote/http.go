package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"nycschools/internal/domain"
	"nycschools/internal/logfields"
	"nycschools/internal/metrics"
)

const (
	// DefaultBaseURL is the NYC Open Data resource root.
	DefaultBaseURL = "https://data.cityofnewyork.us/resource/"

	SchoolsResource = "s3k6-pzi2.json"
	ScoresResource  = "f9bf-2cp4.json"

	appTokenHeader = "X-App-Token"
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Status)
}

// HTTP talks to the school data service.
type HTTP struct {
	Base     string
	HTTP     *http.Client
	AppToken string
	Limiter  *rate.Limiter
	Logger   *slog.Logger
	Metrics  metrics.Recorder
}

// Option customises an HTTP client.
type Option func(*HTTP)

// WithAppToken sends token as the Socrata application token.
func WithAppToken(token string) Option { return func(c *HTTP) { c.AppToken = token } }

// WithRateLimit limits outgoing requests to rps per second. Zero disables it.
func WithRateLimit(rps float64) Option {
	return func(c *HTTP) {
		if rps > 0 {
			c.Limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option { return func(c *HTTP) { c.Logger = l } }

// WithMetrics sets the metrics recorder.
func WithMetrics(r metrics.Recorder) Option { return func(c *HTTP) { c.Metrics = r } }

// NewHTTP returns a client rooted at base. A nil httpClient uses http.DefaultClient.
func NewHTTP(base string, httpClient *http.Client, opts ...Option) *HTTP {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	c := &HTTP{
		Base:    base,
		HTTP:    httpClient,
		Logger:  slog.Default(),
		Metrics: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchSchools returns the unordered school directory.
func (c *HTTP) FetchSchools(ctx context.Context) ([]domain.School, error) {
	var out []domain.School
	if err := c.getJSON(ctx, SchoolsResource, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchSATScores returns the unordered SAT score records.
func (c *HTTP) FetchSATScores(ctx context.Context) ([]domain.AverageScores, error) {
	var out []domain.AverageScores
	if err := c.getJSON(ctx, ScoresResource, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTP) getJSON(ctx context.Context, resource string, out any) (err error) {
	start := time.Now()
	u := c.Base + resource
	defer func() {
		d := time.Since(start)
		c.Metrics.ObserveRemoteRequest(resource, d, metrics.ResultOf(err))
		c.Logger.Debug("remote request",
			logfields.URL(u),
			logfields.Duration(d),
			logfields.Error(err))
	}()

	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			if ctx.Err() == nil {
				// The wait would outlast the deadline.
				return fmt.Errorf("rate wait: %w", context.DeadlineExceeded)
			}
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.AppToken != "" {
		req.Header.Set(appTokenHeader, c.AppToken)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &StatusError{Method: http.MethodGet, URL: u, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	// Read errors are transport failures; anything the body fails to decode
	// into is the service's fault.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s: %w", resource, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return domain.ServiceError(fmt.Errorf("decode %s: %w", resource, err))
	}
	return nil
}

var _ domain.SchoolService = (*HTTP)(nil)
