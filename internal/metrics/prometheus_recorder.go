package metrics

import (
	"net/http"
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once            sync.Once
	reg             *prom.Registry
	remoteDuration  *prom.HistogramVec
	remoteResults   *prom.CounterVec
	domainErrors    *prom.CounterVec
	cacheLookups    *prom.CounterVec
	statesPublished *prom.CounterVec
	staleResults    *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers the collectors on reg. A nil
// reg gets a fresh registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{reg: reg}
	pr.once.Do(func() {
		pr.remoteDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "nycschools",
			Name:      "remote_request_duration_seconds",
			Help:      "Duration of requests to the school data service",
			Buckets:   prom.DefBuckets,
		}, []string{"resource", "result"})
		pr.remoteResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "nycschools",
			Name:      "remote_requests_total",
			Help:      "Requests to the school data service by outcome",
		}, []string{"resource", "result"})
		pr.domainErrors = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "nycschools",
			Name:      "domain_errors_total",
			Help:      "Typed domain errors by operation and kind",
		}, []string{"operation", "kind"})
		pr.cacheLookups = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "nycschools",
			Name:      "school_cache_lookups_total",
			Help:      "School list cache lookups by outcome",
		}, []string{"outcome"})
		pr.statesPublished = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "nycschools",
			Name:      "ui_states_published_total",
			Help:      "Published UI states by kind",
		}, []string{"kind"})
		pr.staleResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "nycschools",
			Name:      "stale_results_total",
			Help:      "Results dropped because a newer operation superseded them",
		}, []string{"operation"})
		reg.MustRegister(pr.remoteDuration, pr.remoteResults, pr.domainErrors, pr.cacheLookups, pr.statesPublished, pr.staleResults)
	})
	return pr
}

// Handler exposes the recorder's registry in the Prometheus text format.
func (p *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(p.reg, promhttp.HandlerOpts{})
}

func (p *PrometheusRecorder) ObserveRemoteRequest(resource string, d time.Duration, result ResultLabel) {
	if p == nil || p.remoteDuration == nil {
		return
	}
	p.remoteDuration.WithLabelValues(resource, string(result)).Observe(d.Seconds())
	p.remoteResults.WithLabelValues(resource, string(result)).Inc()
}

func (p *PrometheusRecorder) IncDomainError(operation, kind string) {
	if p == nil || p.domainErrors == nil {
		return
	}
	p.domainErrors.WithLabelValues(operation, kind).Inc()
}

func (p *PrometheusRecorder) IncCacheLookup(hit bool) {
	if p == nil || p.cacheLookups == nil {
		return
	}
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	p.cacheLookups.WithLabelValues(outcome).Inc()
}

func (p *PrometheusRecorder) IncStatePublished(kind string) {
	if p == nil || p.statesPublished == nil {
		return
	}
	p.statesPublished.WithLabelValues(kind).Inc()
}

func (p *PrometheusRecorder) IncStaleResult(operation string) {
	if p == nil || p.staleResults == nil {
		return
	}
	p.staleResults.WithLabelValues(operation).Inc()
}

var (
	_ Recorder = (*PrometheusRecorder)(nil)
	_ Recorder = NoopRecorder{}
)
