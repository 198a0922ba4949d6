package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder_Counts(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.IncCacheLookup(true)
	pr.IncCacheLookup(false)
	pr.IncCacheLookup(true)
	pr.IncStatePublished("school_list")
	pr.IncStaleResult("show_scores")
	pr.IncDomainError("fetch_schools", "network")
	pr.ObserveRemoteRequest("schools", 20*time.Millisecond, ResultSuccess)

	assert.InDelta(t, 2, testutil.ToFloat64(pr.cacheLookups.WithLabelValues("hit")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.cacheLookups.WithLabelValues("miss")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.statesPublished.WithLabelValues("school_list")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.staleResults.WithLabelValues("show_scores")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.remoteResults.WithLabelValues("schools", "success")), 0)
}

func TestPrometheusRecorder_Handler(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	pr.IncStatePublished("loading")

	rec := httptest.NewRecorder()
	pr.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `nycschools_ui_states_published_total{kind="loading"} 1`))
}

func TestNilRecorderIsSafe(t *testing.T) {
	var pr *PrometheusRecorder
	pr.IncCacheLookup(true)
	pr.ObserveRemoteRequest("scores", time.Second, ResultFailed)
}
