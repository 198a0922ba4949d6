package remote_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nycschools/internal/domain"
	"nycschools/internal/remote"
)

func newServer(t *testing.T, h http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchSchools_DecodesDirectory(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/resource/"+remote.SchoolsResource, r.URL.Path)
		assert.Equal(t, "tok", r.Header.Get("X-App-Token"))
		_, _ = w.Write([]byte(`[{"dbn":"w3","school_name":"A School 3","borough":"M"},{"dbn":"97f","school_name":"S School 2"}]`))
	})

	c := remote.NewHTTP(srv.URL+"/resource", srv.Client(), remote.WithAppToken("tok"))
	got, err := c.FetchSchools(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.School{
		{ID: "w3", Name: "A School 3"},
		{ID: "97f", Name: "S School 2"},
	}, got)
}

func TestFetchSATScores_DecodesRecords(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/"+remote.ScoresResource, r.URL.Path)
		_, _ = w.Write([]byte(`[{"dbn":"97f","sat_math_avg_score":"124","sat_critical_reading_avg_score":"23","sat_writing_avg_score":"333"}]`))
	})

	got, err := remote.NewHTTP(srv.URL, srv.Client()).FetchSATScores(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	math, ok := got[0].Math.Value()
	require.True(t, ok)
	assert.Equal(t, 124, math)
}

func TestFetch_NonSuccessStatusIsServiceError(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})

	_, err := remote.NewHTTP(srv.URL, srv.Client()).FetchSchools(context.Background())
	var se *remote.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
	assert.Equal(t, domain.KindService, domain.ClassifyError(err).Kind)
}

func TestFetch_MalformedBodyIsServiceError(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	})

	_, err := remote.NewHTTP(srv.URL, srv.Client()).FetchSchools(context.Background())
	require.Error(t, err)
	assert.Equal(t, domain.KindService, domain.ClassifyError(err).Kind)
}

func TestFetch_EmptyOrTruncatedBodyIsServiceError(t *testing.T) {
	for name, body := range map[string]string{
		"empty":     ``,
		"truncated": `[{"dbn":"w3","school_name":`,
	} {
		t.Run(name, func(t *testing.T) {
			srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			})

			_, err := remote.NewHTTP(srv.URL, srv.Client()).FetchSchools(context.Background())
			require.Error(t, err)
			assert.Equal(t, domain.KindService, domain.ClassifyError(err).Kind)
		})
	}
}

func TestFetch_RateWaitPastDeadlineIsNetworkError(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})
	c := remote.NewHTTP(srv.URL, srv.Client(), remote.WithRateLimit(0.001))

	_, err := c.FetchSchools(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err = c.FetchSchools(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, domain.KindNetwork, domain.ClassifyError(err).Kind)
}

func TestFetch_ConnectionFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	_, err := remote.NewHTTP(base, nil).FetchSchools(context.Background())
	require.Error(t, err)
	assert.Equal(t, domain.KindNetwork, domain.ClassifyError(err).Kind)
}

func TestFetch_HonoursCancellation(t *testing.T) {
	release := make(chan struct{})
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := remote.NewHTTP(srv.URL, srv.Client()).FetchSATScores(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWithRateLimit_ZeroDisables(t *testing.T) {
	c := remote.NewHTTP("http://example.invalid", nil, remote.WithRateLimit(0))
	assert.Nil(t, c.Limiter)
	c = remote.NewHTTP("http://example.invalid", nil, remote.WithRateLimit(2))
	assert.NotNil(t, c.Limiter)
}
