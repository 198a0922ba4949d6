package school_test

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nycschools/internal/domain"
	"nycschools/internal/schooltest"
	"nycschools/internal/services/school"
)

func TestFetchSchools_ReturnsRemoteOrderUnchanged(t *testing.T) {
	svc := school.New(schooltest.New())

	got, ok := svc.FetchSchools(context.Background()).Value()
	require.True(t, ok)
	assert.Equal(t, schooltest.Schools(), got)
}

func TestFetchSchools_ClassifiesFailures(t *testing.T) {
	transport := &url.Error{Op: "Get", URL: "http://x", Err: errors.New("connection reset")}
	svc := school.New(schooltest.New().FailSchools(transport))

	err, failed := svc.FetchSchools(context.Background()).Err()
	require.True(t, failed)
	assert.Equal(t, domain.KindNetwork, err.Kind)
	assert.ErrorIs(t, err, transport)

	svc = school.New(schooltest.New().FailSchools(errors.New("unexpected shape")))
	err, failed = svc.FetchSchools(context.Background()).Err()
	require.True(t, failed)
	assert.Equal(t, domain.KindService, err.Kind)
}

func TestFetchAverageScores_ReturnsMatchingRecord(t *testing.T) {
	svc := school.New(schooltest.New())

	for _, want := range schooltest.Scores() {
		got, ok := svc.FetchAverageScores(context.Background(), want.ID).Value()
		require.True(t, ok, want.ID)
		assert.Equal(t, want, got)
	}
}

func TestFetchAverageScores_MissingRecordIsServiceErrorWithoutCause(t *testing.T) {
	svc := school.New(schooltest.New())

	err, failed := svc.FetchAverageScores(context.Background(), "nope").Err()
	require.True(t, failed)
	assert.Equal(t, domain.KindService, err.Kind)
	assert.Nil(t, err.Cause)
}

func TestFetchAverageScores_RemoteFailureIsClassified(t *testing.T) {
	svc := school.New(schooltest.New().FailScores(context.DeadlineExceeded))

	err, failed := svc.FetchAverageScores(context.Background(), "97f").Err()
	require.True(t, failed)
	assert.Equal(t, domain.KindNetwork, err.Kind)
}

func TestFetchAverageScores_FirstMatchWins(t *testing.T) {
	fake := schooltest.New()
	dup := append(schooltest.Scores(), domain.AverageScores{ID: "97f", Math: domain.NewScore("1")})
	svc := school.New(&scoresOnly{Service: fake, scores: dup})

	got, ok := svc.FetchAverageScores(context.Background(), "97f").Value()
	require.True(t, ok)
	assert.Equal(t, "124", got.Math.String())
}

type scoresOnly struct {
	*schooltest.Service
	scores []domain.AverageScores
}

func (s *scoresOnly) FetchSATScores(context.Context) ([]domain.AverageScores, error) {
	return s.scores, nil
}
