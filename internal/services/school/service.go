package school

import (
	"context"
	"log/slog"
	"time"

	"nycschools/internal/domain"
	"nycschools/internal/logfields"
	"nycschools/internal/metrics"
	"nycschools/internal/result"
)

const (
	opFetchSchools       = "fetch_schools"
	opFetchAverageScores = "fetch_average_scores"
)

// Service wraps a domain.SchoolService and classifies its failures.
type Service struct {
	remote  domain.SchoolService
	logger  *slog.Logger
	metrics metrics.Recorder
}

// Option customises a Service.
type Option func(*Service)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option { return func(s *Service) { s.logger = l } }

// WithMetrics sets the metrics recorder.
func WithMetrics(r metrics.Recorder) Option { return func(s *Service) { s.metrics = r } }

// New constructs a Service over remote.
func New(remote domain.SchoolService, opts ...Option) *Service {
	s := &Service{
		remote:  remote,
		logger:  slog.Default(),
		metrics: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchSchools returns the schools in the order the remote service sent them.
func (s *Service) FetchSchools(
	ctx context.Context,
) result.Result[[]domain.School, *domain.SchoolError] {
	start := time.Now()
	schools, err := s.remote.FetchSchools(ctx)
	if err != nil {
		return result.Fail[[]domain.School](s.fail(opFetchSchools, start, err))
	}
	s.logger.Debug("schools fetched",
		logfields.Operation(opFetchSchools),
		logfields.Count(len(schools)),
		logfields.Duration(time.Since(start)))
	return result.Ok[[]domain.School, *domain.SchoolError](schools)
}

// FetchAverageScores returns the first score record whose id equals id. A
// missing record is a service error without a cause.
func (s *Service) FetchAverageScores(
	ctx context.Context,
	id domain.SchoolID,
) result.Result[domain.AverageScores, *domain.SchoolError] {
	start := time.Now()
	records, err := s.remote.FetchSATScores(ctx)
	if err != nil {
		return result.Fail[domain.AverageScores](s.fail(opFetchAverageScores, start, err))
	}
	for _, rec := range records {
		if rec.ID == id {
			s.logger.Debug("average scores found",
				logfields.Operation(opFetchAverageScores),
				logfields.SchoolID(id.String()),
				logfields.Duration(time.Since(start)))
			return result.Ok[domain.AverageScores, *domain.SchoolError](rec)
		}
	}
	s.metrics.IncDomainError(opFetchAverageScores, string(domain.KindService))
	s.logger.Info("no average scores for school",
		logfields.Operation(opFetchAverageScores),
		logfields.SchoolID(id.String()),
		logfields.Count(len(records)))
	return result.Fail[domain.AverageScores](domain.ServiceError(nil))
}

func (s *Service) fail(op string, start time.Time, err error) *domain.SchoolError {
	se := domain.ClassifyError(err)
	s.metrics.IncDomainError(op, string(se.Kind))
	s.logger.Warn("remote call failed",
		logfields.Operation(op),
		logfields.ErrorKind(string(se.Kind)),
		logfields.Duration(time.Since(start)),
		logfields.Error(err))
	return se
}

// Compile-time assertion that Service implements domain.SchoolDomain.
var _ domain.SchoolDomain = (*Service)(nil)
