// Package schooltest provides an in-memory domain.SchoolService for tests,
// with call counting, injectable failures and per-call gates for ordering
// scenarios.
package schooltest

import (
	"context"
	"sync"

	"nycschools/internal/domain"
)

// Schools is the reference school fixture, in remote (unsorted) order.
func Schools() []domain.School {
	return []domain.School{
		{ID: "342", Name: "Z School 1"},
		{ID: "97f", Name: "S School 2"},
		{ID: "w3", Name: "A School 3"},
	}
}

// Scores is the reference score fixture, one record per school in Schools.
func Scores() []domain.AverageScores {
	return []domain.AverageScores{
		{ID: "342", Math: domain.NewScore("233"), Reading: domain.NewScore("400"), Writing: domain.NewScore("34")},
		{ID: "w3", Math: domain.NewScore("s"), Reading: domain.NewScore("s"), Writing: domain.NewScore("s")},
		{ID: "97f", Math: domain.NewScore("124"), Reading: domain.NewScore("23"), Writing: domain.NewScore("333")},
	}
}

// Service is a configurable fake of domain.SchoolService.
type Service struct {
	mu          sync.Mutex
	schools     []domain.School
	scores      []domain.AverageScores
	schoolsErr  error
	scoresErr   error
	schoolCalls int
	scoreCalls  int
	scoreGates  []chan struct{}
	scoreStarts chan struct{}
	deaf        bool
}

// New returns a fake serving the reference fixtures.
func New() *Service {
	return &Service{
		schools:     Schools(),
		scores:      Scores(),
		scoreStarts: make(chan struct{}, 64),
	}
}

// WithSchools replaces the served schools.
func (s *Service) WithSchools(schools []domain.School) *Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schools = schools
	return s
}

// FailSchools makes FetchSchools return err.
func (s *Service) FailSchools(err error) *Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schoolsErr = err
	return s
}

// FailScores makes FetchSATScores return err.
func (s *Service) FailScores(err error) *Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scoresErr = err
	return s
}

// GateScores makes the next FetchSATScores calls block, in order, until the
// returned channels are closed or the call's context ends.
func (s *Service) GateScores(n int) []chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	gates := make([]chan struct{}, n)
	for i := range gates {
		gates[i] = make(chan struct{})
	}
	s.scoreGates = append(s.scoreGates, gates...)
	return gates
}

// IgnoreCancellation makes gated calls wait for their gate even after their
// context ends, like a remote service that cannot be interrupted.
func (s *Service) IgnoreCancellation() *Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deaf = true
	return s
}

// ScoreStarts receives one value each time FetchSATScores is entered.
func (s *Service) ScoreStarts() <-chan struct{} { return s.scoreStarts }

// SchoolCalls returns how many times FetchSchools was called.
func (s *Service) SchoolCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.schoolCalls
}

// ScoreCalls returns how many times FetchSATScores was called.
func (s *Service) ScoreCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scoreCalls
}

// FetchSchools implements domain.SchoolService.
func (s *Service) FetchSchools(ctx context.Context) ([]domain.School, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schoolCalls++
	if s.schoolsErr != nil {
		return nil, s.schoolsErr
	}
	return append([]domain.School(nil), s.schools...), nil
}

// FetchSATScores implements domain.SchoolService.
func (s *Service) FetchSATScores(ctx context.Context) ([]domain.AverageScores, error) {
	s.mu.Lock()
	s.scoreCalls++
	var gate chan struct{}
	if len(s.scoreGates) > 0 {
		gate = s.scoreGates[0]
		s.scoreGates = s.scoreGates[1:]
	}
	done := ctx.Done()
	if s.deaf {
		done = nil
	}
	s.mu.Unlock()

	select {
	case s.scoreStarts <- struct{}{}:
	default:
	}
	if gate != nil {
		select {
		case <-gate:
		case <-done:
			return nil, ctx.Err()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scoresErr != nil {
		return nil, s.scoresErr
	}
	return append([]domain.AverageScores(nil), s.scores...), nil
}

var _ domain.SchoolService = (*Service)(nil)
