package coordinator

import (
	"context"
	"errors"
	"slices"
	"strings"

	"nycschools/internal/domain"
	"nycschools/internal/result"
)

const schoolsFlight = "schools"

// loadSchools returns the cached list or fetches, sorts and caches it.
// Concurrent misses share one remote call.
func (c *Coordinator) loadSchools(ctx context.Context) schoolResult {
	if schools, ok := c.cached(); ok {
		c.metrics.IncCacheLookup(true)
		return result.Ok[[]domain.School, *domain.SchoolError](schools)
	}
	c.metrics.IncCacheLookup(false)

	ch := c.loads.DoChan(schoolsFlight, func() (any, error) {
		if schools, ok := c.cached(); ok {
			return schools, nil
		}
		// Detached: another operation may be waiting on this flight after
		// the one that started it was superseded.
		fetched, err, ok := c.domain.FetchSchools(context.WithoutCancel(ctx)).Get()
		if !ok {
			return nil, err
		}
		return c.populate(fetched), nil
	})

	select {
	case <-ctx.Done():
		return result.Fail[[]domain.School](domain.ClassifyError(ctx.Err()))
	case res := <-ch:
		if res.Err != nil {
			var se *domain.SchoolError
			if !errors.As(res.Err, &se) {
				se = domain.ClassifyError(res.Err)
			}
			return result.Fail[[]domain.School](se)
		}
		return result.Ok[[]domain.School, *domain.SchoolError](res.Val.([]domain.School))
	}
}

func (c *Coordinator) cached() ([]domain.School, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.schools, c.loaded
}

// populate sorts fetched by name, drops repeated ids and stores the result
// as the cache in one step. An already populated cache wins.
func (c *Coordinator) populate(fetched []domain.School) []domain.School {
	sorted := sortSchools(fetched)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		c.schools = sorted
		c.loaded = true
	}
	return c.schools
}

// sortSchools keeps the first school of each id and orders the rest by name,
// stable for equal names. The result is shorter than fetched when the remote
// repeats an id; every id still appears exactly once.
func sortSchools(fetched []domain.School) []domain.School {
	seen := make(map[domain.SchoolID]struct{}, len(fetched))
	out := make([]domain.School, 0, len(fetched))
	for _, s := range fetched {
		if _, dup := seen[s.ID]; dup {
			continue
		}
		seen[s.ID] = struct{}{}
		out = append(out, s)
	}
	slices.SortStableFunc(out, func(a, b domain.School) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}
