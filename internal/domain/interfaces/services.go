package interfaces

import (
	"context"

	domaintypes "nycschools/internal/domain/types"
	"nycschools/internal/result"
)

// SchoolService is the remote source of schools and SAT score records.
// Both collections are unordered.
type SchoolService interface {
	FetchSchools(ctx context.Context) ([]domaintypes.School, error)
	FetchSATScores(ctx context.Context) ([]domaintypes.AverageScores, error)
}

// SchoolDomain converts SchoolService calls into typed results.
type SchoolDomain interface {
	FetchSchools(ctx context.Context) result.Result[[]domaintypes.School, *domaintypes.SchoolError]
	FetchAverageScores(
		ctx context.Context,
		id domaintypes.SchoolID,
	) result.Result[domaintypes.AverageScores, *domaintypes.SchoolError]
}
