// Package service centralizes the application's use cases behind a single
// interface consumed by the CLI, the REPL, and the HTTP server: batch
// solving, single-bound sums, and Fibonacci analyses.
package service

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"
	"errors"
	"math/big"

	"github.com/agbru/eulerbatch/internal/batch"
	"github.com/agbru/eulerbatch/internal/euler"
)

var (
	// ErrBatchTooLarge is returned when a batch exceeds the configured
	// maximum query count.
	ErrBatchTooLarge = errors.New("batch exceeds the maximum query count")
)

// Service defines the interface for the application's query operations.
// This abstraction enables dependency injection and easier testing/mocking.
type Service interface {
	// SolveBatch answers every query in the batch, in order.
	//
	// Parameters:
	//   - ctx: The context for cancellation.
	//   - queries: The bounds to solve.
	//
	// Returns:
	//   - []uint64: One sum per query, positionally aligned with the input.
	//   - error: An error if validation or solving fails.
	SolveBatch(ctx context.Context, queries []uint64) ([]uint64, error)

	// Sum answers a single bound.
	Sum(ctx context.Context, n uint64) (uint64, error)

	// EvenFibonacci runs a filtered Fibonacci analysis up to limit.
	EvenFibonacci(ctx context.Context, limit uint64, filter euler.Filter) (*euler.Analysis, error)
}

// SolverService implements Service on top of the batch solver and the
// closed-form core.
type SolverService struct {
	solver     *batch.Solver
	maxQueries int
}

// Ensure SolverService implements Service interface.
var _ Service = (*SolverService)(nil)

// NewSolverService creates a new SolverService.
//
// Parameters:
//   - solver: The batch solver to delegate to. Must not be nil.
//   - maxQueries: The maximum accepted batch size (0 for no limit).
func NewSolverService(solver *batch.Solver, maxQueries int) *SolverService {
	return &SolverService{
		solver:     solver,
		maxQueries: maxQueries,
	}
}

// SolveBatch validates the batch size and delegates to the solver.
func (s *SolverService) SolveBatch(ctx context.Context, queries []uint64) ([]uint64, error) {
	if s.maxQueries > 0 && len(queries) > s.maxQueries {
		return nil, ErrBatchTooLarge
	}
	return s.solver.Solve(ctx, queries)
}

// Sum answers a single bound through the batch pipeline, so validation,
// metrics, and tracing behave identically to a one-element batch.
func (s *SolverService) Sum(ctx context.Context, n uint64) (uint64, error) {
	results, err := s.solver.Solve(ctx, []uint64{n})
	if err != nil {
		return 0, err
	}
	return results[0], nil
}

// EvenFibonacci runs a filtered Fibonacci analysis up to limit.
func (s *SolverService) EvenFibonacci(ctx context.Context, limit uint64, filter euler.Filter) (*euler.Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return euler.Analyze(new(big.Int).SetUint64(limit), filter)
}
