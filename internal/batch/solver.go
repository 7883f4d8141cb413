//go:generate mockgen -source=solver.go -destination=mocks/mock_formula.go -package=mocks

package batch

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/eulerbatch/internal/errors"
	"github.com/agbru/eulerbatch/internal/euler"
	"github.com/agbru/eulerbatch/internal/logging"
	"github.com/agbru/eulerbatch/internal/metrics"
)

// MaxBound is the largest bound the solver accepts. The closed-form sum for
// any bound up to this value fits in 63 bits, so uint64 arithmetic is exact.
const MaxBound uint64 = 1_000_000_000

// Formula evaluates the combined closed-form sum for one bound. It is the
// seam between the batch pipeline and the number-theory core, and the point
// where tests substitute counting or failing implementations.
type Formula interface {
	// SumMultiplesOf3Or5Below returns the sum of multiples of 3 or 5
	// strictly below n.
	SumMultiplesOf3Or5Below(n uint64) (uint64, error)
}

// FormulaFunc adapts a plain function to the Formula interface.
type FormulaFunc func(n uint64) (uint64, error)

// SumMultiplesOf3Or5Below calls f(n).
func (f FormulaFunc) SumMultiplesOf3Or5Below(n uint64) (uint64, error) {
	return f(n)
}

// ClosedFormFormula returns the production Formula backed by the
// arithmetic-series closed form.
func ClosedFormFormula() Formula {
	return FormulaFunc(euler.SumMultiplesOf3Or5Below)
}

// Solver executes batches of sum queries. The solve path is strictly
// sequential: each distinct bound costs a handful of integer operations, so
// coordination overhead would dwarf the work being coordinated.
type Solver struct {
	formula Formula
	logger  logging.Logger
	metrics *metrics.SolverMetrics
	tracer  trace.Tracer
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the solver's logger.
func WithLogger(logger logging.Logger) Option {
	return func(s *Solver) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics sets the solver's metrics recorder.
func WithMetrics(m *metrics.SolverMetrics) Option {
	return func(s *Solver) {
		if m != nil {
			s.metrics = m
		}
	}
}

// NewSolver creates a Solver backed by the given formula. A nil formula
// falls back to the production closed form.
func NewSolver(formula Formula, opts ...Option) *Solver {
	if formula == nil {
		formula = ClosedFormFormula()
	}
	s := &Solver{
		formula: formula,
		logger:  logging.NewDefaultLogger(),
		metrics: metrics.NewSolverMetrics(),
		tracer:  otel.Tracer("eulerbatch/batch"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve answers every query in the batch, in order.
//
// The pipeline runs in four phases: validate every bound up front (fail-fast,
// nothing is computed if any bound is invalid), deduplicate the batch,
// evaluate the formula once per distinct bound into a per-batch cache, and
// expand the cache back over the original query order.
//
// Parameters:
//   - ctx: Cancellation context, checked between formula evaluations.
//   - queries: The bounds to solve, 1 <= N <= MaxBound each.
//
// Returns:
//   - []uint64: One sum per query, positionally aligned with the input.
//   - error: An InvalidArgumentError for an out-of-range bound, the context
//     error on cancellation, or a MissingCacheEntryError if the cache
//     invariant is violated (a bug, never expected in practice).
func (s *Solver) Solve(ctx context.Context, queries []uint64) ([]uint64, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "batch.solve",
		trace.WithAttributes(attribute.Int("batch.size", len(queries))))
	defer span.End()

	if err := validateQueries(queries); err != nil {
		span.RecordError(err)
		return nil, err
	}

	unique := Deduplicate(queries)
	span.SetAttributes(attribute.Int("batch.unique", len(unique)))

	cache := NewResultCache(len(unique))
	for _, n := range unique {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			return nil, err
		}
		sum, err := s.formula.SumMultiplesOf3Or5Below(n)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		cache.Put(n, sum)
	}

	results := make([]uint64, len(queries))
	for i, n := range queries {
		sum, err := cache.Get(n)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		results[i] = sum
	}

	s.metrics.ObserveBatch(len(queries), len(unique))
	s.logger.Debug("batch solved",
		logging.Int("queries", len(queries)),
		logging.Int("unique", len(unique)),
		logging.Dur("elapsed", time.Since(start)),
	)
	return results, nil
}

// validateQueries checks every bound before any computation starts.
func validateQueries(queries []uint64) error {
	for _, n := range queries {
		if n < 1 {
			return apperrors.NewInvalidArgument("n", n, "must be at least 1")
		}
		if n > MaxBound {
			return apperrors.NewInvalidArgument("n", n, "exceeds the maximum supported bound")
		}
	}
	return nil
}
