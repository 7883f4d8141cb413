package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/agbru/eulerbatch/internal/batch"
	apperrors "github.com/agbru/eulerbatch/internal/errors"
	"github.com/agbru/eulerbatch/internal/euler"
)

func newTestService(maxQueries int) *SolverService {
	return NewSolverService(batch.NewSolver(nil), maxQueries)
}

func TestSolverService_SolveBatch(t *testing.T) {
	svc := newTestService(100)

	got, err := svc.SolveBatch(context.Background(), []uint64{10, 100, 10, 100})
	if err != nil {
		t.Fatalf("SolveBatch returned error: %v", err)
	}
	want := []uint64{23, 2318, 23, 2318}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SolveBatch = %v, want %v", got, want)
	}
}

func TestSolverService_SolveBatch_TooLarge(t *testing.T) {
	svc := newTestService(2)

	_, err := svc.SolveBatch(context.Background(), []uint64{10, 100, 1000})
	if !errors.Is(err, ErrBatchTooLarge) {
		t.Errorf("SolveBatch error = %v, want ErrBatchTooLarge", err)
	}
}

func TestSolverService_SolveBatch_NoLimitWhenZero(t *testing.T) {
	svc := newTestService(0)

	queries := make([]uint64, 500)
	for i := range queries {
		queries[i] = 10
	}
	got, err := svc.SolveBatch(context.Background(), queries)
	if err != nil {
		t.Fatalf("SolveBatch returned error: %v", err)
	}
	if len(got) != 500 || got[0] != 23 {
		t.Errorf("SolveBatch returned %d results (first %d), want 500 results of 23", len(got), got[0])
	}
}

func TestSolverService_Sum(t *testing.T) {
	svc := newTestService(100)

	got, err := svc.Sum(context.Background(), 1000)
	if err != nil {
		t.Fatalf("Sum returned error: %v", err)
	}
	if got != 233168 {
		t.Errorf("Sum(1000) = %d, want 233168", got)
	}
}

func TestSolverService_Sum_InvalidBound(t *testing.T) {
	svc := newTestService(100)

	_, err := svc.Sum(context.Background(), 0)
	if !apperrors.IsInvalidArgument(err) {
		t.Errorf("Sum(0) error = %v, want an InvalidArgumentError", err)
	}
}

func TestSolverService_EvenFibonacci(t *testing.T) {
	svc := newTestService(100)

	an, err := svc.EvenFibonacci(context.Background(), euler.DefaultFibLimit, euler.FilterEven)
	if err != nil {
		t.Fatalf("EvenFibonacci returned error: %v", err)
	}
	if an.Sum.Int64() != 4_613_732 {
		t.Errorf("EvenFibonacci sum = %s, want 4613732", an.Sum)
	}
}

func TestSolverService_EvenFibonacci_CanceledContext(t *testing.T) {
	svc := newTestService(100)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.EvenFibonacci(ctx, 100, euler.FilterEven)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("EvenFibonacci error = %v, want context.Canceled", err)
	}
}
