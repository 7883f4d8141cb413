package euler

import (
	"errors"
	"fmt"
	"math/big"

	apperrors "github.com/agbru/eulerbatch/internal/errors"
)

// DefaultFibLimit is the canonical example bound for even-Fibonacci sums.
const DefaultFibLimit uint64 = 4_000_000

// ErrUnknownFilter is returned when a Fibonacci filter name is not recognized.
var ErrUnknownFilter = errors.New("unknown fibonacci filter")

// Filter selects which Fibonacci terms an analysis considers.
type Filter string

// Supported Fibonacci filters.
const (
	FilterAll  Filter = "all"
	FilterEven Filter = "even"
	FilterOdd  Filter = "odd"
)

// ParseFilter converts a user-supplied filter name into a Filter.
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case FilterAll, FilterEven, FilterOdd:
		return Filter(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFilter, s)
}

// Analysis holds the result of a filtered Fibonacci sequence analysis up to a
// limit. GLB is the greatest term not exceeding the limit (greatest lower
// bound) and LUB is the least term exceeding it (least upper bound); together
// they bracket the limit within the filtered subsequence.
type Analysis struct {
	Filter Filter
	Limit  *big.Int
	Sum    *big.Int
	Terms  []*big.Int
	Count  int
	GLB    *big.Int
	LUB    *big.Int
}

// SumEvenFibonacciBelow returns the sum of the even-valued Fibonacci terms
// not exceeding limit. Instead of generating the full sequence and filtering,
// it uses the direct even-term recurrence
//
//	E(1) = 2, E(2) = 8, E(n) = 4*E(n-1) + E(n-2)
//
// which visits only every third Fibonacci number. Arbitrary-precision
// arithmetic is used throughout; no ceiling on limit is assumed.
//
// Parameters:
//   - limit: The inclusive bound (limit >= 0).
//
// Returns:
//   - *big.Int: The exact sum (0 when limit < 2).
//   - error: An InvalidArgumentError if limit is nil or negative.
func SumEvenFibonacciBelow(limit *big.Int) (*big.Int, error) {
	if err := validateLimit(limit); err != nil {
		return nil, err
	}
	return sumEvenFibonacci(limit), nil
}

// SumEvenFibonacciBelowUint64 is a convenience wrapper for uint64 limits.
func SumEvenFibonacciBelowUint64(limit uint64) (*big.Int, error) {
	return SumEvenFibonacciBelow(new(big.Int).SetUint64(limit))
}

// Analyze computes the filtered Fibonacci analysis (sum, terms, count, GLB,
// LUB) up to the given limit. The even filter uses the direct even-term
// recurrence; the odd filter walks the standard sequence and skips even terms.
//
// Parameters:
//   - limit: The inclusive bound (limit >= 0).
//   - f: The term filter (FilterAll, FilterEven, or FilterOdd).
//
// Returns:
//   - *Analysis: The completed analysis.
//   - error: An InvalidArgumentError for a nil or negative limit, or
//     ErrUnknownFilter for an unrecognized filter.
func Analyze(limit *big.Int, f Filter) (*Analysis, error) {
	if err := validateLimit(limit); err != nil {
		return nil, err
	}

	switch f {
	case FilterAll:
		return analyzeSequence(limit, f, big.NewInt(1), big.NewInt(2), advanceStandard, nil), nil
	case FilterEven:
		return analyzeSequence(limit, f, big.NewInt(2), big.NewInt(8), advanceEven, nil), nil
	case FilterOdd:
		return analyzeSequence(limit, f, big.NewInt(1), big.NewInt(2), advanceStandard, keepOdd), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, string(f))
}

func validateLimit(limit *big.Int) error {
	if limit == nil {
		return apperrors.NewInvalidArgument("limit", 0, "must not be nil")
	}
	if limit.Sign() < 0 {
		return apperrors.NewInvalidArgument("limit", 0, "must not be negative")
	}
	return nil
}

// advanceStandard steps (a, b) by the standard recurrence F(n) = F(n-1) + F(n-2).
func advanceStandard(a, b *big.Int) {
	next := new(big.Int).Add(a, b)
	a.Set(b)
	b.Set(next)
}

// keepOdd reports whether a term belongs to the odd-filtered subsequence.
func keepOdd(term *big.Int) bool {
	return term.Bit(0) == 1
}

// advanceEven steps (a, b) by the even-term recurrence E(n) = 4*E(n-1) + E(n-2).
func advanceEven(a, b *big.Int) {
	next := new(big.Int).Lsh(b, 2)
	next.Add(next, a)
	a.Set(b)
	b.Set(next)
}

// analyzeSequence walks a two-term linear recurrence from (a, b), collecting
// terms that pass keep (nil keeps everything) while a <= limit, then advances
// past the limit until the next kept term to establish the LUB.
func analyzeSequence(limit *big.Int, f Filter, a, b *big.Int, advance func(a, b *big.Int), keep func(*big.Int) bool) *Analysis {
	an := &Analysis{
		Filter: f,
		Limit:  new(big.Int).Set(limit),
		Sum:    new(big.Int),
		GLB:    new(big.Int),
	}

	for a.Cmp(limit) <= 0 {
		if keep == nil || keep(a) {
			term := new(big.Int).Set(a)
			an.Terms = append(an.Terms, term)
			an.Sum.Add(an.Sum, term)
		}
		advance(a, b)
	}

	// First kept term beyond the limit.
	for keep != nil && !keep(a) {
		advance(a, b)
	}
	an.LUB = new(big.Int).Set(a)

	an.Count = len(an.Terms)
	if an.Count > 0 {
		an.GLB.Set(an.Terms[an.Count-1])
	}
	return an
}
