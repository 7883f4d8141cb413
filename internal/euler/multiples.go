package euler

import (
	apperrors "github.com/agbru/eulerbatch/internal/errors"
)

// SumMultiplesBelow returns the sum of all positive multiples of m strictly
// less than n, computed with the arithmetic-series closed form:
//
//	k = (n-1)/m,  sum = m * k * (k+1) / 2
//
// k*(k+1) is always even, so the division is exact. For n <= m the sum is 0.
//
// Parameters:
//   - n: The exclusive upper bound (n >= 1).
//   - m: The multiple to sum (m >= 1).
//
// Returns:
//   - uint64: The exact sum. For n <= 10^9 the result fits comfortably in
//     63 bits (the maximum possible sum is below 2.4e17).
//   - error: An InvalidArgumentError if n < 1 or m < 1; no other failure mode.
func SumMultiplesBelow(n, m uint64) (uint64, error) {
	if n < 1 {
		return 0, apperrors.NewInvalidArgument("n", n, "must be at least 1")
	}
	if m < 1 {
		return 0, apperrors.NewInvalidArgument("m", m, "must be at least 1")
	}
	if n <= m {
		return 0, nil
	}
	k := (n - 1) / m
	// k*(k+1)/2 first: the half is exact and keeps the intermediate smaller.
	return m * (k * (k + 1) / 2), nil
}

// SumMultiplesOf3Or5Below returns the sum of all positive multiples of 3 or 5
// strictly below n, using inclusion-exclusion to correct for the overlap on
// multiples of 15:
//
//	S(3) + S(5) - S(15)
//
// Parameters:
//   - n: The exclusive upper bound (n >= 1).
//
// Returns:
//   - uint64: The exact sum (0 for n = 1).
//   - error: An InvalidArgumentError if n < 1.
func SumMultiplesOf3Or5Below(n uint64) (uint64, error) {
	sum3, err := SumMultiplesBelow(n, 3)
	if err != nil {
		return 0, err
	}
	// m is a constant >= 1 below, so only the first call can fail.
	sum5, _ := SumMultiplesBelow(n, 5)
	sum15, _ := SumMultiplesBelow(n, 15)
	return sum3 + sum5 - sum15, nil
}
