//go:build !gmp

package euler

import "math/big"

// sumEvenFibonacci accumulates the even-valued Fibonacci terms up to and
// including limit using the pure-Go math/big backend. The gmp build tag
// selects the libgmp-backed variant instead.
func sumEvenFibonacci(limit *big.Int) *big.Int {
	total := new(big.Int)
	a := big.NewInt(2)
	b := big.NewInt(8)

	for a.Cmp(limit) <= 0 {
		total.Add(total, a)
		advanceEven(a, b)
	}
	return total
}
