//go:build gmp

// This file provides a GMP-backed even-Fibonacci accumulator, conditionally
// compiled with the "gmp" build tag. The build tag architecture ensures that:
//   - Projects can build without GMP (the default, using math/big)
//   - GMP support is opt-in, requiring: go build -tags=gmp
//   - The codebase remains portable across systems without libgmp installed
//
// System Requirements for GMP:
//   - Linux: sudo apt-get install libgmp-dev (Debian/Ubuntu)
//   - macOS: brew install gmp
//   - Windows: Requires MinGW or WSL with libgmp
//
// Architectural Decision:
// The direct use of github.com/ncw/gmp in this file is intentional. An
// abstract big-integer interface would add indirection on every recurrence
// step, negating GMP's speed advantage for very large limits. The build tag
// approach provides clean separation without runtime cost.

package euler

import (
	"math/big"

	"github.com/ncw/gmp"
)

// sumEvenFibonacci accumulates the even-valued Fibonacci terms up to and
// including limit using GMP's optimized arithmetic. The recurrence window
// and temporaries are gmp.Int instances reused across iterations to keep
// allocations constant.
func sumEvenFibonacci(limit *big.Int) *big.Int {
	bound := new(gmp.Int).SetBytes(limit.Bytes())

	total := gmp.NewInt(0)
	a := gmp.NewInt(2)
	b := gmp.NewInt(8)
	next := gmp.NewInt(0)

	for a.Cmp(bound) <= 0 {
		total.Add(total, a)
		// next = 4*b + a
		next.MulUint32(b, 4)
		next.Add(next, a)
		a.Set(b)
		b.Set(next)
	}
	return new(big.Int).SetBytes(total.Bytes())
}
