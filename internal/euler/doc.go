// Package euler implements the closed-form number-theory formulas at the core
// of the application: arithmetic-series sums of multiples combined through
// inclusion-exclusion, and even-valued Fibonacci sums generated by the direct
// even-term recurrence E(n) = 4*E(n-1) + E(n-2).
//
// All functions are pure: no state, no iteration proportional to the bound
// for the multiples family, and O(log limit) terms for the Fibonacci family.
package euler
