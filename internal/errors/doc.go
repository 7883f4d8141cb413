// Package apperrors defines the error taxonomy and exit codes shared across
// the eulerbatch application. Two error classes carry domain meaning:
// InvalidArgumentError for queries outside the defined domain of the
// closed-form formulas, and MissingCacheEntryError for solver invariant
// violations. The remaining types cover configuration and server failures.
package apperrors
