package batch

import (
	"fmt"

	apperrors "github.com/agbru/eulerbatch/internal/errors"
)

// ResultCache maps a bound to its computed sum for the lifetime of one batch.
// Entries are write-once: overwriting a bound with a different sum indicates
// a broken deduplication pass and panics rather than silently corrupting
// results. ResultCache is not safe for concurrent use; the solve path is
// strictly sequential.
type ResultCache struct {
	results map[uint64]uint64
}

// NewResultCache creates a cache sized for the expected number of distinct
// bounds.
func NewResultCache(capacity int) *ResultCache {
	return &ResultCache{results: make(map[uint64]uint64, capacity)}
}

// Put stores the computed sum for a bound. Re-putting the same (n, sum) pair
// is a no-op.
func (c *ResultCache) Put(n, sum uint64) {
	if prev, ok := c.results[n]; ok && prev != sum {
		panic(fmt.Sprintf("result cache overwrite for n=%d: had %d, got %d", n, prev, sum))
	}
	c.results[n] = sum
}

// Get returns the cached sum for a bound.
//
// Returns:
//   - uint64: The cached sum.
//   - error: A MissingCacheEntryError if the bound was never computed. The
//     solver treats this as a fatal internal invariant violation, never as a
//     recoverable condition.
func (c *ResultCache) Get(n uint64) (uint64, error) {
	sum, ok := c.results[n]
	if !ok {
		return 0, apperrors.NewMissingCacheEntry(n)
	}
	return sum, nil
}

// Len returns the number of cached entries.
func (c *ResultCache) Len() int {
	return len(c.results)
}
