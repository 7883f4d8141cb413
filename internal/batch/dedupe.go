package batch

// Deduplicate returns the distinct values of queries in first-occurrence
// order. The input is not modified.
//
// Parameters:
//   - queries: The raw query list, possibly containing repeats.
//
// Returns:
//   - []uint64: The distinct values, ordered by first appearance. Empty
//     (non-nil) for an empty input.
func Deduplicate(queries []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(queries))
	unique := make([]uint64, 0, len(queries))
	for _, n := range queries {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		unique = append(unique, n)
	}
	return unique
}
