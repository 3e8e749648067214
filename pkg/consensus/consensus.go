// Package consensus resolves a group of noisy per-play values to a
// single stable one by majority vote.
//
// This is a pure package. It implements a stabilization step, not a
// statistical aggregate: resolution is O(group size) and deterministic.
package consensus

// Mode returns a pointer to the most frequent non-nil value in vals.
// Nil entries are skipped; ties break in favor of the value encountered
// first. When every entry is nil the result is nil - callers are
// expected to invoke Mode only for groups known to carry a value.
func Mode[T comparable](vals []*T) *T {
	counts := make(map[T]int, len(vals))
	var best *T
	bestCount := 0
	for _, v := range vals {
		if v == nil {
			continue
		}
		counts[*v]++
		// Strictly greater keeps the first-encountered value on ties.
		if counts[*v] > bestCount {
			bestCount = counts[*v]
			best = v
		}
	}
	if best == nil {
		return nil
	}
	res := *best
	return &res
}
