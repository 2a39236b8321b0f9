package interval

import "sort"

// Island search support.  A reduced Set's per-chromosome endpoint slice is
// already the island list for that chromosome: island #k occupies elements
// [2k] and [2k+1].  The helpers here locate the contiguous run of islands
// within a positional window, which is the candidate-placement query the
// sampler issues once per data interval.

// IslandRange returns the half-open island-index range [first, limit) of
// islands in eps intersecting the inclusive positional window [lo, hi].  eps
// must be a reduced endpoint slice.  first == limit when no island qualifies.
func IslandRange(eps []PosType, lo, hi PosType) (first, limit int) {
	n := len(eps) / 2
	// First island whose end reaches lo.  Ends are strictly increasing in a
	// reduced slice.
	first = sort.Search(n, func(i int) bool { return eps[2*i+1] >= lo })
	// First island starting past hi.
	limit = sort.Search(n, func(i int) bool { return eps[2*i] > hi })
	if limit < first {
		limit = first
	}
	return first, limit
}
