package enrich

import (
	"math/rand"

	"github.com/grailbio/regions/interval"
)

// sampler draws synthetic query sets from the background null model.  Each
// sampled set mimics the data set structurally (same interval count and
// widths, minus intervals with no eligible placement) but re-places every
// interval uniformly at random within the background islands near its
// original location.
//
// A sampler is immutable after construction; every Sample call takes its own
// rand source, so samples are mutually independent and may run concurrently.
type sampler struct {
	data       []interval.Interval // reduced data intervals, (chrom, start) order
	background interval.Set        // reduced; its per-chromosome ranges are the islands
	gapMax     int64               // negative: no island-distance limit
	maxDist    int64               // negative: no displacement limit
}

func newSampler(data, background interval.Set, gapMax, maxDist int64) *sampler {
	return &sampler{
		data:       data.Reduce().Intervals(),
		background: background.Reduce(),
		gapMax:     gapMax,
		maxDist:    maxDist,
	}
}

// placement is one candidate start-position window within a single island.
type placement struct {
	lo, hi int64 // inclusive range of eligible start positions
}

// Sample draws one synthetic interval set.  A data interval with no eligible
// placement is dropped from this sample only; downstream statistics normalize
// by base count, not interval count, so short samples are tolerated.
func (s *sampler) Sample(r *rand.Rand) interval.Set {
	ivs := make([]interval.Interval, 0, len(s.data))
	var windows []placement // reused across intervals
	for _, d := range s.data {
		windows = windows[:0]
		total := s.placements(d, &windows)
		if total == 0 {
			continue
		}
		// Every eligible start position is equally likely: pick the u-th
		// position across the per-island windows.
		u := r.Int63n(total)
		var start int64
		for _, w := range windows {
			n := w.hi - w.lo + 1
			if u < n {
				start = w.lo + u
				break
			}
			u -= n
		}
		ivs = append(ivs, interval.Interval{
			Chrom: d.Chrom,
			Start: interval.PosType(start),
			End:   interval.PosType(start + d.Width() - 1),
		})
	}
	return interval.NewSet(ivs)
}

// placements appends to *windows one eligible start-position window per
// candidate island for data interval d, and returns the total number of
// eligible positions.  An island is a candidate when its gap to d is at most
// gapMax; a start position within it is eligible when the sampled interval
// fits entirely inside the island and, with maxDist set, starts within
// maxDist of d's original start.
func (s *sampler) placements(d interval.Interval, windows *[]placement) int64 {
	eps := s.background.ChromEndpoints(d.Chrom)
	if len(eps) == 0 {
		return 0
	}
	width := d.Width()

	// Candidate islands: gap(island, d) <= gapMax.  An island left of d at
	// gap g has end == d.Start - g - 1, one right of d has
	// start == d.End + g + 1, so the island window is
	// [d.Start - gapMax - 1, d.End + gapMax + 1].
	first, limit := 0, len(eps)/2
	if s.gapMax >= 0 {
		lo := clampPos(int64(d.Start) - s.gapMax - 1)
		hi := clampPos(int64(d.End) + s.gapMax + 1)
		first, limit = interval.IslandRange(eps, lo, hi)
	}

	var total int64
	for k := first; k < limit; k++ {
		islStart, islEnd := int64(eps[2*k]), int64(eps[2*k+1])
		lo, hi := islStart, islEnd-width+1
		if s.maxDist >= 0 {
			if v := int64(d.Start) - s.maxDist; v > lo {
				lo = v
			}
			if v := int64(d.Start) + s.maxDist; v < hi {
				hi = v
			}
		}
		if lo > hi {
			continue
		}
		*windows = append(*windows, placement{lo: lo, hi: hi})
		total += hi - lo + 1
	}
	return total
}

func clampPos(v int64) interval.PosType {
	if v < 1 {
		return 1
	}
	if v > interval.PosTypeMax {
		return interval.PosTypeMax
	}
	return interval.PosType(v)
}
