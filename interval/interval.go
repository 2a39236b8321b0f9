package interval

import (
	"math"
	"sort"
)

// PosType is the type used to represent interval coordinates.  int32 should be
// wide enough for some time to come, since that's what BAM is limited to.
type PosType int32

// PosTypeMax is the maximum value that can be represented by a PosType.
const PosTypeMax = math.MaxInt32

// Interval is a single genomic range with 1-based inclusive endpoints.
// Start <= End always holds for intervals produced by this package; a
// single-position interval has Start == End.
type Interval struct {
	Chrom string
	Start PosType
	End   PosType
}

// Width returns the number of bases covered by the interval.
func (i Interval) Width() int64 {
	return int64(i.End-i.Start) + 1
}

// Set is an ordered collection of intervals grouped by chromosome.  The
// internal representation is one flattened []PosType per chromosome, where
// interval #k (numbering from zero) occupies elements [2k] and [2k+1].  This
// mirrors the usual interval-union encoding: simpler binary searches, and the
// compiler optimizes []int32 scans better than []struct scans.
//
// Intervals are always sorted by (chrom, start, end).  After Reduce, they are
// additionally pairwise disjoint and non-adjacent per chromosome.  Sets are
// value-like: no method mutates its receiver.
type Set struct {
	chroms    []string
	endpoints map[string][]PosType
	reduced   bool
}

// NewSet builds a Set from a slice of intervals.  Intervals are grouped by
// chromosome and stably sorted by (start, end); chromosomes are ordered
// lexically so that iteration order is deterministic.  The input slice is not
// retained.
func NewSet(ivs []Interval) Set {
	endpoints := make(map[string][]PosType)
	for _, iv := range ivs {
		endpoints[iv.Chrom] = append(endpoints[iv.Chrom], iv.Start, iv.End)
	}
	chroms := make([]string, 0, len(endpoints))
	for chrom, eps := range endpoints {
		chroms = append(chroms, chrom)
		sortEndpointPairs(eps)
	}
	sort.Strings(chroms)
	return Set{chroms: chroms, endpoints: endpoints}
}

// pairSorter sorts a flattened endpoint slice by (start, end) while keeping
// start/end pairs together.
type pairSorter []PosType

func (p pairSorter) Len() int { return len(p) / 2 }
func (p pairSorter) Less(i, j int) bool {
	if p[2*i] != p[2*j] {
		return p[2*i] < p[2*j]
	}
	return p[2*i+1] < p[2*j+1]
}
func (p pairSorter) Swap(i, j int) {
	p[2*i], p[2*j] = p[2*j], p[2*i]
	p[2*i+1], p[2*j+1] = p[2*j+1], p[2*i+1]
}

func sortEndpointPairs(eps []PosType) {
	sort.Stable(pairSorter(eps))
}

// Chroms returns the chromosome names present in the set, in lexical order.
// The returned slice must not be modified.
func (s Set) Chroms() []string { return s.chroms }

// ChromEndpoints returns the flattened (start, end) pairs for one chromosome,
// or nil if the chromosome is absent.  The returned slice must not be
// modified.
func (s Set) ChromEndpoints(chrom string) []PosType { return s.endpoints[chrom] }

// NumIntervals returns the number of intervals across all chromosomes.
func (s Set) NumIntervals() int {
	n := 0
	for _, eps := range s.endpoints {
		n += len(eps) / 2
	}
	return n
}

// Empty reports whether the set contains no intervals.
func (s Set) Empty() bool { return s.NumIntervals() == 0 }

// Intervals materializes the set as a slice ordered by (chrom, start, end).
func (s Set) Intervals() []Interval {
	ivs := make([]Interval, 0, s.NumIntervals())
	for _, chrom := range s.chroms {
		eps := s.endpoints[chrom]
		for k := 0; k < len(eps); k += 2 {
			ivs = append(ivs, Interval{Chrom: chrom, Start: eps[k], End: eps[k+1]})
		}
	}
	return ivs
}

// Reduce returns the minimal-cardinality disjoint cover of the set: per
// chromosome, intervals are merged whenever they overlap or are directly
// adjacent (end + 1 == next start).  Reduce is idempotent, and a no-op (the
// receiver is returned as is) when the set is already known-reduced.
func (s Set) Reduce() Set {
	if s.reduced {
		return s
	}
	endpoints := make(map[string][]PosType, len(s.endpoints))
	chroms := make([]string, 0, len(s.chroms))
	for _, chrom := range s.chroms {
		eps := s.endpoints[chrom]
		if len(eps) == 0 {
			continue
		}
		merged := make([]PosType, 0, len(eps))
		curStart, curEnd := eps[0], eps[1]
		for k := 2; k < len(eps); k += 2 {
			if eps[k] <= curEnd+1 {
				if eps[k+1] > curEnd {
					curEnd = eps[k+1]
				}
				continue
			}
			merged = append(merged, curStart, curEnd)
			curStart, curEnd = eps[k], eps[k+1]
		}
		merged = append(merged, curStart, curEnd)
		endpoints[chrom] = merged
		chroms = append(chroms, chrom)
	}
	return Set{chroms: chroms, endpoints: endpoints, reduced: true}
}

// TotalBases returns the sum of interval widths.  Overlapping intervals are
// double-counted; callers wanting covered-base counts must Reduce first.
func (s Set) TotalBases() int64 {
	var n int64
	for _, eps := range s.endpoints {
		for k := 0; k < len(eps); k += 2 {
			n += int64(eps[k+1]-eps[k]) + 1
		}
	}
	return n
}

// IntersectCount sums, over every pair of overlapping intervals between s and
// other, the width of the pairwise intersection.  It is symmetric in its
// arguments and does not require either set to be reduced.  The walk advances
// two cursors over the start-sorted lists, so the cost is proportional to the
// input sizes plus the number of overlapping pairs rather than the full cross
// product.
func (s Set) IntersectCount(other Set) int64 {
	var n int64
	for _, chrom := range s.chroms {
		a := s.endpoints[chrom]
		b := other.endpoints[chrom]
		if len(b) == 0 {
			continue
		}
		n += overlapBases(a, b)
	}
	return n
}

func overlapBases(a, b []PosType) int64 {
	var n int64
	bi := 0
	for ai := 0; ai < len(a); ai += 2 {
		aStart, aEnd := a[ai], a[ai+1]
		// Intervals ending left of aStart can never overlap later a-intervals
		// either, since a is start-sorted.
		for bi < len(b) && b[bi+1] < aStart {
			bi += 2
		}
		for bj := bi; bj < len(b) && b[bj] <= aEnd; bj += 2 {
			lo, hi := aStart, aEnd
			if b[bj] > lo {
				lo = b[bj]
			}
			if b[bj+1] < hi {
				hi = b[bj+1]
			}
			if lo <= hi {
				n += int64(hi-lo) + 1
			}
		}
	}
	return n
}

// Intersect returns the set of sub-ranges covered by both s and other.  Both
// sets are reduced first, so the result is reduced as well.
func (s Set) Intersect(other Set) Set {
	sr := s.Reduce()
	or := other.Reduce()
	endpoints := make(map[string][]PosType)
	var chroms []string
	for _, chrom := range sr.chroms {
		b := or.endpoints[chrom]
		if len(b) == 0 {
			continue
		}
		out := intersectReduced(sr.endpoints[chrom], b)
		if len(out) > 0 {
			endpoints[chrom] = out
			chroms = append(chroms, chrom)
		}
	}
	return Set{chroms: chroms, endpoints: endpoints, reduced: true}
}

func intersectReduced(a, b []PosType) []PosType {
	var out []PosType
	ai, bi := 0, 0
	for ai < len(a) && bi < len(b) {
		lo, hi := a[ai], a[ai+1]
		if b[bi] > lo {
			lo = b[bi]
		}
		if b[bi+1] < hi {
			hi = b[bi+1]
		}
		if lo <= hi {
			out = append(out, lo, hi)
		}
		if a[ai+1] < b[bi+1] {
			ai += 2
		} else {
			bi += 2
		}
	}
	return out
}

// Union returns the reduced union of the given sets.
func Union(sets ...Set) Set {
	endpoints := make(map[string][]PosType)
	for _, s := range sets {
		for chrom, eps := range s.endpoints {
			endpoints[chrom] = append(endpoints[chrom], eps...)
		}
	}
	chroms := make([]string, 0, len(endpoints))
	for chrom, eps := range endpoints {
		chroms = append(chroms, chrom)
		sortEndpointPairs(eps)
	}
	sort.Strings(chroms)
	return Set{chroms: chroms, endpoints: endpoints}.Reduce()
}

// ContainsInterval reports whether iv lies entirely within a single interval
// of s.  s must be reduced.
func (s Set) ContainsInterval(iv Interval) bool {
	eps := s.endpoints[iv.Chrom]
	if len(eps) == 0 {
		return false
	}
	// Last interval starting at or before iv.Start.
	k := sort.Search(len(eps)/2, func(i int) bool { return eps[2*i] > iv.Start })
	if k == 0 {
		return false
	}
	return eps[2*(k-1)+1] >= iv.End
}
