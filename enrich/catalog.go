package enrich

import (
	store "github.com/biogo/store/interval"
	"github.com/grailbio/regions/interval"
)

// Catalog is an ordered mapping from annotation-category name to a reduced
// interval set.  Category order is fixed at construction time and preserved
// through every derived catalog, so result tables are deterministically
// ordered.
//
// Each category additionally carries per-chromosome static interval trees.
// Overlap counting against a catalog runs once for the observed data and once
// per null sample, so the trees are built a single time up front and queried
// read-only (and therefore safely from concurrent workers).
type Catalog struct {
	names []string
	sets  map[string]interval.Set
	trees map[string]map[string]*store.IntTree
}

// treeEntry adapts one annotation interval to the biogo interval-tree
// interface.  Tree coordinates are half-open ints, so a 1-based inclusive
// [start, end] range is stored as [start, end+1).
type treeEntry struct {
	start, end int
	id         uintptr
}

func (e treeEntry) Overlap(b store.IntRange) bool { return e.end > b.Start && e.start < b.End }
func (e treeEntry) ID() uintptr                   { return e.id }
func (e treeEntry) Range() store.IntRange         { return store.IntRange{Start: e.start, End: e.end} }

// NewCatalog builds a catalog from parallel interval/label slices (the
// flat-table form: one label per interval).  Category order follows the first
// appearance of each label; each category's interval set is independently
// reduced.
func NewCatalog(ivs []interval.Interval, labels []string) Catalog {
	byLabel := make(map[string][]interval.Interval)
	var names []string
	for i, iv := range ivs {
		label := labels[i]
		if _, seen := byLabel[label]; !seen {
			names = append(names, label)
		}
		byLabel[label] = append(byLabel[label], iv)
	}
	sets := make(map[string]interval.Set, len(names))
	for _, name := range names {
		sets[name] = interval.NewSet(byLabel[name]).Reduce()
	}
	return newCatalog(names, sets)
}

// CatalogFromSets builds a catalog from pre-split per-category sets, keeping
// the given name order.  Each set is reduced if it isn't already.
func CatalogFromSets(names []string, sets map[string]interval.Set) Catalog {
	reduced := make(map[string]interval.Set, len(names))
	for _, name := range names {
		reduced[name] = sets[name].Reduce()
	}
	ordered := make([]string, len(names))
	copy(ordered, names)
	return newCatalog(ordered, reduced)
}

func newCatalog(names []string, sets map[string]interval.Set) Catalog {
	trees := make(map[string]map[string]*store.IntTree, len(names))
	var id uintptr
	for _, name := range names {
		set := sets[name]
		chromTrees := make(map[string]*store.IntTree, len(set.Chroms()))
		for _, chrom := range set.Chroms() {
			eps := set.ChromEndpoints(chrom)
			tree := &store.IntTree{}
			for k := 0; k < len(eps); k += 2 {
				_ = tree.Insert(treeEntry{
					start: int(eps[k]),
					end:   int(eps[k+1]) + 1,
					id:    id,
				}, true)
				id++
			}
			tree.AdjustRanges()
			chromTrees[chrom] = tree
		}
		trees[name] = chromTrees
	}
	return Catalog{names: names, sets: sets, trees: trees}
}

// Names returns the category names in catalog order.  The returned slice must
// not be modified.
func (c Catalog) Names() []string { return c.names }

// NumCategories returns the number of annotation categories.
func (c Catalog) NumCategories() int { return len(c.names) }

// Set returns the reduced interval set for one category.
func (c Catalog) Set(name string) interval.Set { return c.sets[name] }

// AnnotationBases returns the total covered bases per category, in catalog
// order.
func (c Catalog) AnnotationBases() []int64 {
	n := make([]int64, len(c.names))
	for i, name := range c.names {
		n[i] = c.sets[name].TotalBases()
	}
	return n
}

// Union returns the reduced union of all category sets.
func (c Catalog) Union() interval.Set {
	sets := make([]interval.Set, 0, len(c.names))
	for _, name := range c.names {
		sets = append(sets, c.sets[name])
	}
	return interval.Union(sets...)
}

// RestrictTo returns a catalog whose category sets are replaced by their
// intersections with background: only the background-overlapping sub-ranges
// survive, not merely a count.  Category order is preserved; categories left
// empty by the restriction stay in the catalog and simply report zero
// overlap.
func (c Catalog) RestrictTo(background interval.Set) Catalog {
	bg := background.Reduce()
	sets := make(map[string]interval.Set, len(c.names))
	for _, name := range c.names {
		sets[name] = c.sets[name].Intersect(bg)
	}
	names := make([]string, len(c.names))
	copy(names, c.names)
	return newCatalog(names, sets)
}

// OverlapBases computes, per category in catalog order, the summed width of
// all pairwise intersections between query intervals and the category's
// intervals.  Queries run against the static trees, so the cost per query
// interval is logarithmic in the category size plus the number of hits.
// Categories with no intervals, or no overlap, report 0.
func (c Catalog) OverlapBases(query interval.Set) []int64 {
	counts := make([]int64, len(c.names))
	for i, name := range c.names {
		chromTrees := c.trees[name]
		var total int64
		for _, chrom := range query.Chroms() {
			tree := chromTrees[chrom]
			if tree == nil {
				continue
			}
			eps := query.ChromEndpoints(chrom)
			for k := 0; k < len(eps); k += 2 {
				qs, qe := int(eps[k]), int(eps[k+1])+1
				q := treeEntry{start: qs, end: qe}
				tree.DoMatching(func(e store.IntInterface) (done bool) {
					r := e.Range()
					lo, hi := qs, qe
					if r.Start > lo {
						lo = r.Start
					}
					if r.End < hi {
						hi = r.End
					}
					total += int64(hi - lo)
					return false
				}, q)
			}
		}
		counts[i] = total
	}
	return counts
}
