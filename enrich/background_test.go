package enrich

import (
	"errors"
	"testing"

	"github.com/grailbio/regions/interval"
	"github.com/grailbio/testutil/expect"
)

func twoCategoryCatalog() Catalog {
	return NewCatalog(
		[]interval.Interval{
			{Chrom: "chr1", Start: 100, End: 200},
			{Chrom: "chr1", Start: 400, End: 500},
		},
		[]string{"X", "Y"},
	)
}

func TestResolveDefaultBackground(t *testing.T) {
	data := interval.NewSet([]interval.Interval{{Chrom: "chr1", Start: 150, End: 450}})
	r, err := ResolveBackground(data, twoCategoryCatalog(), interval.Set{}, false)
	expect.NoError(t, err)
	// Background defaults to the union of the catalog.
	expect.EQ(t, r.Background.Intervals(), []interval.Interval{
		{Chrom: "chr1", Start: 100, End: 200},
		{Chrom: "chr1", Start: 400, End: 500},
	})
	// Data is clipped to the background.
	expect.EQ(t, r.Data.Intervals(), []interval.Interval{
		{Chrom: "chr1", Start: 150, End: 200},
		{Chrom: "chr1", Start: 400, End: 450},
	})
	for _, iv := range r.Data.Intervals() {
		expect.EQ(t, r.Background.ContainsInterval(iv), true, iv)
	}
}

func TestResolveUserBackground(t *testing.T) {
	data := interval.NewSet([]interval.Interval{{Chrom: "chr1", Start: 150, End: 450}})
	bg := interval.NewSet([]interval.Interval{{Chrom: "chr1", Start: 1, End: 300}})

	r, err := ResolveBackground(data, twoCategoryCatalog(), bg, false)
	expect.NoError(t, err)
	expect.EQ(t, r.Background.Intervals(), []interval.Interval{{Chrom: "chr1", Start: 1, End: 300}})
	// The catalog is restricted to the background: Y disappears from
	// coverage, X survives intact.
	expect.EQ(t, r.Catalog.AnnotationBases(), []int64{101, 0})
	// Data loses the portion past 300.
	expect.EQ(t, r.Data.Intervals(), []interval.Interval{{Chrom: "chr1", Start: 150, End: 300}})

	// With annotatableOnly, the background narrows to restricted-catalog
	// coverage.
	r, err = ResolveBackground(data, twoCategoryCatalog(), bg, true)
	expect.NoError(t, err)
	expect.EQ(t, r.Background.Intervals(), []interval.Interval{{Chrom: "chr1", Start: 100, End: 200}})
}

func TestResolveSingleCategoryDegenerate(t *testing.T) {
	data := interval.NewSet([]interval.Interval{{Chrom: "chr1", Start: 150, End: 180}})
	single := NewCatalog(
		[]interval.Interval{{Chrom: "chr1", Start: 100, End: 200}},
		[]string{"X"},
	)
	_, err := ResolveBackground(data, single, interval.Set{}, true)
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}

	// Supplying an explicit background lifts the restriction.
	bg := interval.NewSet([]interval.Interval{{Chrom: "chr1", Start: 1, End: 1000}})
	_, err = ResolveBackground(data, single, bg, true)
	expect.NoError(t, err)
}
