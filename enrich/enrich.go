package enrich

import (
	"context"
	"math/rand"

	"github.com/grailbio/base/log"
	"github.com/grailbio/regions/interval"
)

// Run performs a full enrichment analysis: background resolution, null
// sampling, overlap counting, and estimation.  background may be the zero Set
// to default to the union of the catalog.
//
// ctx cancellation aborts the run between samples; a cancelled run returns no
// partial results.
func Run(ctx context.Context, data interval.Set, catalog Catalog, background interval.Set, opts Opts) (Result, error) {
	if opts.NumSamples < 1 {
		return Result{}, &ConfigError{Reason: "num samples must be positive"}
	}
	if catalog.NumCategories() == 0 {
		return Result{}, &ConfigError{Reason: "annotation catalog is empty"}
	}

	resolved, err := ResolveBackground(data, catalog, background, opts.BackgroundAnnotatableOnly)
	if err != nil {
		return Result{}, err
	}
	if resolved.Data.Empty() {
		return Result{}, &ConfigError{Reason: "no data intervals overlap the background"}
	}

	baseSeed := opts.Seed
	if baseSeed == 0 {
		baseSeed = rand.Int63()
	}

	obs := resolved.Catalog.OverlapBases(resolved.Data)
	nAnno := resolved.Catalog.AnnotationBases()
	nData := resolved.Data.TotalBases()
	nBG := resolved.Background.TotalBases()

	log.Printf("enrich: %d data interval(s) (%d bases), %d background bases, %d categories, %d samples",
		resolved.Data.NumIntervals(), nData, nBG, resolved.Catalog.NumCategories(), opts.NumSamples)

	smp := newSampler(resolved.Data, resolved.Background, opts.GapMax, opts.MaxDistance)
	null, err := nullMatrix(ctx, smp, resolved.Catalog, baseSeed, opts)
	if err != nil {
		return Result{}, err
	}

	records := estimate(resolved.Catalog.Names(), obs, null, nAnno, nData, nBG, opts.AdjustMethod)
	return Result{Records: records}, nil
}
