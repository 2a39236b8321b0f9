package enrich

import (
	"context"
	"math/rand"
	"runtime"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/traverse"
)

// workerCount resolves the worker-pool size: an explicit override wins,
// otherwise half of the detected cores, and always at least one.  Disabling
// parallelism forces a single worker; since every sample owns a rand source
// seeded from (baseSeed, sample index), the pool size never changes the
// statistical output, only the wall clock.
func workerCount(opts Opts) int {
	if !opts.Parallel {
		return 1
	}
	if opts.Multicores > 0 {
		return opts.Multicores
	}
	n := runtime.NumCPU() / 2
	if n < 1 {
		n = 1
	}
	return n
}

// nullMatrix computes the num-samples x num-categories matrix of null overlap
// base-counts.  Row i is written by the job for sample i, so the matrix
// layout is fixed by sample index regardless of scheduling order.  Any worker
// error aborts the whole run; a partial null distribution is never returned.
func nullMatrix(ctx context.Context, smp *sampler, catalog Catalog, baseSeed int64, opts Opts) ([][]int64, error) {
	b := make([][]int64, opts.NumSamples)
	err := traverse.Limit(workerCount(opts)).Each(opts.NumSamples, func(i int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		rng := rand.New(rand.NewSource(baseSeed + int64(i) + 1))
		b[i] = catalog.OverlapBases(smp.Sample(rng))
		return nil
	})
	if err != nil {
		return nil, errors.E(err, "enrich: null-sample worker failed")
	}
	return b, nil
}
