/*Package enrich implements region-based enrichment analysis via randomized
  resampling.  Given a set of query regions, a catalog of annotation
  categories, and a background, it generates an empirical null distribution of
  per-category overlap base-counts by repeatedly re-placing the query regions
  at random within contiguous background blocks ("islands"), then reports
  fold-change, z-score, empirical p-value, and multiple-testing-adjusted
  p-value for every category.

  The per-sample overlap computations are independent and are fanned out
  across a worker pool; results are collected by sample index, so a fixed
  seed yields the same table whether or not the pool is enabled.
*/
package enrich
