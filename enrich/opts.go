package enrich

// Opts holds the knobs for an enrichment run.
type Opts struct {
	// NumSamples is the number of null samples drawn to build the empirical
	// distribution.
	NumSamples int
	// GapMax excludes background islands farther than this many bases from a
	// data interval when choosing candidate placements.  Negative means no
	// limit.
	GapMax int64
	// MaxDistance caps how far a sampled interval's start may move from the
	// original interval's start.  Negative means unconstrained.  Zero pins
	// every sampled interval to its original position, which is occasionally
	// useful for calibration.
	MaxDistance int64
	// AdjustMethod selects the multiple-testing correction applied to the
	// empirical p-value vector.
	AdjustMethod AdjustMethod
	// Parallel enables the worker pool for null-sample overlap counting.
	// Disabling it forces sequential execution; the statistical output is
	// identical either way for a fixed Seed.
	Parallel bool
	// Multicores overrides the worker count.  Zero means half of the
	// available cores.
	Multicores int
	// Seed makes the sampler reproducible.  Zero draws a fresh seed, so runs
	// are not reproducible unless a nonzero seed is supplied.
	Seed int64
	// BackgroundAnnotatableOnly restricts a user-supplied background to the
	// bases covered by the (background-restricted) annotation catalog.
	BackgroundAnnotatableOnly bool
}

// DefaultOpts sets the default values for Opts.
var DefaultOpts = Opts{
	NumSamples:   1000,
	GapMax:       50000,
	MaxDistance:  -1,
	AdjustMethod: BH,
	Parallel:     true,
}
