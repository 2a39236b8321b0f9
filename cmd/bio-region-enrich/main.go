package main

/*
bio-region-enrich tests a set of genomic regions for enrichment of overlap
with annotation categories, against a null distribution built by resampling
the regions within background islands.

Inputs are whitespace-delimited tables (optionally gzipped): a data table of
regions, an annotation table with a trailing category-label column, and an
optional background table.  The output is one TSV row per category with
fold-change, z-score, empirical p-value, and adjusted p-value.
*/

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/regions/enrich"
	"github.com/grailbio/regions/ingest"
	"github.com/grailbio/regions/interval"
)

var (
	dataPath   = flag.String("data", "", "Input data-region table path; required")
	annoPath   = flag.String("annotation", "", "Input annotation table path (coordinates plus a category-label column); required")
	bgPath     = flag.String("background", "", "Optional background table path; default is the union of all annotation intervals")
	formatFlag = flag.String("format", "table", "Coordinate encoding of the input tables: 'table' (1-based chrom/start[/end]), 'bed' (0-based half-open), or 'region' (chr:start-end strings)")
	outPath    = flag.String("out", "", "Output TSV path; empty = stdout")

	numSamples  = flag.Int("num-samples", enrich.DefaultOpts.NumSamples, "Number of null samples")
	gapMax      = flag.Int64("gap-max", enrich.DefaultOpts.GapMax, "Max distance from a data interval to an eligible background island; negative = unlimited")
	maxDistance = flag.Int64("max-distance", enrich.DefaultOpts.MaxDistance, "Max displacement of a sampled interval from its source; negative = unconstrained")
	pAdjust     = flag.String("p-adjust", enrich.DefaultOpts.AdjustMethod.String(), "Multiple-testing correction: BH, BY, bonferroni, holm, hochberg, or hommel")
	parallel    = flag.Bool("parallel", enrich.DefaultOpts.Parallel, "Enable the worker pool for null-sample counting")
	multicores  = flag.Int("multicores", 0, "Worker count override; 0 = half of available cores")
	seed        = flag.Int64("seed", 0, "Random seed; 0 = nonreproducible")

	bgAnnotatableOnly = flag.Bool("background-annotatable-only", enrich.DefaultOpts.BackgroundAnnotatableOnly,
		"Restrict a user-supplied background to annotation-covered bases")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s -data <path> -annotation <path> [OPTIONS]\n", os.Args[0])
	flag.PrintDefaults()
}

func loadSet(path string, format ingest.Format) interval.Set {
	rows, err := ingest.ReadRows(path)
	if err != nil {
		log.Fatalf("read %s: %v", path, err)
	}
	set, _ := ingest.Set(format, rows)
	return set
}

func main() {
	flag.Usage = usage
	shutdown := grail.Init()
	defer shutdown()
	ctx := vcontext.Background()

	if *dataPath == "" || *annoPath == "" {
		usage()
		log.Fatal("-data and -annotation are required")
	}
	format, err := ingest.ParseFormat(*formatFlag)
	if err != nil {
		log.Fatalf("%v", err)
	}
	method, err := enrich.ParseAdjustMethod(*pAdjust)
	if err != nil {
		log.Fatalf("%v", err)
	}

	data := loadSet(*dataPath, format)
	annoRows, err := ingest.ReadRows(*annoPath)
	if err != nil {
		log.Fatalf("read %s: %v", *annoPath, err)
	}
	ivs, labels, _ := ingest.LabeledIntervals(format, annoRows)
	catalog := enrich.NewCatalog(ivs, labels)

	var background interval.Set
	if *bgPath != "" {
		background = loadSet(*bgPath, format)
	}

	opts := enrich.Opts{
		NumSamples:                *numSamples,
		GapMax:                    *gapMax,
		MaxDistance:               *maxDistance,
		AdjustMethod:              method,
		Parallel:                  *parallel,
		Multicores:                *multicores,
		Seed:                      *seed,
		BackgroundAnnotatableOnly: *bgAnnotatableOnly,
	}
	result, err := enrich.Run(ctx, data, catalog, background, opts)
	if err != nil {
		log.Fatalf("%v", err)
	}

	var w io.Writer = os.Stdout
	if *outPath != "" {
		out, err := file.Create(ctx, *outPath)
		if err != nil {
			log.Fatalf("create %s: %v", *outPath, err)
		}
		defer file.CloseAndReport(ctx, out, &err)
		w = out.Writer(ctx)
	}
	if err := result.WriteTSV(w); err != nil {
		log.Fatalf("write result: %v", err)
	}
	log.Printf("bio-region-enrich: done, %d categories", len(result.Records))
}
