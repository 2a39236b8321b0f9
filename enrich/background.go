package enrich

import (
	"github.com/grailbio/base/log"
	"github.com/grailbio/regions/interval"
)

// Resolved is the output of ResolveBackground: the inputs an enrichment run
// actually operates on.
type Resolved struct {
	// Data is the reduced query set, restricted to the portion overlapping
	// Background.  Regions outside the background are excluded from the
	// analysis.
	Data interval.Set
	// Background is the reduced effective background.
	Background interval.Set
	// Catalog is the effective annotation catalog, restricted to Background
	// when the background was user-supplied.
	Catalog Catalog
}

// ResolveBackground derives the effective background for an enrichment run.
//
// An empty background set means "not supplied": the background defaults to
// the reduced union of all catalog intervals.  A supplied background replaces
// that union, and the catalog is restricted to its background-overlapping
// sub-ranges; with annotatableOnly the background is then further narrowed to
// the union of the restricted catalog, so it covers only annotatable bases.
//
// The data set is always restricted to the background; dropped data coverage
// is logged since it silently shrinks the analysis.
func ResolveBackground(data interval.Set, catalog Catalog, background interval.Set, annotatableOnly bool) (Resolved, error) {
	haveBackground := !background.Empty()
	if catalog.NumCategories() == 1 && !haveBackground && annotatableOnly {
		// Degenerate: the background would equal the single annotation
		// category, and every sample would overlap it completely.
		return Resolved{}, &ConfigError{
			Reason: "single-category catalog requires an explicit background when restricting to annotatable bases",
		}
	}

	var bg interval.Set
	if !haveBackground {
		bg = catalog.Union()
	} else {
		bg = background.Reduce()
		catalog = catalog.RestrictTo(bg)
		if annotatableOnly {
			bg = catalog.Union()
		}
	}

	reduced := data.Reduce()
	resolvedData := reduced.Intersect(bg)
	if lost := reduced.TotalBases() - resolvedData.TotalBases(); lost > 0 {
		log.Printf("enrich: %d data base(s) outside the background excluded from analysis", lost)
	}
	return Resolved{Data: resolvedData, Background: bg, Catalog: catalog}, nil
}
