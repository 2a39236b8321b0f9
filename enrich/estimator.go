package enrich

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Record is one row of the enrichment result table.
type Record struct {
	// Name is the annotation-category name.
	Name string
	// NAnno is the category's total annotation bases.
	NAnno int64
	// NOverlap is the observed overlap between data and the category, in
	// bases.
	NOverlap int64
	// NData and NBG are the total data and background bases; identical
	// across rows, carried for downstream convenience.
	NData int64
	NBG   int64
	// FC is the fold change: observed overlap over mean null overlap.  When
	// the null mean is zero the fold change is undefined and reported as the
	// sentinel 1; such categories are not significance-ranked.
	FC float64
	// ZScore is (observed - null mean) / null stddev, 0 when the null is
	// degenerate.
	ZScore float64
	// PValue is the one-sided empirical upper-tail p-value: the fraction of
	// null samples with overlap at least the observation.
	PValue float64
	// AdjP is PValue after multiple-testing correction across all
	// categories.
	AdjP float64
}

// estimate aggregates the observed overlap vector and the null matrix into
// one Record per category, in catalog order.  All potentially undefined
// statistics resolve to documented sentinels (fc=1, zscore=0, pvalue=1)
// rather than NaN.
func estimate(names []string, obs []int64, null [][]int64, nAnno []int64, nData, nBG int64, method AdjustMethod) []Record {
	nCat := len(names)
	numSamples := len(null)
	records := make([]Record, nCat)
	pvalues := make([]float64, nCat)
	col := make([]float64, numSamples)
	for j := 0; j < nCat; j++ {
		for i := 0; i < numSamples; i++ {
			col[i] = float64(null[i][j])
		}
		mean := stat.Mean(col, nil)
		std := stat.StdDev(col, nil)

		fc := 1.0
		pvalue := 1.0
		if mean > 0 {
			fc = float64(obs[j]) / mean
			atLeast := 0
			for i := 0; i < numSamples; i++ {
				if float64(obs[j]) <= col[i] {
					atLeast++
				}
			}
			pvalue = float64(atLeast) / float64(numSamples)
		}

		zscore := 0.0
		if std > 0 && !math.IsNaN(std) {
			zscore = (float64(obs[j]) - mean) / std
		}

		records[j] = Record{
			Name:     names[j],
			NAnno:    nAnno[j],
			NOverlap: obs[j],
			NData:    nData,
			NBG:      nBG,
			FC:       fc,
			ZScore:   zscore,
			PValue:   pvalue,
		}
		pvalues[j] = pvalue
	}
	clampZScores(records)
	adjusted := Adjust(pvalues, method)
	for j := range records {
		records[j].AdjP = adjusted[j]
	}
	return records
}

// clampZScores replaces any non-finite z-score with the maximum finite
// z-score observed across categories, so no row carries an infinity.  With no
// finite z-score anywhere, non-finite values collapse to 0.
func clampZScores(records []Record) {
	maxFinite := 0.0
	found := false
	for _, r := range records {
		if !math.IsInf(r.ZScore, 0) && !math.IsNaN(r.ZScore) {
			if !found || r.ZScore > maxFinite {
				maxFinite = r.ZScore
				found = true
			}
		}
	}
	for j := range records {
		if math.IsInf(records[j].ZScore, 0) || math.IsNaN(records[j].ZScore) {
			records[j].ZScore = maxFinite
		}
	}
}
