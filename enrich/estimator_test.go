package enrich

import (
	"math"
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestEstimate(t *testing.T) {
	names := []string{"a", "b", "c"}
	obs := []int64{10, 0, 0}
	null := [][]int64{
		{5, 2, 0},
		{15, 4, 0},
	}
	records := estimate(names, obs, null, []int64{100, 50, 25}, 200, 10000, BH)
	expect.EQ(t, len(records), 3)

	// Category a: mean 10, sample stddev sqrt(50).
	a := records[0]
	expect.EQ(t, a.Name, "a")
	expect.EQ(t, a.NAnno, int64(100))
	expect.EQ(t, a.NOverlap, int64(10))
	expect.EQ(t, a.NData, int64(200))
	expect.EQ(t, a.NBG, int64(10000))
	expect.EQ(t, a.FC, 1.0)
	expect.EQ(t, a.ZScore, 0.0)
	// One of two samples (15) is >= 10.
	expect.EQ(t, a.PValue, 0.5)

	// Category b: zero observed overlap against a positive null mean.
	b := records[1]
	expect.EQ(t, b.FC, 0.0)
	expect.EQ(t, b.PValue, 1.0)
	if math.Abs(b.ZScore-(0-3)/math.Sqrt2) > 1e-12 {
		t.Errorf("zscore: got %v", b.ZScore)
	}

	// Category c: null mean zero, fold change undefined; sentinels apply.
	c := records[2]
	expect.EQ(t, c.FC, 1.0)
	expect.EQ(t, c.ZScore, 0.0)
	expect.EQ(t, c.PValue, 1.0)

	// Adjusted p-values live in [0,1] and came from the full vector.
	for _, r := range records {
		if r.AdjP < 0 || r.AdjP > 1 {
			t.Errorf("%s: adjp out of range: %v", r.Name, r.AdjP)
		}
	}
}

func TestEstimateSingleSample(t *testing.T) {
	// One sample: stddev is undefined (n-1 denominator), so the z-score
	// resolves to 0, never NaN.
	records := estimate([]string{"a"}, []int64{11}, [][]int64{{11}}, []int64{11}, 101, 1000, BH)
	expect.EQ(t, records[0].FC, 1.0)
	expect.EQ(t, records[0].ZScore, 0.0)
	expect.EQ(t, records[0].PValue, 1.0)
	expect.EQ(t, records[0].AdjP, 1.0)
}

func TestClampZScores(t *testing.T) {
	records := []Record{
		{Name: "a", ZScore: 2.5},
		{Name: "b", ZScore: math.Inf(1)},
		{Name: "c", ZScore: -1.0},
		{Name: "d", ZScore: math.NaN()},
	}
	clampZScores(records)
	expect.EQ(t, records[0].ZScore, 2.5)
	expect.EQ(t, records[1].ZScore, 2.5)
	expect.EQ(t, records[2].ZScore, -1.0)
	expect.EQ(t, records[3].ZScore, 2.5)

	// With no finite z-score anywhere, everything collapses to 0.
	records = []Record{{ZScore: math.Inf(1)}, {ZScore: math.NaN()}}
	clampZScores(records)
	expect.EQ(t, records[0].ZScore, 0.0)
	expect.EQ(t, records[1].ZScore, 0.0)
}
