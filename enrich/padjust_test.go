package enrich

import (
	"math"
	"sort"
	"testing"

	"github.com/grailbio/testutil/expect"
)

const padjTol = 1e-12

func expectFloats(t *testing.T, got, want []float64, msg string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %v, want %v", msg, got, want)
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > padjTol {
			t.Errorf("%s: element %d: got %v, want %v", msg, i, got[i], want[i])
		}
	}
}

// Reference values computed from the canonical step-up/step-down definitions
// for p = [0.001, 0.2, 0.5, 0.8].
func TestAdjustMethods(t *testing.T) {
	p := []float64{0.001, 0.2, 0.5, 0.8}
	byFactor := 1 + 1.0/2 + 1.0/3 + 1.0/4
	tests := []struct {
		method AdjustMethod
		want   []float64
	}{
		{Bonferroni, []float64{0.004, 0.8, 1, 1}},
		{Holm, []float64{0.004, 0.6, 1, 1}},
		{Hochberg, []float64{0.004, 0.6, 0.8, 0.8}},
		{Hommel, []float64{0.004, 0.6, 0.8, 0.8}},
		{BH, []float64{0.004, 0.4, 2.0 / 3.0, 0.8}},
		{BY, []float64{0.004 * byFactor, 0.4 * byFactor, 1, 1}},
	}
	for _, tt := range tests {
		expectFloats(t, Adjust(p, tt.method), tt.want, tt.method.String())
	}
}

// The input order must not matter: adjusting a shuffled vector yields the
// same value for each original p.
func TestAdjustOrderInvariance(t *testing.T) {
	p := []float64{0.5, 0.001, 0.8, 0.2}
	got := Adjust(p, BH)
	want := []float64{2.0 / 3.0, 0.004, 0.8, 0.4}
	expectFloats(t, got, want, "shuffled BH")
}

func TestAdjustTies(t *testing.T) {
	p := []float64{0.02, 0.02, 0.5}
	got := Adjust(p, BH)
	// Both tied values share the better rank's adjustment: 3/2 * 0.02.
	expectFloats(t, got, []float64{0.03, 0.03, 0.5}, "tied BH")
}

func TestAdjustMonotoneAndBounded(t *testing.T) {
	p := []float64{0.001, 0.2, 0.5, 0.8, 0.04, 0.999, 0.0, 1.0}
	for _, method := range []AdjustMethod{BH, BY, Bonferroni, Holm, Hochberg, Hommel} {
		adj := Adjust(p, method)
		for _, v := range adj {
			if v < 0 || v > 1 {
				t.Errorf("%v: adjusted p out of [0,1]: %v", method, v)
			}
		}
		// Larger raw p-values never get smaller adjusted values.
		order := make([]int, len(p))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool { return p[order[a]] < p[order[b]] })
		for k := 1; k < len(order); k++ {
			if adj[order[k]] < adj[order[k-1]]-padjTol {
				t.Errorf("%v: monotonicity violated at rank %d: %v < %v",
					method, k, adj[order[k]], adj[order[k-1]])
			}
		}
	}
}

func TestAdjustDegenerate(t *testing.T) {
	expect.EQ(t, len(Adjust(nil, BH)), 0)
	expectFloats(t, Adjust([]float64{0.3}, Bonferroni), []float64{0.3}, "n=1")
	// n=2 hommel falls back to hochberg.
	expectFloats(t, Adjust([]float64{0.01, 0.04}, Hommel),
		Adjust([]float64{0.01, 0.04}, Hochberg), "n=2 hommel")
}

func TestParseAdjustMethod(t *testing.T) {
	for _, name := range []string{"BH", "BY", "bonferroni", "holm", "hochberg", "hommel", "fdr"} {
		m, err := ParseAdjustMethod(name)
		expect.NoError(t, err, name)
		if name == "fdr" {
			expect.EQ(t, m, BH)
		}
	}
	if _, err := ParseAdjustMethod("sidak"); err == nil {
		t.Error("expected error for unsupported method")
	}
}
