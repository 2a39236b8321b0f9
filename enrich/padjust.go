package enrich

import (
	"fmt"
	"math"
	"sort"
)

// AdjustMethod selects a multiple-testing correction.
type AdjustMethod int

const (
	// BH is the Benjamini-Hochberg step-up FDR control.
	BH AdjustMethod = iota
	// BY is the Benjamini-Yekutieli FDR control under arbitrary dependence.
	BY
	// Bonferroni is the single-step FWER bound n*p.
	Bonferroni
	// Holm is the Holm step-down FWER control.
	Holm
	// Hochberg is the Hochberg step-up FWER control.
	Hochberg
	// Hommel is the Hommel FWER control.
	Hommel
)

// ParseAdjustMethod maps the conventional method names to AdjustMethod
// values.
func ParseAdjustMethod(s string) (AdjustMethod, error) {
	switch s {
	case "BH", "fdr":
		return BH, nil
	case "BY":
		return BY, nil
	case "bonferroni":
		return Bonferroni, nil
	case "holm":
		return Holm, nil
	case "hochberg":
		return Hochberg, nil
	case "hommel":
		return Hommel, nil
	}
	return 0, fmt.Errorf("enrich: unrecognized p-adjust method %q (want BH, BY, bonferroni, holm, hochberg, or hommel)", s)
}

func (m AdjustMethod) String() string {
	switch m {
	case BH:
		return "BH"
	case BY:
		return "BY"
	case Bonferroni:
		return "bonferroni"
	case Holm:
		return "holm"
	case Hochberg:
		return "hochberg"
	case Hommel:
		return "hommel"
	}
	return "unknown"
}

// Adjust applies the selected multiple-testing correction to a p-value
// vector, returning adjusted values in the input order.  Each method
// reproduces the canonical definition exactly: the step-up methods (BH, BY,
// hochberg) take a running minimum down the descending-sorted vector, holm
// takes a running maximum up the ascending-sorted vector, and all results are
// capped at 1.
func Adjust(p []float64, method AdjustMethod) []float64 {
	n := len(p)
	if n == 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = math.Min(1, p[0])
		return out
	}
	switch method {
	case Bonferroni:
		for i, v := range p {
			out[i] = math.Min(1, float64(n)*v)
		}
	case Holm:
		order := ascendingOrder(p)
		running := 0.0
		for rank, idx := range order {
			v := float64(n-rank) * p[idx]
			if v > running {
				running = v
			}
			out[idx] = math.Min(1, running)
		}
	case Hochberg:
		order := descendingOrder(p)
		running := math.Inf(1)
		for rank, idx := range order {
			v := float64(rank+1) * p[idx]
			if v < running {
				running = v
			}
			out[idx] = math.Min(1, running)
		}
	case BH, BY:
		factor := 1.0
		if method == BY {
			factor = 0
			for i := 1; i <= n; i++ {
				factor += 1 / float64(i)
			}
		}
		order := descendingOrder(p)
		running := math.Inf(1)
		for rank, idx := range order {
			v := factor * float64(n) / float64(n-rank) * p[idx]
			if v < running {
				running = v
			}
			out[idx] = math.Min(1, running)
		}
	case Hommel:
		return hommel(p)
	default:
		copy(out, p)
	}
	return out
}

// hommel implements Hommel's procedure following the reference formulation:
// starting from q = min_i(n*p_(i)/i), repeatedly tighten per-rank bounds for
// m = n-1 .. 2 and keep the running elementwise maximum.
func hommel(p []float64) []float64 {
	n := len(p)
	if n <= 2 {
		// Hommel coincides with Hochberg for fewer than three hypotheses.
		return Adjust(p, Hochberg)
	}
	order := ascendingOrder(p)
	ps := make([]float64, n)
	for rank, idx := range order {
		ps[rank] = p[idx]
	}

	min0 := math.Inf(1)
	for i := 0; i < n; i++ {
		if v := float64(n) * ps[i] / float64(i+1); v < min0 {
			min0 = v
		}
	}
	q := make([]float64, n)
	pa := make([]float64, n)
	for i := range q {
		q[i] = min0
		pa[i] = min0
	}
	for m := n - 1; m >= 2; m-- {
		// Tail ranks n-m+1 .. n-1 share the bound from divisors 2..m.
		q1 := math.Inf(1)
		for j := n - m + 1; j < n; j++ {
			if v := float64(m) * ps[j] / float64(j-n+m+1); v < q1 {
				q1 = v
			}
		}
		for j := 0; j <= n-m; j++ {
			q[j] = math.Min(float64(m)*ps[j], q1)
		}
		for j := n - m + 1; j < n; j++ {
			q[j] = q[n-m]
		}
		for j := range pa {
			if q[j] > pa[j] {
				pa[j] = q[j]
			}
		}
	}
	out := make([]float64, n)
	for rank, idx := range order {
		out[idx] = math.Min(1, math.Max(pa[rank], ps[rank]))
	}
	return out
}

func ascendingOrder(p []float64) []int {
	order := make([]int, len(p))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return p[order[a]] < p[order[b]] })
	return order
}

func descendingOrder(p []float64) []int {
	order := make([]int, len(p))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return p[order[a]] > p[order[b]] })
	return order
}
