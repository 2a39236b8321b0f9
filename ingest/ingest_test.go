package ingest

import (
	"reflect"
	"testing"

	"github.com/grailbio/regions/interval"
	"github.com/grailbio/testutil/expect"
)

func TestTableRows(t *testing.T) {
	rows := [][]string{
		{"chr1", "100", "200"},
		{"chr1", "300"},          // end defaults to start
		{"chr2", "1e3", "2000.0"}, // numeric coercion
		{"chr2", "abc", "200"},   // dropped: non-numeric
		{"chr2"},                 // dropped: missing columns
		{"chr2", "500", "400"},   // dropped: inverted
	}
	ivs, dropped := Intervals(Table, rows)
	expect.EQ(t, dropped, 3)
	want := []interval.Interval{
		{Chrom: "chr1", Start: 100, End: 200},
		{Chrom: "chr1", Start: 300, End: 300},
		{Chrom: "chr2", Start: 1000, End: 2000},
	}
	if !reflect.DeepEqual(ivs, want) {
		t.Errorf("got %v, want %v", ivs, want)
	}
}

func TestBEDRows(t *testing.T) {
	// BED is 0-based half-open: [99, 200) becomes 1-based [100, 200].
	ivs, dropped := Intervals(BED, [][]string{
		{"chr1", "99", "200"},
		{"chr1", "0", "1"},   // first base of the chromosome
		{"chr1", "10", "10"}, // dropped: empty interval
	})
	expect.EQ(t, dropped, 1)
	want := []interval.Interval{
		{Chrom: "chr1", Start: 100, End: 200},
		{Chrom: "chr1", Start: 1, End: 1},
	}
	if !reflect.DeepEqual(ivs, want) {
		t.Errorf("got %v, want %v", ivs, want)
	}
}

func TestRegionRows(t *testing.T) {
	ivs, dropped := Intervals(Region, [][]string{
		{"chr1:100-200"},
		{"chrX:5"},
		{":100-200"}, // dropped: empty chromosome
		{"chr1:x-y"}, // dropped: non-numeric
	})
	expect.EQ(t, dropped, 2)
	want := []interval.Interval{
		{Chrom: "chr1", Start: 100, End: 200},
		{Chrom: "chrX", Start: 5, End: 5},
	}
	if !reflect.DeepEqual(ivs, want) {
		t.Errorf("got %v, want %v", ivs, want)
	}
}

func TestLabeledIntervals(t *testing.T) {
	ivs, labels, dropped := LabeledIntervals(Table, [][]string{
		{"chr1", "100", "200", "tfbs"},
		{"chr1", "300", "400", "enhancer"},
		{"chr1", "500", "600"}, // dropped: no label
	})
	expect.EQ(t, dropped, 1)
	expect.EQ(t, labels, []string{"tfbs", "enhancer"})
	expect.EQ(t, len(ivs), 2)

	// Region-format annotations carry the label in column 2.
	_, labels, dropped = LabeledIntervals(Region, [][]string{
		{"chr1:100-200", "tfbs"},
	})
	expect.EQ(t, dropped, 0)
	expect.EQ(t, labels, []string{"tfbs"})
}

func TestParseFormat(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Format
		ok   bool
	}{
		{"table", Table, true},
		{"data.frame", Table, true},
		{"bed", BED, true},
		{"region", Region, true},
		{"vcf", 0, false},
	} {
		got, err := ParseFormat(tt.in)
		if tt.ok {
			expect.NoError(t, err)
			expect.EQ(t, got, tt.want)
		} else if err == nil {
			t.Errorf("ParseFormat(%q): expected error", tt.in)
		}
	}
}
