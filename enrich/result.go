package enrich

import (
	"io"

	"github.com/grailbio/base/tsv"
)

// Result is the final enrichment table, one row per annotation category in
// catalog order.
type Result struct {
	Records []Record
}

// WriteTSV writes the result as a tab-separated table with a header row.
// Column order follows the conventional output layout:
// name nAnno nOverlap fc zscore pvalue adjp nData nBG.
func (r Result) WriteTSV(w io.Writer) error {
	out := tsv.NewWriter(w)
	out.WriteString("name\tnAnno\tnOverlap\tfc\tzscore\tpvalue\tadjp\tnData\tnBG")
	if err := out.EndLine(); err != nil {
		return err
	}
	for _, rec := range r.Records {
		out.WriteString(rec.Name)
		out.WriteInt64(rec.NAnno)
		out.WriteInt64(rec.NOverlap)
		out.WriteFloat64(rec.FC, 'g', -1)
		out.WriteFloat64(rec.ZScore, 'g', -1)
		out.WriteFloat64(rec.PValue, 'g', -1)
		out.WriteFloat64(rec.AdjP, 'g', -1)
		out.WriteInt64(rec.NData)
		out.WriteInt64(rec.NBG)
		if err := out.EndLine(); err != nil {
			return err
		}
	}
	return out.Flush()
}
