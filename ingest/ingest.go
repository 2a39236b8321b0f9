// Package ingest normalizes the supported input encodings into the canonical
// 1-based inclusive interval representation used by the rest of the module.
//
// Four encodings are recognized: plain coordinate tables (chrom, start[,
// end]), BED-style tables with 0-based half-open coordinates, single-column
// "chr:start-end" region strings, and pre-built interval sets (which bypass
// this package entirely).  All coordinate-system conversion happens here, in
// one place, before any interval arithmetic runs.
//
// Malformed rows (missing columns, non-numeric or non-finite coordinates,
// inverted ranges) are dropped, counted, and logged; partial input loss is an
// accepted, non-fatal condition.
package ingest

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/grailbio/base/log"
	"github.com/grailbio/regions/interval"
)

// Format identifies one of the supported input encodings.
type Format int

const (
	// Table rows are (chrom, start[, end]) with 1-based inclusive
	// coordinates.  A missing end column means end := start.
	Table Format = iota
	// BED rows are (chrom, start, end) with 0-based half-open coordinates.
	BED
	// Region rows are single strings of the form "chr:start-end" or
	// "chr:pos", 1-based inclusive.
	Region
)

// ParseFormat maps a format name to its Format value.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "table", "data.frame":
		return Table, nil
	case "bed":
		return BED, nil
	case "region", "chr:start-end":
		return Region, nil
	}
	return 0, fmt.Errorf("ingest: unrecognized format %q (want table, bed, or region)", s)
}

// coordCols returns the number of leading columns a row of the given format
// devotes to coordinates.
func (f Format) coordCols() int {
	if f == Region {
		return 1
	}
	return 3
}

// parseCoord performs the numeric coercion for a single coordinate token.
// Integer syntax is the common case; anything else goes through float parsing
// so inputs like "1e6" or "100.0" survive, matching the permissive coercion
// of the tabular sources these files come from.  Non-finite values are
// rejected.
func parseCoord(tok string) (int64, bool) {
	if v, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return v, true
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int64(f), true
}

func validInterval(chrom string, start, end int64) (interval.Interval, bool) {
	if chrom == "" || start < 1 || end < start || end > interval.PosTypeMax {
		return interval.Interval{}, false
	}
	return interval.Interval{
		Chrom: chrom,
		Start: interval.PosType(start),
		End:   interval.PosType(end),
	}, true
}

// parseRow normalizes the coordinate columns of one row.  For Table and BED
// rows the first three columns are used (two suffice for Table); for Region
// rows only the first column is used.
func parseRow(f Format, row []string) (interval.Interval, bool) {
	switch f {
	case Table:
		if len(row) < 2 {
			return interval.Interval{}, false
		}
		start, ok := parseCoord(row[1])
		if !ok {
			return interval.Interval{}, false
		}
		end := start
		if len(row) >= 3 {
			if end, ok = parseCoord(row[2]); !ok {
				return interval.Interval{}, false
			}
		}
		return validInterval(row[0], start, end)
	case BED:
		if len(row) < 3 {
			return interval.Interval{}, false
		}
		start, ok := parseCoord(row[1])
		if !ok {
			return interval.Interval{}, false
		}
		end, ok := parseCoord(row[2])
		if !ok {
			return interval.Interval{}, false
		}
		// 0-based half-open to 1-based inclusive.
		return validInterval(row[0], start+1, end)
	case Region:
		if len(row) < 1 {
			return interval.Interval{}, false
		}
		return parseRegionString(row[0])
	}
	return interval.Interval{}, false
}

// parseRegionString parses "chr:start-end" or "chr:pos" with 1-based
// inclusive coordinates.
func parseRegionString(s string) (interval.Interval, bool) {
	colon := strings.IndexByte(s, ':')
	if colon <= 0 {
		return interval.Interval{}, false
	}
	chrom := s[:colon]
	rangeStr := s[colon+1:]
	dash := strings.IndexByte(rangeStr, '-')
	if dash == -1 {
		pos, ok := parseCoord(rangeStr)
		if !ok {
			return interval.Interval{}, false
		}
		return validInterval(chrom, pos, pos)
	}
	start, ok := parseCoord(rangeStr[:dash])
	if !ok {
		return interval.Interval{}, false
	}
	end, ok := parseCoord(rangeStr[dash+1:])
	if !ok {
		return interval.Interval{}, false
	}
	return validInterval(chrom, start, end)
}

// Intervals normalizes rows of the given format, dropping malformed rows.
// The second return value is the number of rows dropped; droppage is logged
// but never fatal.
func Intervals(f Format, rows [][]string) ([]interval.Interval, int) {
	ivs := make([]interval.Interval, 0, len(rows))
	dropped := 0
	for i, row := range rows {
		iv, ok := parseRow(f, row)
		if !ok {
			log.Debug.Printf("ingest: dropping malformed row %d: %v", i, row)
			dropped++
			continue
		}
		ivs = append(ivs, iv)
	}
	if dropped > 0 {
		log.Printf("ingest: dropped %d of %d malformed row(s)", dropped, len(rows))
	}
	return ivs, dropped
}

// LabeledIntervals normalizes annotation rows: coordinates per the given
// format, followed by a mandatory category-label column.  Rows with a missing
// or empty label are malformed and dropped.  labels[i] belongs to ivs[i].
func LabeledIntervals(f Format, rows [][]string) (ivs []interval.Interval, labels []string, dropped int) {
	labelCol := f.coordCols()
	for i, row := range rows {
		if len(row) <= labelCol || row[labelCol] == "" {
			log.Debug.Printf("ingest: dropping annotation row %d without label: %v", i, row)
			dropped++
			continue
		}
		iv, ok := parseRow(f, row)
		if !ok {
			log.Debug.Printf("ingest: dropping malformed annotation row %d: %v", i, row)
			dropped++
			continue
		}
		ivs = append(ivs, iv)
		labels = append(labels, row[labelCol])
	}
	if dropped > 0 {
		log.Printf("ingest: dropped %d of %d malformed annotation row(s)", dropped, len(rows))
	}
	return ivs, labels, dropped
}

// Set normalizes rows and builds an (unreduced) interval set.
func Set(f Format, rows [][]string) (interval.Set, int) {
	ivs, dropped := Intervals(f, rows)
	return interval.NewSet(ivs), dropped
}
