/*Package interval implements set operations over genomic coordinate ranges:
  reduction (merging overlapping/adjacent ranges into a minimal disjoint
  cover), intersection, and overlap base-counting.

  Coordinates are 1-based and inclusive on both ends; ingestion code is
  responsible for converting 0-based half-open inputs before they reach this
  package.  Every position is assumed to fit in a PosType, which is currently
  defined as int32 since that's what BAM files are limited to.

  A reduced Set doubles as the "island" list used by the sampling code: each
  disjoint range is one maximal contiguous block of coverage.
*/
package interval
