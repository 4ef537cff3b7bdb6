// Package mapping provides the piecewise translation rules of a single
// pipeline stage and the range splitting that lets a whole interval of
// identifiers pass through a stage at once.
//
// # Mapping
//
// A Mapping is written as "destination source length" and translates every
// value in [source, source+length) by the constant offset destination-source:
//
//	50 98 2    98 -> 50, 99 -> 51
//	52 50 48   50 -> 52, ..., 97 -> 99
//
// # RuleSet
//
// A RuleSet is one stage, e.g. "seed-to-soil map". Values not covered by any
// of its mappings pass through unchanged (identity fallback). Source ranges
// are expected to be disjoint; when they are not, the first listed mapping
// wins for both single values and ranges, and Validate reports the overlap.
//
// # Range splitting
//
// ApplyRange cuts an input range against one mapping's source interval into
// at most three pieces:
//
//	input      [-----------------------)
//	source           [--------)
//	pieces     [ before ][inside][ after )
//	                      shifted
//
// RuleSet.ResolveRanges applies this mapping by mapping, carrying only the
// still unmapped pieces forward, so each stage costs O(ranges x mappings)
// regardless of how many values the ranges hold.
package mapping
