// Package pipeline chains rule sets into the stage sequence that turns a seed
// into a location, and answers the two minimum queries over it.
//
// Resolution flow:
//  1. A single value is folded through every stage in declaration order
//     (Pipeline.Resolve).
//  2. A set of ranges is folded the same way (Pipeline.ResolveRanges); after
//     each stage the ranges are merged, which keeps the set small without
//     changing which values it covers.
//  3. The minimum over ranges is the smallest start among the resolved ranges,
//     since every stage shifts each sub-range by a constant.
//
// Resolver runs step 2 per seed range on a bounded worker group. It is an
// optional speedup; MinimumOverRanges gives the same answer sequentially.
package pipeline
