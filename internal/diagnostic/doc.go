// Package diagnostic provides structured warnings and errors produced while
// validating a parsed almanac.
//
// Key capabilities:
//   - Overlapping mapping reports (first listed mapping wins at resolve time)
//   - Empty mapping and empty stage notices
//   - Stage chain breaks (a stage whose source domain is not the previous
//     stage's destination domain)
package diagnostic
