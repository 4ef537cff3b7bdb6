// Package almanac parses the seed list and stage sections of an almanac into
// an immutable Almanac value.
//
// # Text format
//
// Sections are separated by blank lines. The first section is the seed line,
// a label followed by unsigned integers. Every following section is a stage:
// a title line ending in a colon, then one "destination source length" line
// per mapping.
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// The seed integers are read two ways: as individual seeds, and as
// consecutive (start, length) pairs describing seed ranges. Stages are kept
// in file order; titles are never used to reorder them.
//
// # YAML format
//
// The same almanac can be stored as YAML, which is what the export command
// writes:
//
//	seeds: [79, 14, 55, 13]
//	stages:
//	  - title: seed-to-soil map
//	    mappings:
//	      - {destination: 50, source: 98, length: 2}
package almanac
