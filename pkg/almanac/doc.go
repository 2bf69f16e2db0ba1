// Package almanac maps sets of half-open integer intervals through an
// ordered chain of remapping stages and reports the smallest value that
// comes out of the last stage.
//
// A Stage holds disjoint rules, each shifting one contiguous source range
// by a fixed offset. Values outside every rule keep their value. Stages only
// ever split intervals at rule boundaries, so a query costs time in the
// number of intervals and rules, never in the width of the ranges:
//
//	p, err := almanac.NewPipeline(seedToSoil, soilToFertilizer)
//	ivs, err := almanac.FromPairs([]int64{79, 14, 55, 13})
//	closest, err := p.ClosestDestination(ivs)
//
// Stages and pipelines are immutable once built and safe for concurrent use.
package almanac
