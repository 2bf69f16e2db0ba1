// Package chain provides a fluent wrapper around rop.Result for building
// synchronous railway chains on top of the solo primitives.
//
// An almanac solve is written as one chain: read the document, build the
// pipeline, query it. The first failing step short-circuits the rest and
// its error, tagged with the chain's id, reaches Finally.
package chain
