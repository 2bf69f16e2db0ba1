// Package text reads the almanac text document.
//
// A document starts with a seeds line followed by stage blocks:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// Each row is "destination source length". Blank lines separate blocks.
package text
