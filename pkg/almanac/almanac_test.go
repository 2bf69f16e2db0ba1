package almanac

import (
	"cmp"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// referenceRows holds the seven documented stages, as (destination, source, length) rows.
var referenceRows = []struct {
	name string
	rows [][3]int64
}{
	{"seed-to-soil", [][3]int64{{50, 98, 2}, {52, 50, 48}}},
	{"soil-to-fertilizer", [][3]int64{{0, 15, 37}, {37, 52, 2}, {39, 0, 15}}},
	{"fertilizer-to-water", [][3]int64{{49, 53, 8}, {0, 11, 42}, {42, 0, 7}, {57, 7, 4}}},
	{"water-to-light", [][3]int64{{88, 18, 7}, {18, 25, 70}}},
	{"light-to-temperature", [][3]int64{{45, 77, 23}, {81, 45, 19}, {68, 64, 13}}},
	{"temperature-to-humidity", [][3]int64{{0, 69, 1}, {1, 0, 69}}},
	{"humidity-to-location", [][3]int64{{60, 56, 37}, {56, 93, 4}}},
}

var referenceSeeds = []int64{79, 14, 55, 13}

func mustStage(t testing.TB, name string, rows ...[3]int64) *Stage {
	t.Helper()
	rules := make([]Rule, 0, len(rows))
	for _, row := range rows {
		r, err := NewRule(row[0], row[1], row[2])
		require.NoError(t, err)
		rules = append(rules, r)
	}
	s, err := NewStage(name, rules...)
	require.NoError(t, err)
	return s
}

func referencePipeline(t testing.TB) *Pipeline {
	t.Helper()
	stages := make([]*Stage, 0, len(referenceRows))
	for _, st := range referenceRows {
		stages = append(stages, mustStage(t, st.name, st.rows...))
	}
	p, err := NewPipeline(stages...)
	require.NoError(t, err)
	return p
}

func sortIntervals(ivs []Interval) []Interval {
	out := slices.Clone(ivs)
	slices.SortFunc(out, func(a, b Interval) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.End, b.End)
	})
	return out
}

func iv(start, end int64) Interval {
	return Interval{Start: start, End: end}
}
