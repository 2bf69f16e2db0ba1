package almanac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromScalars(t *testing.T) {
	t.Parallel()

	got, err := FromScalars(referenceSeeds)
	require.NoError(t, err)
	assert.Equal(t, []Interval{iv(79, 80), iv(14, 15), iv(55, 56), iv(13, 14)}, got)

	_, err = FromScalars([]int64{-4})
	assert.ErrorIs(t, err, ErrNegative)
}

func TestFromPairs(t *testing.T) {
	t.Parallel()

	got, err := FromPairs(referenceSeeds)
	require.NoError(t, err)
	assert.Equal(t, []Interval{iv(79, 93), iv(55, 68)}, got)

	got, err = FromPairs([]int64{4, 0, 9, 1})
	require.NoError(t, err)
	assert.Equal(t, []Interval{iv(9, 10)}, got)

	_, err = FromPairs([]int64{1, 2, 3})
	assert.ErrorIs(t, err, ErrUnpairedSeeds)
}

func TestParseModeAndIntervals(t *testing.T) {
	t.Parallel()

	m, err := ParseMode(" Ranges ")
	require.NoError(t, err)
	assert.Equal(t, ModeRanges, m)

	_, err = ParseMode("both")
	assert.Error(t, err)

	got, err := Intervals(ModeScalar, []int64{3})
	require.NoError(t, err)
	assert.Equal(t, []Interval{iv(3, 4)}, got)

	_, err = Intervals(Mode("x"), nil)
	assert.Error(t, err)
}
