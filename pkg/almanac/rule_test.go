package almanac

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRule(t *testing.T) {
	t.Parallel()

	r, err := NewRule(52, 50, 48)
	require.NoError(t, err)
	assert.Equal(t, iv(50, 98), r.SourceRange())
	assert.Equal(t, iv(52, 100), r.DestinationRange())
	assert.Equal(t, int64(2), r.Offset())
	assert.Equal(t, "52 50 48", r.String())

	tests := []struct {
		name    string
		d, s, l int64
		want    error
	}{
		{"zero length", 1, 2, 0, ErrMalformedRule},
		{"negative length", 1, 2, -3, ErrMalformedRule},
		{"negative source", 1, -2, 3, ErrNegative},
		{"negative destination", -1, 2, 3, ErrNegative},
		{"source overflow", 0, math.MaxInt64 - 1, 5, ErrOverflow},
		{"destination overflow", math.MaxInt64 - 1, 0, 5, ErrOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRule(tt.d, tt.s, tt.l)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRuleMap(t *testing.T) {
	t.Parallel()

	r, err := NewRule(50, 98, 2)
	require.NoError(t, err)

	for p := int64(98); p < 100; p++ {
		got, ok := r.Map(p)
		assert.True(t, ok)
		assert.Equal(t, p-98+50, got)
	}
	got, ok := r.Map(100)
	assert.False(t, ok)
	assert.Equal(t, int64(100), got)
}

func TestRuleTranslateOverflow(t *testing.T) {
	t.Parallel()

	// bypasses NewRule to reach the apply-time guard
	r := Rule{Destination: math.MaxInt64 - 2, Source: 0, Length: 10}
	_, err := r.translate(iv(0, 10))
	assert.ErrorIs(t, err, ErrOverflow)

	ok := Rule{Destination: 0, Source: 10, Length: 5}
	got, err := ok.translate(iv(11, 13))
	require.NoError(t, err)
	assert.Equal(t, iv(1, 3), got)
}
