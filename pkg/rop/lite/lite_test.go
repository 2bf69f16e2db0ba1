package lite

import (
	"context"
	"errors"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ib-77/almanac/pkg/rop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Parallel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var active, peak atomic.Int32
	step := func(_ context.Context, in int) rop.Result[int] {
		n := active.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		active.Add(-1)
		return rop.Success(in * 10)
	}

	results := FromChanMany(ctx, Run(ctx, ToChanMany(ctx, []int{1, 2, 3, 4, 5, 6}), step, 3))
	require.Len(t, results, 6)

	got := make([]int, 0, len(results))
	for _, r := range results {
		require.True(t, r.IsSuccess())
		got = append(got, r.Result())
	}
	sort.Ints(got)
	assert.Equal(t, []int{10, 20, 30, 40, 50, 60}, got)
	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestRun_FailuresPassThrough(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	in := make(chan rop.Result[int], 2)
	in <- rop.Fail[int](errors.New("upstream"))
	in <- rop.Success(2)
	close(in)

	var calls atomic.Int32
	results := FromChanMany(ctx, Run(ctx, in, func(_ context.Context, v int) rop.Result[int] {
		calls.Add(1)
		return rop.Success(v)
	}, 1))

	require.Len(t, results, 2)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRun_CancelledProducesNoFailures(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := FromChanMany(context.Background(),
		Run(ctx, ToChanMany(context.Background(), []int{1, 2, 3}), func(_ context.Context, v int) rop.Result[int] {
			return rop.Success(v)
		}, 2))
	for _, r := range results {
		assert.False(t, r.IsFailure())
	}
}

func TestLines(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, 4, Lines(ctx, 4))
	assert.Equal(t, 2, Lines(WithLines(ctx, 2), 4))
	assert.Equal(t, 4, Lines(WithLines(ctx, 0), 4))
}
