package chain

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/ib-77/almanac/pkg/rop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain_SuccessPath(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	start := FromValue(ctx, " 79 14 ")
	fields := Map(start, func(_ context.Context, s string) []string { return strings.Fields(s) })
	sum := ThenTry(fields, func(_ context.Context, fs []string) (int, error) {
		total := 0
		for _, f := range fs {
			n, err := strconv.Atoi(f)
			if err != nil {
				return 0, err
			}
			total += n
		}
		return total, nil
	})

	var seen int
	out := sum.Ensure(func(_ context.Context, v int) { seen = v }).Result()
	require.True(t, out.IsSuccess())
	assert.Equal(t, 93, out.Result())
	assert.Equal(t, 93, seen)
	assert.Equal(t, start.Result().Id(), out.Id())
}

func TestChain_ShortCircuits(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	boom := errors.New("boom")
	calls := 0

	c := Then(FromValue(ctx, 1), func(_ context.Context, v int) rop.Result[int] {
		calls++
		return rop.Fail[int](boom)
	})
	c2 := ThenTry(c, func(_ context.Context, v int) (string, error) {
		calls++
		return "unreachable", nil
	})

	got := Finally(c2,
		func(_ context.Context, s string) string { return s },
		func(_ context.Context, err error) string { return "failed: " + err.Error() },
		func(_ context.Context, err error) string { return "cancelled" })

	assert.Equal(t, 1, calls)
	assert.Equal(t, "failed: boom", got)
}

func TestChain_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := Finally(ThenTry(FromValue(ctx, 1), func(_ context.Context, v int) (int, error) { return v, nil }),
		func(_ context.Context, v int) string { return "ok" },
		func(_ context.Context, err error) string { return "failed" },
		func(_ context.Context, err error) string { return "cancelled" })
	assert.Equal(t, "cancelled", got)
}
