package lite

import (
	"context"

	"github.com/ib-77/almanac/pkg/rop"
)

// ToChanMany emits every value as a successful Result and closes the channel.
// Emission stops early when ctx is done.
func ToChanMany[T any](ctx context.Context, values []T) <-chan rop.Result[T] {
	in := make(chan rop.Result[T])

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- rop.Success(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// FromChanMany drains out until it is closed or ctx is done.
func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}
