package solo

import (
	"context"
	"errors"

	"github.com/ib-77/almanac/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

func Validate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	if !input.IsSuccess() {
		return input
	}
	if ok, msg := validate(ctx, input.Result()); !ok {
		return rop.Fail[T](errors.New(msg)).WithId(input.Id())
	}
	return input
}

func Switch[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if !input.IsSuccess() {
		return rop.Carry[In, Out](input)
	}
	if err := ctx.Err(); err != nil {
		return rop.Cancel[Out](err).WithId(input.Id())
	}
	return onSuccess(ctx, input.Result())
}

func Map[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	if !input.IsSuccess() {
		return rop.Carry[In, Out](input)
	}
	return rop.Follow(input, onSuccess(ctx, input.Result()))
}

func Try[In, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	if !input.IsSuccess() {
		return rop.Carry[In, Out](input)
	}
	if err := ctx.Err(); err != nil {
		return rop.Cancel[Out](err).WithId(input.Id())
	}
	out, err := onTryExecute(ctx, input.Result())
	if err != nil {
		return rop.FromError[Out](err).WithId(input.Id())
	}
	return rop.Follow(input, out)
}

func Tee[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T)) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Result())
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	switch {
	case input.IsSuccess():
		return onSuccess(ctx, input.Result())
	case input.IsCancel():
		return onCancel(ctx, input.Err())
	default:
		return onError(ctx, input.Err())
	}
}
