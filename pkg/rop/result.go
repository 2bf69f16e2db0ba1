package rop

import (
	"time"

	"github.com/google/uuid"
)

// Result carries either a value or an error along the railway.
// A cancelled result is a failure whose error came from context cancellation.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isCancel  bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     v,
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		err:       err,
	}
}

func Cancel[T any](err error) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		err:       err,
		isCancel:  true,
	}
}

// Carry moves a failed or cancelled result onto another value type,
// keeping its id so the run can still be correlated.
func Carry[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		id:        from.id,
		createdAt: from.createdAt,
		err:       from.err,
		isCancel:  from.isCancel,
	}
}

// Follow wraps v as a success that keeps the id of prev.
func Follow[In, Out any](prev Result[In], v Out) Result[Out] {
	return Result[Out]{
		id:        prev.id,
		createdAt: time.Now().UTC(),
		value:     v,
	}
}

func (r Result[T]) Result() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

func (r Result[T]) IsFailure() bool {
	return r.err != nil && !r.isCancel
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}

// Unwrap returns the value and error in Go's usual shape.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// WithId returns a copy of r tagged with id.
func (r Result[T]) WithId(id uuid.UUID) Result[T] {
	r.id = id
	return r
}
