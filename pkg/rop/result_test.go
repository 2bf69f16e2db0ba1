package rop

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSuccess(t *testing.T) {
	t.Parallel()

	r := Success(35)
	assert.True(t, r.IsSuccess())
	assert.False(t, r.IsFailure())
	assert.False(t, r.IsCancel())
	assert.Equal(t, 35, r.Result())
	assert.NotEqual(t, uuid.Nil, r.Id())
	assert.False(t, r.CreatedAt().IsZero())
}

func TestFailAndCancel(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	f := Fail[int](boom)
	assert.True(t, f.IsFailure())
	assert.False(t, f.IsSuccess())
	assert.ErrorIs(t, f.Err(), boom)

	c := Cancel[int](context.Canceled)
	assert.True(t, c.IsCancel())
	assert.False(t, c.IsFailure())
	assert.False(t, c.IsSuccess())
}

func TestCarryKeepsId(t *testing.T) {
	t.Parallel()

	f := Fail[int](errors.New("x"))
	out := Carry[int, string](f)
	assert.Equal(t, f.Id(), out.Id())
	assert.Equal(t, f.Err(), out.Err())

	s := Success(1)
	next := Follow(s, "one")
	assert.Equal(t, s.Id(), next.Id())
	v, err := next.Unwrap()
	assert.NoError(t, err)
	assert.Equal(t, "one", v)
}

func TestFromError(t *testing.T) {
	t.Parallel()

	assert.True(t, FromError[int](fmt.Errorf("wrap: %w", context.DeadlineExceeded)).IsCancel())
	assert.True(t, FromError[int](errors.New("plain")).IsFailure())
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	a, b := errors.New("a"), errors.New("b")
	assert.Empty(t, GetErrors(nil))
	assert.Equal(t, []error{a}, GetErrors(a))
	assert.Equal(t, []error{a, b}, GetErrors(errors.Join(a, b)))
}
