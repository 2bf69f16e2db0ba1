package rop

import (
	"context"
	"errors"
)

// IsCancellationError reports whether err was caused by a cancelled or expired context.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// FromError builds a failure, or a cancellation when err came from the context.
func FromError[T any](err error) Result[T] {
	if IsCancellationError(err) {
		return Cancel[T](err)
	}
	return Fail[T](err)
}

// GetErrors flattens a joined error into its parts.
func GetErrors(err error) []error {
	if err == nil {
		return []error{}
	}
	if e, ok := err.(interface{ Unwrap() []error }); ok {
		return e.Unwrap()
	}
	return []error{err}
}
