package helper

import (
	"errors"
	"fmt"
)

// ErrUnexpectedType is returned when an erased value does not have the
// expected type.
var ErrUnexpectedType = errors.New("unexpected type")

// Cast asserts v to T.
// Returns an error naming both types if the assertion fails.
func Cast[T any](v any) (T, error) {
	val, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: got %T, want %T", ErrUnexpectedType, v, zero)
	}
	return val, nil
}

// MustCast is the panic-on-failure variant of Cast.
// Use when a mismatch can only come from a programming error.
func MustCast[T any](v any) T {
	val, err := Cast[T](v)
	if err != nil {
		panic(err)
	}
	return val
}
