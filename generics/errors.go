package generics

import "errors"

var (
	// ErrIncompleteSet is raised when a bundle is built without an
	// implementation for every declared operation.
	ErrIncompleteSet = errors.New("anyref: operation not implemented")

	// ErrDuplicateOp is raised when an operation is implemented twice.
	ErrDuplicateOp = errors.New("anyref: operation implemented twice")

	// ErrForeignOp is raised when an operation of another set is used.
	ErrForeignOp = errors.New("anyref: operation belongs to another set")

	// ErrFrozenSet is raised when an operation is declared after the set
	// was used to build a bundle.
	ErrFrozenSet = errors.New("anyref: operation set is frozen")

	// ErrTooManyArgs is raised when a variadic bundle receives more than
	// MaxArgs bindings.
	ErrTooManyArgs = errors.New("anyref: too many arguments")

	// ErrZeroBundle is raised when a zero-value bundle is visited.
	ErrZeroBundle = errors.New("anyref: bundle was not constructed")
)
