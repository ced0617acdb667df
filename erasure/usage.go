package erasure

import (
	"fmt"
	"reflect"
)

// Usage is the discipline a datum was bound under.
type Usage uint8

const (
	// Value means the slot owns a copy of the datum.
	Value Usage = iota
	// Mutable aliases an addressable binding and allows writes through it.
	Mutable
	// Immutable aliases any binding and only allows reads.
	Immutable
	// Transfer aliases a binding that is consumed by its first read.
	Transfer
)

func (u Usage) String() string {
	switch u {
	case Value:
		return "value"
	case Mutable:
		return "mutable"
	case Immutable:
		return "immutable"
	case Transfer:
		return "transfer"
	default:
		return fmt.Sprintf("usage(%d)", uint8(u))
	}
}

// TypeID is the runtime identity of a stored datum: its type plus the usage
// it was bound under. TypeIDs are comparable and may be used as map keys or
// switch cases.
type TypeID struct {
	t reflect.Type
	u Usage
}

// TypeOf returns the TypeID for T bound under u.
func TypeOf[T any](u Usage) TypeID {
	return TypeID{t: reflect.TypeFor[T](), u: u}
}

// Usage returns the usage half of the identity.
func (id TypeID) Usage() Usage { return id.u }

// Name returns the type half of the identity, e.g. "[]int".
func (id TypeID) Name() string {
	if id.t == nil {
		return "<nil>"
	}
	return id.t.String()
}

// String renders the identity as "<usage> <type>", e.g. "immutable string".
func (id TypeID) String() string {
	return id.u.String() + " " + id.Name()
}

// Same reports whether id and other name the same type, ignoring usage.
func (id TypeID) Same(other TypeID) bool {
	return id.t == other.t
}
