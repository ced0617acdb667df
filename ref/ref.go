package ref

import (
	"fmt"

	"github.com/on-the-ground/anyref/erasure"
)

// Kind is the set of erased reference variants.
type Kind interface {
	Ref | CRef | RRef | URef
}

// Restricted is the set of variants whose usage is fixed by their type.
type Restricted interface {
	Ref | CRef | RRef
}

type base struct {
	slot erasure.Slot
}

// TypeID returns the identity of the referenced value, including its usage.
func (b base) TypeID() erasure.TypeID { return b.slot.TypeID() }

// IsEmpty reports whether the reference holds the placeholder.
func (b base) IsEmpty() bool { return b.slot.IsEmpty() }

func (b base) String() string { return fmt.Sprintf("ref(%s)", b.slot.TypeID()) }

// Ref is a mutable reference to a value of erased type.
type Ref struct{ base }

// CRef is an immutable reference to a value of erased type.
type CRef struct{ base }

// RRef is a transferable reference whose value may be taken once.
type RRef struct{ base }

// URef is a reference of any usage that remembers which usage it was bound
// under.
type URef struct{ base }

// Clone returns a copy of r referring to the same value.
func (r Ref) Clone() Ref { return Ref{base{r.slot.Clone()}} }

// Clone returns a copy of r referring to the same value.
func (r CRef) Clone() CRef { return CRef{base{r.slot.Clone()}} }

// Clone returns a copy of r sharing its single transfer.
func (r RRef) Clone() RRef { return RRef{base{r.slot.Clone()}} }

// Clone returns a copy of u referring to the same value.
func (u URef) Clone() URef { return URef{base{u.slot.Clone()}} }

// Usage returns the usage u was bound under.
func (u URef) Usage() erasure.Usage { return u.slot.TypeID().Usage() }

// AsRef narrows u to a Ref. It returns false unless u was bound mutably.
func (u URef) AsRef() (Ref, bool) {
	if u.Usage() != erasure.Mutable {
		return Ref{}, false
	}
	return Ref(u), true
}

// AsCRef narrows u to a CRef. It returns false unless u was bound immutably.
func (u URef) AsCRef() (CRef, bool) {
	if u.Usage() != erasure.Immutable {
		return CRef{}, false
	}
	return CRef(u), true
}

// AsRRef narrows u to an RRef. It returns false unless u was bound for transfer.
func (u URef) AsRRef() (RRef, bool) {
	if u.Usage() != erasure.Transfer {
		return RRef{}, false
	}
	return RRef(u), true
}

// Wrap builds a reference of variant K around s.
// It does not check that s was constructed under K's usage.
func Wrap[K Kind](s erasure.Slot) K {
	return K(Ref{base{s}})
}

// Unwrap returns the slot behind k.
func Unwrap[K Kind](k K) erasure.Slot {
	return Ref(k).slot
}

// usageOf maps a restricted variant to the usage its slot is built with.
func usageOf[K Restricted]() erasure.Usage {
	var k K
	switch any(k).(type) {
	case Ref:
		return erasure.Mutable
	case CRef:
		return erasure.Immutable
	default:
		return erasure.Transfer
	}
}

// Is reports whether r refers to a T. The usage is the one implied by r's
// variant, so Is[int] on a CRef only matches an immutably bound int.
func Is[T any, K Restricted](r K) bool {
	s := Unwrap(r)
	return erasure.Is[T](&s, usageOf[K]())
}

// IsAs reports whether u refers to a T bound under usage.
func IsAs[T any](u URef, usage erasure.Usage) bool {
	return erasure.Is[T](&u.slot, usage)
}

// Mutable returns a writable view of the T that r refers to.
// Panics if r does not refer to a T.
func Mutable[T any](r Ref) *T {
	return erasure.GetMutable[T](&r.slot)
}

// Immutable returns the T that r refers to.
// Panics if r does not refer to a T.
func Immutable[T any](r CRef) T {
	return erasure.GetImmutable[T](&r.slot)
}

// Take moves the T out of r, resetting the original binding to its zero value.
// Panics if r does not refer to a T or the value was already taken.
func Take[T any](r RRef) T {
	return erasure.Take[T](&r.slot)
}

// TryTake is the non-panicking variant of Take.
func TryTake[T any](r RRef) (T, bool) {
	return erasure.TryTake[T](&r.slot)
}

// Consumed reports whether the value behind r was already taken.
func Consumed(r RRef) bool {
	return erasure.Consumed(&r.slot)
}

// Rebind points r at the value of b, keeping r's variant.
func Rebind[K Kind, V any](r *K, b Binding[K, V]) {
	*r = b.Erase()
}
