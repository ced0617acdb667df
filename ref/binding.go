package ref

import "github.com/on-the-ground/anyref/erasure"

// Binding is a reference that has not been erased yet. K is the variant it
// erases to and V is the view an operation receives when the binding is read
// back: *T for mutable bindings, T for immutable and transferable ones.
//
// Bindings are only produced by Mut, Const, ConstOf, Move and Unify, which is
// what enforces the binding direction of each variant at compile time.
type Binding[K Kind, V any] struct {
	slot erasure.Slot
	view func(*erasure.Slot) V
}

// Mut binds *p mutably. Non-addressable operands such as Mut(5) or Mut(&5)
// do not compile; pointers to fresh values (Mut(new(int)),
// Mut(&[]int{1})) are accepted and bind a variable nothing else names.
func Mut[T any](p *T) Binding[Ref, *T] {
	b := Binding[Ref, *T]{view: erasure.GetMutable[T]}
	erasure.Construct(&b.slot, p, erasure.Mutable)
	return b
}

// Const binds v immutably. v may be a temporary.
func Const[T any](v T) Binding[CRef, T] {
	return ConstOf(&v)
}

// ConstOf binds *p immutably. Later writes to *p are visible through the
// reference.
func ConstOf[T any](p *T) Binding[CRef, T] {
	b := Binding[CRef, T]{view: erasure.GetImmutable[T]}
	erasure.Construct(&b.slot, p, erasure.Immutable)
	return b
}

// Move binds *p for transfer. Reading the reference moves the value out and
// leaves *p zeroed; it can happen once.
func Move[T any](p *T) Binding[RRef, T] {
	b := Binding[RRef, T]{view: erasure.Take[T]}
	erasure.Construct(&b.slot, p, erasure.Transfer)
	return b
}

// Unify turns b into a binding for the unified variant, keeping its usage.
func Unify[K Restricted, V any](b Binding[K, V]) Binding[URef, V] {
	return Binding[URef, V]{slot: b.slot, view: b.view}
}

// AsAny widens the view of b to any, keeping its variant and usage. Bindings
// of different concrete types can then share one variadic bundle.
func AsAny[K Kind, V any](b Binding[K, V]) Binding[K, any] {
	view := b.Viewer()
	return Binding[K, any]{slot: b.slot, view: func(s *erasure.Slot) any { return view(s) }}
}

// Erase returns the reference variant for b.
func (b Binding[K, V]) Erase() K {
	return Wrap[K](b.slot)
}

// Slot returns a copy of the slot behind b.
func (b Binding[K, V]) Slot() erasure.Slot {
	return b.slot
}

// Viewer returns the usage-correct read for slots built from b. The zero
// Binding reads as an empty slot and panics with erasure.ErrEmptySlot.
func (b Binding[K, V]) Viewer() func(*erasure.Slot) V {
	if b.view == nil {
		return unbound[V]
	}
	return b.view
}

// View reads b back through its usage. For a transfer binding this consumes it.
func (b Binding[K, V]) View() V {
	return b.Viewer()(&b.slot)
}

func unbound[V any](*erasure.Slot) V {
	panic(erasure.ErrEmptySlot)
}

// TypeID returns the identity of the bound value.
func (b Binding[K, V]) TypeID() erasure.TypeID {
	return b.slot.TypeID()
}

// NewRef binds *p mutably and erases it.
func NewRef[T any](p *T) Ref { return Mut(p).Erase() }

// NewCRef binds v immutably and erases it.
func NewCRef[T any](v T) CRef { return Const(v).Erase() }

// NewCRefOf binds *p immutably and erases it.
func NewCRefOf[T any](p *T) CRef { return ConstOf(p).Erase() }

// NewRRef binds *p for transfer and erases it.
func NewRRef[T any](p *T) RRef { return Move(p).Erase() }

// NewURef erases b to a unified reference.
func NewURef[K Restricted, V any](b Binding[K, V]) URef { return Unify(b).Erase() }
