package erasure

import "sync/atomic"

// holder is the single-word record stored in a Slot. Every implementation is
// pointer-shaped so that storing it in the slot's interface never boxes.
type holder interface {
	typeID() TypeID
	clone() holder
}

// Empty is the placeholder type stored in unused slots.
type Empty struct{}

type emptyHolder struct{}

func (emptyHolder) typeID() TypeID { return TypeOf[Empty](Value) }
func (emptyHolder) clone() holder  { return emptyHolder{} }

// valueHolder owns its datum; cloning copies it.
type valueHolder[T any] struct {
	p *T
}

func (h valueHolder[T]) typeID() TypeID { return TypeOf[T](Value) }
func (h valueHolder[T]) clone() holder {
	v := *h.p
	return valueHolder[T]{p: &v}
}

type mutableHolder[T any] struct {
	p *T
}

func (h mutableHolder[T]) typeID() TypeID { return TypeOf[T](Mutable) }
func (h mutableHolder[T]) clone() holder  { return h }

type immutableHolder[T any] struct {
	p *T
}

func (h immutableHolder[T]) typeID() TypeID { return TypeOf[T](Immutable) }
func (h immutableHolder[T]) clone() holder  { return h }

// transferHolder points at a one-shot cell shared by all of its clones, so a
// value moved out through any copy is consumed for every copy.
type transferHolder[T any] struct {
	c *transferCell[T]
}

func (h transferHolder[T]) typeID() TypeID { return TypeOf[T](Transfer) }
func (h transferHolder[T]) clone() holder  { return h }
func (h transferHolder[T]) consumed() bool { return h.c.consumed() }

type transferCell[T any] struct {
	used atomic.Bool
	p    *T
}

// take relocates the referent out of its source, leaving the zero value behind.
func (c *transferCell[T]) take() (T, bool) {
	if !c.used.CompareAndSwap(false, true) {
		var zero T
		return zero, false
	}
	v := *c.p
	var zero T
	*c.p = zero
	return v, true
}

func (c *transferCell[T]) consumed() bool { return c.used.Load() }
