package erasure

import "fmt"

// Slot is the fixed-size inline buffer behind every reference. The zero Slot
// holds the placeholder.
//
// Copying a Slot by assignment is a valid clone: holders alias their referent
// (or, for Value, are cloned before any write can reach them), so the copy
// reads exactly what the original reads.
type Slot struct {
	h holder
}

// Construct places a holder for *p bound under u into s, overwriting whatever
// s held before. With Value the datum is copied into storage owned by the
// slot; every other usage aliases *p.
func Construct[T any](s *Slot, p *T, u Usage) {
	if p == nil {
		panic(ErrNilBinding)
	}
	switch u {
	case Value:
		if _, ok := any(p).(*Empty); ok {
			s.h = emptyHolder{}
			return
		}
		v := *p
		s.h = valueHolder[T]{p: &v}
	case Mutable:
		s.h = mutableHolder[T]{p: p}
	case Immutable:
		s.h = immutableHolder[T]{p: p}
	case Transfer:
		s.h = transferHolder[T]{c: &transferCell[T]{p: p}}
	default:
		panic("anyref: unknown usage " + u.String())
	}
}

// ConstructEmpty places the placeholder into s.
func ConstructEmpty(s *Slot) {
	s.h = emptyHolder{}
}

// EmptySlot returns a slot holding the placeholder.
func EmptySlot() Slot {
	return Slot{h: emptyHolder{}}
}

// TypeID returns the identity of the stored datum.
func (s *Slot) TypeID() TypeID {
	if s.h == nil {
		return emptyHolder{}.typeID()
	}
	return s.h.typeID()
}

// IsEmpty reports whether s holds the placeholder.
func (s *Slot) IsEmpty() bool {
	if s.h == nil {
		return true
	}
	_, ok := s.h.(emptyHolder)
	return ok
}

// CopyTo clones the holder of s into dst, replacing dst's holder.
func (s *Slot) CopyTo(dst *Slot) {
	if s.h == nil {
		dst.h = nil
		return
	}
	dst.h = s.h.clone()
}

// Clone returns a slot holding a clone of s's holder.
func (s *Slot) Clone() Slot {
	var c Slot
	s.CopyTo(&c)
	return c
}

func (s *Slot) String() string {
	return "slot(" + s.TypeID().String() + ")"
}

// Is reports whether s holds a T bound under u.
func Is[T any](s *Slot, u Usage) bool {
	switch u {
	case Value:
		if _, ok := any((*T)(nil)).(*Empty); ok {
			return s.IsEmpty()
		}
		_, ok := s.h.(valueHolder[T])
		return ok
	case Mutable:
		_, ok := s.h.(mutableHolder[T])
		return ok
	case Immutable:
		_, ok := s.h.(immutableHolder[T])
		return ok
	case Transfer:
		_, ok := s.h.(transferHolder[T])
		return ok
	default:
		return false
	}
}

// GetMutable returns a writable view of the T that s holds mutably.
// Panics if s does not hold a mutable T.
func GetMutable[T any](s *Slot) *T {
	h, ok := s.h.(mutableHolder[T])
	if !ok {
		mismatch(s, TypeOf[T](Mutable))
	}
	return h.p
}

// GetImmutable returns a copy of the T that s holds immutably.
// Panics if s does not hold an immutable T.
func GetImmutable[T any](s *Slot) T {
	h, ok := s.h.(immutableHolder[T])
	if !ok {
		mismatch(s, TypeOf[T](Immutable))
	}
	return *h.p
}

// GetValue returns a copy of the T that s owns.
// Panics if s does not own a T.
func GetValue[T any](s *Slot) T {
	h, ok := s.h.(valueHolder[T])
	if !ok {
		mismatch(s, TypeOf[T](Value))
	}
	return *h.p
}

// Take moves the transferable T out of s. The source binding is left holding
// the zero value. Panics if s does not hold a transferable T, or if the value
// was already taken through s or any clone of it.
func Take[T any](s *Slot) T {
	h, ok := s.h.(transferHolder[T])
	if !ok {
		mismatch(s, TypeOf[T](Transfer))
	}
	v, ok := h.c.take()
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrConsumed, h.typeID()))
	}
	return v
}

// TryTake is the non-panicking variant of Take. It returns false when s does
// not hold a transferable T or the value was already taken.
func TryTake[T any](s *Slot) (T, bool) {
	h, ok := s.h.(transferHolder[T])
	if !ok {
		var zero T
		return zero, false
	}
	return h.c.take()
}

// Consumed reports whether s holds a transferable value that was already taken.
func Consumed(s *Slot) bool {
	if c, ok := s.h.(interface{ consumed() bool }); ok {
		return c.consumed()
	}
	return false
}
