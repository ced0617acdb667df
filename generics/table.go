package generics

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/on-the-ground/anyref/erasure"
	"github.com/on-the-ground/anyref/shared/helper"
)

// entry is one generated thunk: it reads the bundled slots back through
// their usage-correct views and forwards them, plus args, to an operation.
type entry[A, R any] func(slots []erasure.Slot, args A) R

// viewer reads one slot back as the view an operation expects.
type viewer[V any] func(*erasure.Slot) V

// dispatcher is the erased face of a dispatch table: one entry per declared
// operation and a clone entry point. Implementations are generated per
// concrete view-type tuple and are immutable once built.
type dispatcher interface {
	entry(i int) any
	setID() uuid.UUID
	signature() *Signature
	clone() dispatcher
}

type tableCore struct {
	set     uuid.UUID
	entries []any
	sig     *Signature
}

func (t *tableCore) entry(i int) any       { return t.entries[i] }
func (t *tableCore) setID() uuid.UUID      { return t.set }
func (t *tableCore) signature() *Signature { return t.sig }

type table1[S, V0 any] struct{ *tableCore }

func (t table1[S, V0]) clone() dispatcher { return t }

type table2[S, V0, V1 any] struct{ *tableCore }

func (t table2[S, V0, V1]) clone() dispatcher { return t }

type table3[S, V0, V1, V2 any] struct{ *tableCore }

func (t table3[S, V0, V1, V2]) clone() dispatcher { return t }

type table4[S, V0, V1, V2, V3 any] struct{ *tableCore }

func (t table4[S, V0, V1, V2, V3]) clone() dispatcher { return t }

type tableN[S, V any] struct{ *tableCore }

func (t tableN[S, V]) clone() dispatcher { return t }

// prepare validates thunks against set, interns the signature of slots and
// returns the table skeleton whose entries the caller fills in.
func prepare[S any](set *Set[S], slots []erasure.Slot, refs []opRef) *tableCore {
	n, err := set.seal(refs)
	if err != nil {
		panic(err)
	}
	return &tableCore{
		set:     set.id,
		entries: make([]any, n),
		sig:     intern(set, slots),
	}
}

// core is the state behind a bundle value: its slots and dispatch table.
// Neither changes after construction, so copies of a bundle share it.
type core struct {
	slots []erasure.Slot
	n     int
	table dispatcher
}

func newCore(slots []erasure.Slot, n int, table dispatcher) *core {
	return &core{slots: slots, n: n, table: table}
}

// slotAt returns slot i. A zero bundle reads as the placeholder.
func (c *core) slotAt(i int) *erasure.Slot {
	if c == nil {
		s := erasure.EmptySlot()
		return &s
	}
	return &c.slots[i]
}

func (c *core) len() int {
	if c == nil {
		return 0
	}
	return c.n
}

func (c *core) signature() *Signature {
	if c == nil {
		return nil
	}
	return c.table.signature()
}

func (c *core) clone() *core {
	if c == nil {
		return nil
	}
	slots := make([]erasure.Slot, len(c.slots))
	for i := range c.slots {
		c.slots[i].CopyTo(&slots[i])
	}
	return newCore(slots, c.n, c.table.clone())
}

// view is what Visit needs from a bundle of set S. It is a single pointer,
// so handing a bundle to Visit copies one word.
type view[S any] struct {
	c *core
}

// Visitable is implemented by every bundle of set S.
type Visitable[S any] interface {
	bundle() view[S]
}

// Visit runs op against the values bundled in b with the extra arguments
// args, and returns its result. It behaves exactly as calling the
// operation's implementation directly with the concrete values b was built
// from.
func Visit[B Visitable[S], S, A, R any](b B, op Op[S, A, R], args A) R {
	c := b.bundle().c
	if c == nil {
		panic(ErrZeroBundle)
	}
	if op.set == nil || c.table.setID() != op.set.id {
		panic(fmt.Errorf("%w: %q", ErrForeignOp, op.name))
	}
	fn := helper.MustCast[entry[A, R]](c.table.entry(op.index))
	return fn(c.slots, args)
}

// Invoke runs an operation that takes no extra arguments.
func Invoke[B Visitable[S], S, R any](b B, op Op[S, None, R]) R {
	return Visit(b, op, None{})
}

// Slotted is implemented by every bundle regardless of its set.
type Slotted interface {
	slotAt(i int) *erasure.Slot
}

// IsAt reports whether slot i of b holds a T bound under usage.
func IsAt[T any](b Slotted, i int, usage erasure.Usage) bool {
	return erasure.Is[T](b.slotAt(i), usage)
}

// MutableAt returns the writable T in slot i of b.
// Panics if the slot does not hold a mutable T.
func MutableAt[T any](b Slotted, i int) *T {
	return erasure.GetMutable[T](b.slotAt(i))
}

// ImmutableAt returns the T in slot i of b.
// Panics if the slot does not hold an immutable T.
func ImmutableAt[T any](b Slotted, i int) T {
	return erasure.GetImmutable[T](b.slotAt(i))
}

// TakeAt moves the transferable T out of slot i of b.
// Panics if the slot does not hold a transferable T or it was already taken.
func TakeAt[T any](b Slotted, i int) T {
	return erasure.Take[T](b.slotAt(i))
}
