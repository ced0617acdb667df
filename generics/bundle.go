package generics

import (
	"github.com/on-the-ground/anyref/erasure"
	"github.com/on-the-ground/anyref/ref"
)

// Thunk1 is one operation of set S instantiated for a single bound value
// read back as V0.
type Thunk1[S, V0 any] struct {
	opRef
	build func(viewer[V0]) any
}

// Impl1 instantiates op for bundles of one value, implemented by fn.
func Impl1[S, V0, A, R any](op Op[S, A, R], fn func(V0, A) R) Thunk1[S, V0] {
	return Thunk1[S, V0]{
		opRef: op.ref(),
		build: func(v0 viewer[V0]) any {
			return entry[A, R](func(slots []erasure.Slot, args A) R {
				return fn(v0(&slots[0]), args)
			})
		},
	}
}

// Bundle1 is one erased reference of variant K0 plus the dispatch table of
// operation set S.
type Bundle1[S any, K0 ref.Kind] struct {
	c *core
}

// New1 bundles b0 with the operations of set. thunks must implement every
// operation of set exactly once; New1 panics otherwise.
func New1[S any, K0 ref.Kind, V0 any](set *Set[S], b0 ref.Binding[K0, V0], thunks ...Thunk1[S, V0]) Bundle1[S, K0] {
	slots := []erasure.Slot{b0.Slot()}
	t := prepare(set, slots, opsOf(thunks))
	for _, th := range thunks {
		t.entries[th.index] = th.build(b0.Viewer())
	}
	return Bundle1[S, K0]{c: newCore(slots, len(slots), table1[S, V0]{t})}
}

// Ref0 returns the first reference.
func (b Bundle1[S, K0]) Ref0() K0 { return ref.Wrap[K0](*b.c.slotAt(0)) }

// Len returns the number of bundled references.
func (b Bundle1[S, K0]) Len() int { return 1 }

// Signature returns the concrete-type tuple b was built from.
func (b Bundle1[S, K0]) Signature() *Signature { return b.c.signature() }

// Clone returns a copy of b whose references and table are cloned through
// their own clone entry points.
func (b Bundle1[S, K0]) Clone() Bundle1[S, K0] { return Bundle1[S, K0]{c: b.c.clone()} }

func (b Bundle1[S, K0]) bundle() view[S]            { return view[S]{b.c} }
func (b Bundle1[S, K0]) slotAt(i int) *erasure.Slot { return b.c.slotAt(i) }

// Thunk2 is one operation of set S instantiated for two bound values.
type Thunk2[S, V0, V1 any] struct {
	opRef
	build func(viewer[V0], viewer[V1]) any
}

// Impl2 instantiates op for bundles of two values, implemented by fn.
func Impl2[S, V0, V1, A, R any](op Op[S, A, R], fn func(V0, V1, A) R) Thunk2[S, V0, V1] {
	return Thunk2[S, V0, V1]{
		opRef: op.ref(),
		build: func(v0 viewer[V0], v1 viewer[V1]) any {
			return entry[A, R](func(slots []erasure.Slot, args A) R {
				return fn(v0(&slots[0]), v1(&slots[1]), args)
			})
		},
	}
}

// Bundle2 is two erased references plus the dispatch table of set S.
type Bundle2[S any, K0, K1 ref.Kind] struct {
	c *core
}

// New2 bundles b0 and b1 with the operations of set.
func New2[S any, K0, K1 ref.Kind, V0, V1 any](
	set *Set[S],
	b0 ref.Binding[K0, V0],
	b1 ref.Binding[K1, V1],
	thunks ...Thunk2[S, V0, V1],
) Bundle2[S, K0, K1] {
	slots := []erasure.Slot{b0.Slot(), b1.Slot()}
	t := prepare(set, slots, opsOf(thunks))
	for _, th := range thunks {
		t.entries[th.index] = th.build(b0.Viewer(), b1.Viewer())
	}
	return Bundle2[S, K0, K1]{c: newCore(slots, len(slots), table2[S, V0, V1]{t})}
}

func (b Bundle2[S, K0, K1]) Ref0() K0              { return ref.Wrap[K0](*b.c.slotAt(0)) }
func (b Bundle2[S, K0, K1]) Ref1() K1              { return ref.Wrap[K1](*b.c.slotAt(1)) }
func (b Bundle2[S, K0, K1]) Len() int              { return 2 }
func (b Bundle2[S, K0, K1]) Signature() *Signature { return b.c.signature() }
func (b Bundle2[S, K0, K1]) Clone() Bundle2[S, K0, K1] {
	return Bundle2[S, K0, K1]{c: b.c.clone()}
}

func (b Bundle2[S, K0, K1]) bundle() view[S]            { return view[S]{b.c} }
func (b Bundle2[S, K0, K1]) slotAt(i int) *erasure.Slot { return b.c.slotAt(i) }

// Thunk3 is one operation of set S instantiated for three bound values.
type Thunk3[S, V0, V1, V2 any] struct {
	opRef
	build func(viewer[V0], viewer[V1], viewer[V2]) any
}

// Impl3 instantiates op for bundles of three values, implemented by fn.
func Impl3[S, V0, V1, V2, A, R any](op Op[S, A, R], fn func(V0, V1, V2, A) R) Thunk3[S, V0, V1, V2] {
	return Thunk3[S, V0, V1, V2]{
		opRef: op.ref(),
		build: func(v0 viewer[V0], v1 viewer[V1], v2 viewer[V2]) any {
			return entry[A, R](func(slots []erasure.Slot, args A) R {
				return fn(v0(&slots[0]), v1(&slots[1]), v2(&slots[2]), args)
			})
		},
	}
}

// Bundle3 is three erased references plus the dispatch table of set S.
type Bundle3[S any, K0, K1, K2 ref.Kind] struct {
	c *core
}

// New3 bundles b0, b1 and b2 with the operations of set.
func New3[S any, K0, K1, K2 ref.Kind, V0, V1, V2 any](
	set *Set[S],
	b0 ref.Binding[K0, V0],
	b1 ref.Binding[K1, V1],
	b2 ref.Binding[K2, V2],
	thunks ...Thunk3[S, V0, V1, V2],
) Bundle3[S, K0, K1, K2] {
	slots := []erasure.Slot{b0.Slot(), b1.Slot(), b2.Slot()}
	t := prepare(set, slots, opsOf(thunks))
	for _, th := range thunks {
		t.entries[th.index] = th.build(b0.Viewer(), b1.Viewer(), b2.Viewer())
	}
	return Bundle3[S, K0, K1, K2]{c: newCore(slots, len(slots), table3[S, V0, V1, V2]{t})}
}

func (b Bundle3[S, K0, K1, K2]) Ref0() K0              { return ref.Wrap[K0](*b.c.slotAt(0)) }
func (b Bundle3[S, K0, K1, K2]) Ref1() K1              { return ref.Wrap[K1](*b.c.slotAt(1)) }
func (b Bundle3[S, K0, K1, K2]) Ref2() K2              { return ref.Wrap[K2](*b.c.slotAt(2)) }
func (b Bundle3[S, K0, K1, K2]) Len() int              { return 3 }
func (b Bundle3[S, K0, K1, K2]) Signature() *Signature { return b.c.signature() }
func (b Bundle3[S, K0, K1, K2]) Clone() Bundle3[S, K0, K1, K2] {
	return Bundle3[S, K0, K1, K2]{c: b.c.clone()}
}

func (b Bundle3[S, K0, K1, K2]) bundle() view[S]            { return view[S]{b.c} }
func (b Bundle3[S, K0, K1, K2]) slotAt(i int) *erasure.Slot { return b.c.slotAt(i) }

// Thunk4 is one operation of set S instantiated for four bound values.
type Thunk4[S, V0, V1, V2, V3 any] struct {
	opRef
	build func(viewer[V0], viewer[V1], viewer[V2], viewer[V3]) any
}

// Impl4 instantiates op for bundles of four values, implemented by fn.
func Impl4[S, V0, V1, V2, V3, A, R any](op Op[S, A, R], fn func(V0, V1, V2, V3, A) R) Thunk4[S, V0, V1, V2, V3] {
	return Thunk4[S, V0, V1, V2, V3]{
		opRef: op.ref(),
		build: func(v0 viewer[V0], v1 viewer[V1], v2 viewer[V2], v3 viewer[V3]) any {
			return entry[A, R](func(slots []erasure.Slot, args A) R {
				return fn(v0(&slots[0]), v1(&slots[1]), v2(&slots[2]), v3(&slots[3]), args)
			})
		},
	}
}

// Bundle4 is four erased references plus the dispatch table of set S.
type Bundle4[S any, K0, K1, K2, K3 ref.Kind] struct {
	c *core
}

// New4 bundles b0 through b3 with the operations of set.
func New4[S any, K0, K1, K2, K3 ref.Kind, V0, V1, V2, V3 any](
	set *Set[S],
	b0 ref.Binding[K0, V0],
	b1 ref.Binding[K1, V1],
	b2 ref.Binding[K2, V2],
	b3 ref.Binding[K3, V3],
	thunks ...Thunk4[S, V0, V1, V2, V3],
) Bundle4[S, K0, K1, K2, K3] {
	slots := []erasure.Slot{b0.Slot(), b1.Slot(), b2.Slot(), b3.Slot()}
	t := prepare(set, slots, opsOf(thunks))
	for _, th := range thunks {
		t.entries[th.index] = th.build(b0.Viewer(), b1.Viewer(), b2.Viewer(), b3.Viewer())
	}
	return Bundle4[S, K0, K1, K2, K3]{c: newCore(slots, len(slots), table4[S, V0, V1, V2, V3]{t})}
}

func (b Bundle4[S, K0, K1, K2, K3]) Ref0() K0              { return ref.Wrap[K0](*b.c.slotAt(0)) }
func (b Bundle4[S, K0, K1, K2, K3]) Ref1() K1              { return ref.Wrap[K1](*b.c.slotAt(1)) }
func (b Bundle4[S, K0, K1, K2, K3]) Ref2() K2              { return ref.Wrap[K2](*b.c.slotAt(2)) }
func (b Bundle4[S, K0, K1, K2, K3]) Ref3() K3              { return ref.Wrap[K3](*b.c.slotAt(3)) }
func (b Bundle4[S, K0, K1, K2, K3]) Len() int              { return 4 }
func (b Bundle4[S, K0, K1, K2, K3]) Signature() *Signature { return b.c.signature() }
func (b Bundle4[S, K0, K1, K2, K3]) Clone() Bundle4[S, K0, K1, K2, K3] {
	return Bundle4[S, K0, K1, K2, K3]{c: b.c.clone()}
}

func (b Bundle4[S, K0, K1, K2, K3]) bundle() view[S] { return view[S]{b.c} }
func (b Bundle4[S, K0, K1, K2, K3]) slotAt(i int) *erasure.Slot {
	return b.c.slotAt(i)
}
