package generics

import (
	"fmt"

	"github.com/on-the-ground/anyref/erasure"
	"github.com/on-the-ground/anyref/ref"
)

// MaxArgs is the number of slots in a Variadic bundle.
const MaxArgs = 16

// ThunkN is one operation of set S instantiated for a variadic bundle whose
// values are all read back as V.
type ThunkN[S, V any] struct {
	opRef
	build func(views []viewer[V]) any
}

// ImplN instantiates op for variadic bundles, implemented by fn. fn receives
// exactly the values the bundle was built from, never the placeholders.
func ImplN[S, V, A, R any](op Op[S, A, R], fn func([]V, A) R) ThunkN[S, V] {
	return ThunkN[S, V]{
		opRef: op.ref(),
		build: func(views []viewer[V]) any {
			return entry[A, R](func(slots []erasure.Slot, args A) R {
				vs := make([]V, len(views))
				for i, v := range views {
					vs[i] = v(&slots[i])
				}
				return fn(vs, args)
			})
		},
	}
}

// Variadic holds up to MaxArgs erased references of variant K plus the
// dispatch table of set S. Slots past Len hold the placeholder.
//
// Every binding of one Variadic is read back as the same view type V. To
// bundle values of different concrete types, widen each binding with
// ref.AsAny (usually after ref.Unify) and implement the operations over
// []any.
type Variadic[S any, K ref.Kind] struct {
	c *core
}

// NewVariadic bundles between 0 and MaxArgs bindings with the operations of
// set. It panics with ErrTooManyArgs past MaxArgs, and like New1 when thunks
// do not implement set exactly.
func NewVariadic[S any, K ref.Kind, V any](set *Set[S], thunks []ThunkN[S, V], bindings ...ref.Binding[K, V]) Variadic[S, K] {
	n := len(bindings)
	if n > MaxArgs {
		panic(fmt.Errorf("%w: %d bindings, at most %d", ErrTooManyArgs, n, MaxArgs))
	}
	slots := make([]erasure.Slot, MaxArgs)
	views := make([]viewer[V], n)
	for i := range slots {
		if i < n {
			slots[i] = bindings[i].Slot()
			views[i] = bindings[i].Viewer()
			continue
		}
		erasure.ConstructEmpty(&slots[i])
	}

	t := prepare(set, slots[:n], opsOf(thunks))
	for _, th := range thunks {
		t.entries[th.index] = th.build(views)
	}
	return Variadic[S, K]{c: newCore(slots, n, tableN[S, V]{t})}
}

// Ref returns reference i. Indices past Len return the placeholder.
func (b Variadic[S, K]) Ref(i int) K { return ref.Wrap[K](*b.c.slotAt(i)) }

// Len returns the number of bound references.
func (b Variadic[S, K]) Len() int { return b.c.len() }

// Signature returns the concrete-type tuple of the bound references.
func (b Variadic[S, K]) Signature() *Signature { return b.c.signature() }

// Clone returns a copy of b.
func (b Variadic[S, K]) Clone() Variadic[S, K] { return Variadic[S, K]{c: b.c.clone()} }

func (b Variadic[S, K]) bundle() view[S]            { return view[S]{b.c} }
func (b Variadic[S, K]) slotAt(i int) *erasure.Slot { return b.c.slotAt(i) }
