// Package generics bundles erased references together with a dispatch table
// of generic operations, so that a receiver which does not know the concrete
// types can still run those operations against them.
//
// An operation set is declared once per bundle type:
//
//	type seqOps struct{}
//
//	var (
//	    SeqOps = generics.NewSet[seqOps]("seq")
//	    Print  = generics.Declare[generics.None, generics.Void](SeqOps, "print")
//	    Sum    = generics.Declare[generics.None, int](SeqOps, "sum")
//	    Scale  = generics.Declare[generics.Args2[int, int], generics.Void](SeqOps, "scale")
//	)
//
// The receiver is written against the bundle type only:
//
//	func run(b generics.Bundle1[seqOps, ref.Ref]) int {
//	    generics.Visit(b, Scale, generics.Args2[int, int]{A0: 3, A1: 2})
//	    return generics.Invoke(b, Sum)
//	}
//
// The construction site knows the concrete types, and that is where each
// operation is instantiated:
//
//	v := []int{1, 2, 3}
//	run(generics.New1(SeqOps, ref.Mut(&v),
//	    generics.Impl1(Print, printSeq[[]int]),
//	    generics.Impl1(Sum, sumSeq[[]int]),
//	    generics.Impl1(Scale, scaleSeq[[]int]),
//	))
//
// New validates that every declared operation is implemented exactly once and
// panics otherwise; the first successful New freezes the set. Each
// construction builds a table type specialised to its concrete view types,
// interned per type tuple as a Signature. A bundle value is one pointer to
// its slots and table, neither of which changes after construction, so
// copying a bundle or handing it to Visit never copies the slots. Clone
// makes independent ones.
//
// A Variadic bundle reads every binding back as one view type. Values of
// different concrete types go through ref.AsAny, with operations written over
// []any:
//
//	NewVariadic(set, thunks,
//	    ref.AsAny(ref.Unify(ref.Mut(&n))),
//	    ref.AsAny(ref.Unify(ref.Const("text"))),
//	)
package generics
