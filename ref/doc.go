// Package ref provides the four typed reference variants that carry a value
// across an abstraction boundary without exposing its concrete type.
//
//   - Ref aliases a mutable binding. It can only be built from a pointer, so
//     non-addressable operands (ref.Mut(5), ref.Mut(&5)) do not compile.
//     Go allows &T{...} and new(T), so ref.Mut(new(int)) compiles and binds
//     a fresh variable.
//   - CRef aliases or copies any binding and only hands out reads.
//   - RRef aliases a binding that is consumed by its first read; the source
//     is reset to its zero value, and a second read panics.
//   - URef accepts any of the three and remembers which one was used.
//
// Each variant is a small value wrapping an erasure.Slot. Copying it clones
// the reference, never the referent.
//
// Construction goes through a typed Binding, which still knows the concrete
// type and how to read it back. Bindings are what generics bundles are built
// from; Erase turns one into its variant for plain hand-off:
//
//	func add(a ref.Ref) {
//	    if ref.Is[int](a) {
//	        *ref.Mutable[int](a) += 5
//	    }
//	}
//
//	i := 5
//	add(ref.NewRef(&i)) // i == 10
package ref
