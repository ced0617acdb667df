// Package erasure provides the fixed-size inline storage underneath every
// anyref reference.
//
// A Slot holds exactly one holder: a single-word record that aliases (or, for
// the Value usage, owns) one datum of a concrete type together with the usage
// discipline it was bound under. The pair (type, usage) forms the runtime
// TypeID, so an int bound mutably and an int bound immutably never compare
// equal.
//
// Reads are type-checked. Asking a slot for a type or usage it does not hold
// is a programmer error and panics; Is is the non-failing query that should
// guard any conditional read.
//
//	var s erasure.Slot
//	x := 5
//	erasure.Construct(&s, &x, erasure.Mutable)
//	*erasure.GetMutable[int](&s) += 5 // x == 10
package erasure
