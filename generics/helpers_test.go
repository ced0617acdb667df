package generics_test

import (
	"fmt"
	"strings"

	"github.com/on-the-ground/anyref/erasure"
	"github.com/on-the-ground/anyref/generics"
	"github.com/on-the-ground/anyref/ref"
)

type number interface {
	~int | ~int64 | ~float64
}

// Sequence operations: print, sum and scale any slice of numbers in place.

type seqOps struct{}

var (
	seqSet   = generics.NewSet[seqOps]("seq")
	seqPrint = generics.Declare[*strings.Builder, generics.Void](seqSet, "print")
	seqSum   = generics.Declare[generics.None, float64](seqSet, "sum")
	seqScale = generics.Declare[generics.Args2[int, int], generics.Void](seqSet, "scale")
)

func printSeq[S ~[]E, E number](v *S, w *strings.Builder) generics.Void {
	for i, e := range *v {
		if i > 0 {
			w.WriteByte(' ')
		}
		fmt.Fprint(w, e)
	}
	return generics.Void{}
}

func sumSeq[S ~[]E, E number](v *S, _ generics.None) float64 {
	var total float64
	for _, e := range *v {
		total += float64(e)
	}
	return total
}

func scaleSeq[S ~[]E, E number](v *S, a generics.Args2[int, int]) generics.Void {
	for i := range *v {
		(*v)[i] = ((*v)[i] + E(a.A0)) * E(a.A1)
	}
	return generics.Void{}
}

func seqBundle[S ~[]E, E number](v *S) generics.Bundle1[seqOps, ref.Ref] {
	return generics.New1(seqSet, ref.Mut(v),
		generics.Impl1(seqPrint, printSeq[S, E]),
		generics.Impl1(seqSum, sumSeq[S, E]),
		generics.Impl1(seqScale, scaleSeq[S, E]),
	)
}

// Scalar operations.

type scalarOps struct{}

var (
	scalarSet     = generics.NewSet[scalarOps]("scalar")
	scalarAddFive = generics.Declare[generics.None, generics.Void](scalarSet, "addFive")
)

func addFive[T number](v *T, _ generics.None) generics.Void {
	*v += 5
	return generics.Void{}
}

// Describe operations: report a value, or its type when it is not known.

type describeOps struct{}

var (
	describeSet = generics.NewSet[describeOps]("describe")
	describe    = generics.Declare[generics.None, string](describeSet, "describe")
)

func describeValue[T any](v T, _ generics.None) string {
	switch x := any(v).(type) {
	case int:
		return fmt.Sprintf("int %d", x)
	case float64:
		return fmt.Sprintf("float64 %g", x)
	case string:
		return "string " + x
	default:
		return erasure.TypeOf[T](erasure.Immutable).Name()
	}
}

// Binary operations writing into a result slot.

type addOps struct{}

var (
	addSet  = generics.NewSet[addOps]("add")
	addInto = generics.Declare[generics.None, generics.Void](addSet, "addInto")
)

func addValues[T int | string](a, b T, res *T, _ generics.None) generics.Void {
	*res = a + b
	return generics.Void{}
}
