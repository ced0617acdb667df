package main

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/on-the-ground/anyref/generics"
	"github.com/on-the-ground/anyref/ref"
)

type example struct {
	name  string
	title string
	run   func(w io.Writer)
}

var examples = []example{
	{"cref", "immutable references", exampleCRef},
	{"ref", "mutable references", exampleRef},
	{"rref", "transferable references", exampleRRef},
	{"generics1", "sequence visitors", exampleSequences},
	{"generics2", "add into result", exampleAdd},
	{"variadic", "variadic sum", exampleVariadic},
}

func lookupExample(name string) (example, bool) {
	i := slices.IndexFunc(examples, func(e example) bool { return e.name == name })
	if i < 0 {
		return example{}, false
	}
	return examples[i], true
}

func describe(w io.Writer, a ref.CRef) {
	switch {
	case ref.Is[int](a):
		fmt.Fprintln(w, "a is int", ref.Immutable[int](a))
	case ref.Is[float64](a):
		fmt.Fprintln(w, "a is float64", ref.Immutable[float64](a))
	case ref.Is[string](a):
		fmt.Fprintln(w, "a is string", ref.Immutable[string](a))
	default:
		fmt.Fprintln(w, "a is", a.TypeID().Name())
	}
}

func exampleCRef(w io.Writer) {
	describe(w, ref.NewCRef(1))
	describe(w, ref.NewCRef(2.0))
	describe(w, ref.NewCRef("3"))
	describe(w, ref.NewCRef(float32(4)))
}

func grow(a ref.Ref) {
	switch {
	case ref.Is[int](a):
		*ref.Mutable[int](a) += 5
	case ref.Is[float64](a):
		*ref.Mutable[float64](a) += 5.5
	case ref.Is[string](a):
		*ref.Mutable[string](a) += "de"
	}
}

func exampleRef(w io.Writer) {
	i := 5
	grow(ref.NewRef(&i))
	fmt.Fprintln(w, "int res ==", i)
	d := 4.5
	grow(ref.NewRef(&d))
	fmt.Fprintln(w, "float64 res ==", d)
	s := "abc"
	grow(ref.NewRef(&s))
	fmt.Fprintln(w, "string res ==", s)
}

func consume(w io.Writer, a ref.RRef) {
	switch {
	case ref.Is[[]int](a):
		fmt.Fprint(w, "a is []int")
		for _, d := range ref.Take[[]int](a) {
			fmt.Fprint(w, " ", d)
		}
		fmt.Fprintln(w)
	case ref.Is[map[int]int](a):
		m := ref.Take[map[int]int](a)
		fmt.Fprint(w, "a is map[int]int")
		for _, k := range slices.Sorted(maps.Keys(m)) {
			fmt.Fprintf(w, " { %d %d }", k, m[k])
		}
		fmt.Fprintln(w)
	}
}

func exampleRRef(w io.Writer) {
	v := []int{1, 2, 3, 4, 5}
	consume(w, ref.NewRRef(&v))
	fmt.Fprintln(w, "[]int len =", len(v))
	m := map[int]int{1: 2, 2: 4, 3: 6, 4: 8, 5: 10}
	consume(w, ref.NewRRef(&m))
	fmt.Fprintln(w, "map[int]int len =", len(m))
}

type element interface {
	~byte | ~int | ~float64
}

type seqOps struct{}

var (
	seqSet   = generics.NewSet[seqOps]("seq")
	seqPrint = generics.Declare[io.Writer, generics.Void](seqSet, "print")
	seqSum   = generics.Declare[generics.None, int](seqSet, "sum")
	seqScale = generics.Declare[generics.Args2[int, int], generics.Void](seqSet, "scale")
)

func printSeq[S ~[]E, E element](v *S, w io.Writer) generics.Void {
	for _, d := range *v {
		if c, ok := any(d).(byte); ok {
			fmt.Fprintf(w, "%c", c)
			continue
		}
		fmt.Fprint(w, d)
	}
	fmt.Fprintln(w)
	return generics.Void{}
}

func sumSeq[S ~[]E, E element](v *S, _ generics.None) int {
	var total E
	for _, d := range *v {
		total += d
	}
	return int(total)
}

func scaleSeq[S ~[]E, E element](v *S, a generics.Args2[int, int]) generics.Void {
	for i := range *v {
		(*v)[i] = ((*v)[i] + E(a.A0)) * E(a.A1)
	}
	return generics.Void{}
}

func seqBundle[S ~[]E, E element](v *S) generics.Bundle1[seqOps, ref.Ref] {
	return generics.New1(seqSet, ref.Mut(v),
		generics.Impl1(seqPrint, printSeq[S, E]),
		generics.Impl1(seqSum, sumSeq[S, E]),
		generics.Impl1(seqScale, scaleSeq[S, E]),
	)
}

func runSequence(w io.Writer, b generics.Bundle1[seqOps, ref.Ref]) {
	generics.Visit(b, seqPrint, w)
	fmt.Fprintln(w, generics.Invoke(b, seqSum))
	generics.Visit(b, seqScale, generics.Args2[int, int]{A0: 3, A1: 2})
}

func exampleSequences(w io.Writer) {
	v := []int{1, 2, 3, 4, 5}
	runSequence(w, seqBundle(&v))
	fmt.Fprintln(w, "scaled []int ==", v)

	f := []float64{6, 7, 8, 9, 10}
	runSequence(w, seqBundle(&f))
	fmt.Fprintln(w, "scaled []float64 ==", f)

	s := []byte("12345")
	runSequence(w, seqBundle(&s))
	fmt.Fprintf(w, "scaled []byte == %q\n", s)
}

type addOps struct{}

var (
	addSet  = generics.NewSet[addOps]("add")
	addInto = generics.Declare[generics.None, generics.Void](addSet, "addInto")
)

func add[T int | string](a, b T, res *T, _ generics.None) generics.Void {
	*res = a + b
	return generics.Void{}
}

func exampleAdd(w io.Writer) {
	var ires int
	generics.Invoke(generics.New3(addSet, ref.Const(1), ref.Const(2), ref.Mut(&ires),
		generics.Impl3(addInto, add[int])), addInto)
	fmt.Fprintln(w, "int res ==", ires)

	var sres string
	generics.Invoke(generics.New3(addSet, ref.Const("123"), ref.Const("456"), ref.Mut(&sres),
		generics.Impl3(addInto, add[string])), addInto)
	fmt.Fprintln(w, "string res ==", sres)
}

type foldOps struct{}

var (
	foldSet = generics.NewSet[foldOps]("fold")
	foldSum = generics.Declare[generics.None, int](foldSet, "sum")
)

func exampleVariadic(w io.Writer) {
	sum := generics.ImplN(foldSum, func(vs []int, _ generics.None) int {
		total := 0
		for _, v := range vs {
			total += v
		}
		return total
	})
	b := generics.NewVariadic(foldSet, []generics.ThunkN[foldOps, int]{sum},
		ref.Const(1), ref.Const(2), ref.Const(3))
	fmt.Fprintf(w, "sum of %d of %d slots == %d\n", b.Len(), generics.MaxArgs, generics.Invoke(b, foldSum))
}
