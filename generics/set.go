package generics

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/multierr"
)

// None is the extra-argument type of operations that take no extra arguments.
type None struct{}

// Void is the result type of operations that return nothing.
type Void struct{}

// Args2 carries two extra arguments.
type Args2[A0, A1 any] struct {
	A0 A0
	A1 A1
}

// Args3 carries three extra arguments.
type Args3[A0, A1, A2 any] struct {
	A0 A0
	A1 A1
	A2 A2
}

// Set is the ordered list of operations of one bundle type. S is a marker
// type naming the set at compile time; bundles and operations of different
// sets do not mix.
type Set[S any] struct {
	id     uuid.UUID
	name   string
	mu     sync.Mutex
	ops    []string
	frozen atomic.Bool
}

// NewSet returns an empty operation set.
func NewSet[S any](name string) *Set[S] {
	return &Set[S]{id: uuid.New(), name: name}
}

// ID returns the identity of the set.
func (s *Set[S]) ID() uuid.UUID { return s.id }

// Name returns the name the set was created with.
func (s *Set[S]) Name() string { return s.name }

// Len returns the number of declared operations.
func (s *Set[S]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ops)
}

// Ops returns the declared operation names in selector order.
func (s *Set[S]) Ops() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.ops...)
}

// Op selects one operation of set S. A is the type of the extra arguments it
// is visited with and R its result type.
type Op[S, A, R any] struct {
	set   *Set[S]
	index int
	name  string
}

// Declare appends an operation to set and returns its selector.
// Panics once set has been used to build a bundle.
func Declare[A, R, S any](set *Set[S], name string) Op[S, A, R] {
	set.mu.Lock()
	defer set.mu.Unlock()
	if set.frozen.Load() {
		panic(fmt.Errorf("%w: cannot declare %q on %q", ErrFrozenSet, name, set.name))
	}
	set.ops = append(set.ops, name)
	return Op[S, A, R]{set: set, index: len(set.ops) - 1, name: name}
}

// Index returns the selector index of o.
func (o Op[S, A, R]) Index() int { return o.index }

// Name returns the declared name of o.
func (o Op[S, A, R]) Name() string { return o.name }

func (o Op[S, A, R]) ref() opRef {
	if o.set == nil {
		return opRef{index: -1, name: o.name}
	}
	return opRef{setID: o.set.id, setName: o.set.name, index: o.index, name: o.name}
}

// opRef is the type-free part of an operation carried by thunks.
type opRef struct {
	setID   uuid.UUID
	setName string
	index   int
	name    string
}

func (r opRef) op() opRef { return r }

type hasOp interface{ op() opRef }

func opsOf[T hasOp](thunks []T) []opRef {
	refs := make([]opRef, len(thunks))
	for i, th := range thunks {
		refs[i] = th.op()
	}
	return refs
}

// seal checks that refs implement every declared operation exactly once
// and, if they do, freezes s. All problems are reported together.
func (s *Set[S]) seal(refs []opRef) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make([]bool, len(s.ops))
	for _, r := range refs {
		switch {
		case r.setID != s.id || r.index < 0 || r.index >= len(seen):
			err = multierr.Append(err, fmt.Errorf("%w: %q is not an operation of %q", ErrForeignOp, r.name, s.name))
		case seen[r.index]:
			err = multierr.Append(err, fmt.Errorf("%w: %q of %q", ErrDuplicateOp, r.name, s.name))
		default:
			seen[r.index] = true
		}
	}
	for i, ok := range seen {
		if !ok {
			err = multierr.Append(err, fmt.Errorf("%w: %q of %q", ErrIncompleteSet, s.ops[i], s.name))
		}
	}
	if err == nil {
		s.frozen.Store(true)
	}
	return len(s.ops), err
}
