package generics_test

import (
	"testing"

	"github.com/on-the-ground/anyref/generics"
	"github.com/on-the-ground/anyref/ref"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

type pairOps struct{}

func first(v int, _ generics.None) int  { return v }
func second(v int, _ generics.None) int { return v * 2 }

func TestSet_DeclareAssignsSelectors(t *testing.T) {
	set := generics.NewSet[pairOps]("pair")
	a := generics.Declare[generics.None, int](set, "first")
	b := generics.Declare[generics.None, int](set, "second")

	assert.Equal(t, 0, a.Index())
	assert.Equal(t, 1, b.Index())
	assert.Equal(t, "second", b.Name())
	assert.Equal(t, "pair", set.Name())
	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []string{"first", "second"}, set.Ops())
	assert.NotEqual(t, set.ID(), generics.NewSet[pairOps]("pair").ID())
}

func TestSet_FrozenAfterFirstBundle(t *testing.T) {
	set := generics.NewSet[pairOps]("pair")
	a := generics.Declare[generics.None, int](set, "first")
	b := generics.New1(set, ref.Const(4), generics.Impl1(a, first))
	assert.Equal(t, 4, generics.Invoke(b, a))

	err := recoverErr(func() { generics.Declare[generics.None, int](set, "late") })
	require.ErrorIs(t, err, generics.ErrFrozenSet)
	assert.Equal(t, 1, set.Len())
}

func TestNew_RejectsInvalidThunks(t *testing.T) {
	set := generics.NewSet[pairOps]("pair")
	a := generics.Declare[generics.None, int](set, "first")
	b := generics.Declare[generics.None, int](set, "second")
	other := generics.NewSet[pairOps]("other")
	foreign := generics.Declare[generics.None, int](other, "first")

	tests := []struct {
		name   string
		thunks []generics.Thunk1[pairOps, int]
		want   []error
	}{
		{
			name:   "missing",
			thunks: []generics.Thunk1[pairOps, int]{generics.Impl1(a, first)},
			want:   []error{generics.ErrIncompleteSet},
		},
		{
			name: "duplicate",
			thunks: []generics.Thunk1[pairOps, int]{
				generics.Impl1(a, first), generics.Impl1(a, second), generics.Impl1(b, second),
			},
			want: []error{generics.ErrDuplicateOp},
		},
		{
			name: "foreign",
			thunks: []generics.Thunk1[pairOps, int]{
				generics.Impl1(a, first), generics.Impl1(foreign, second),
			},
			want: []error{generics.ErrForeignOp, generics.ErrIncompleteSet},
		},
		{
			name: "zero op",
			thunks: []generics.Thunk1[pairOps, int]{
				generics.Impl1(a, first), generics.Impl1(b, second),
				generics.Impl1(generics.Op[pairOps, generics.None, int]{}, first),
			},
			want: []error{generics.ErrForeignOp},
		},
		{
			name: "empty",
			want: []error{generics.ErrIncompleteSet, generics.ErrIncompleteSet},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := recoverErr(func() { generics.New1(set, ref.Const(1), tt.thunks...) })
			require.Error(t, err)
			errs := multierr.Errors(err)
			require.Len(t, errs, len(tt.want))
			for i, want := range tt.want {
				assert.ErrorIs(t, errs[i], want)
			}
		})
	}

	ok := generics.New1(set, ref.Const(3), generics.Impl1(b, second), generics.Impl1(a, first))
	assert.Equal(t, 3, generics.Invoke(ok, a))
	assert.Equal(t, 6, generics.Invoke(ok, b))
}

func TestSet_FailedBundleLeavesSetOpen(t *testing.T) {
	set := generics.NewSet[pairOps]("pair")
	a := generics.Declare[generics.None, int](set, "first")

	err := recoverErr(func() { generics.New1[pairOps, ref.CRef, int](set, ref.Const(1)) })
	require.ErrorIs(t, err, generics.ErrIncompleteSet)

	b := generics.Declare[generics.None, int](set, "second")
	assert.Equal(t, 2, set.Len())

	bundle := generics.New1(set, ref.Const(2), generics.Impl1(a, first), generics.Impl1(b, second))
	assert.Equal(t, 4, generics.Invoke(bundle, b))
	err = recoverErr(func() { generics.Declare[generics.None, int](set, "third") })
	require.ErrorIs(t, err, generics.ErrFrozenSet)
}
