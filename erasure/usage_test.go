package erasure_test

import (
	"testing"

	"github.com/on-the-ground/anyref/erasure"
	"github.com/stretchr/testify/assert"
)

func TestTypeID_UsageIsPartOfIdentity(t *testing.T) {
	ids := map[erasure.TypeID]bool{}
	for _, u := range []erasure.Usage{erasure.Value, erasure.Mutable, erasure.Immutable, erasure.Transfer} {
		ids[erasure.TypeOf[int](u)] = true
	}
	assert.Len(t, ids, 4)

	assert.True(t, erasure.TypeOf[int](erasure.Mutable).Same(erasure.TypeOf[int](erasure.Transfer)))
	assert.False(t, erasure.TypeOf[int](erasure.Mutable).Same(erasure.TypeOf[int32](erasure.Mutable)))
}

func TestTypeID_String(t *testing.T) {
	assert.Equal(t, "immutable string", erasure.TypeOf[string](erasure.Immutable).String())
	assert.Equal(t, "transfer []int", erasure.TypeOf[[]int](erasure.Transfer).String())
	assert.Equal(t, "map[int]int", erasure.TypeOf[map[int]int](erasure.Mutable).Name())
	assert.Equal(t, "usage(9)", erasure.Usage(9).String())
	assert.Equal(t, "<nil>", erasure.TypeID{}.Name())
}
