package generics_test

import (
	"testing"

	"github.com/on-the-ground/anyref/generics"
	"github.com/on-the-ground/anyref/ref"
	"github.com/on-the-ground/anyref/shared/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type traceOps struct{}

func TestSignature_InternedOncePerTuple(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	defer logging.Set(zap.New(core))()
	generics.ResetSignatureCache(8)
	defer generics.ResetSignatureCache(generics.DefaultSignatureCacheSize)

	set := generics.NewSet[traceOps]("trace")
	op := generics.Declare[generics.None, int](set, "get")
	get := func(p *int, _ generics.None) int { return *p }

	x, y := 1, 2
	b1 := generics.New1(set, ref.Mut(&x), generics.Impl1(op, get))
	b2 := generics.New1(set, ref.Mut(&y), generics.Impl1(op, get))
	b3 := generics.New1(set, ref.Unify(ref.Mut(&y)), generics.Impl1(op, get))

	assert.Same(t, b1.Signature(), b2.Signature())
	assert.Same(t, b1.Signature(), b3.Signature())
	assert.Equal(t, 2, generics.Invoke(b2, op))

	entries := logs.FilterMessage("dispatch table instantiated").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "trace", fields["set"])
	assert.Equal(t, "trace(mutable int)", fields["signature"])
	assert.Equal(t, set.ID().String(), fields["setId"])
	assert.Equal(t, b1.Signature().Hash(), fields["fingerprint"])
}

func TestSignature_DistinguishesUsage(t *testing.T) {
	set := generics.NewSet[traceOps]("trace")
	op := generics.Declare[generics.None, int](set, "get")
	get := func(v int, _ generics.None) int { return v }

	x := 3
	bc := generics.New1(set, ref.Const(x), generics.Impl1(op, get))
	bm := generics.New1(set, ref.Move(&x), generics.Impl1(op, get))

	assert.NotSame(t, bc.Signature(), bm.Signature())
	assert.NotEqual(t, bc.Signature().Hash(), bm.Signature().Hash())
	assert.Equal(t, 3, generics.Invoke(bm, op))
}
