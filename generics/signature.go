package generics

import (
	"sync/atomic"

	"github.com/on-the-ground/anyref/erasure"
	"github.com/on-the-ground/anyref/generics/internal/sigcache"
	"github.com/on-the-ground/anyref/shared/logging"
	"go.uber.org/zap"
)

// Signature describes the concrete-type tuple a bundle's table was built for.
type Signature = sigcache.Signature

// DefaultSignatureCacheSize is the per-generation capacity of the signature cache.
const DefaultSignatureCacheSize = 1024

var signatures atomic.Pointer[sigcache.Cache]

func init() {
	signatures.Store(sigcache.New(DefaultSignatureCacheSize))
}

// ResetSignatureCache replaces the signature cache with an empty one holding
// up to maxSize signatures per generation.
func ResetSignatureCache(maxSize uint32) {
	signatures.Store(sigcache.New(maxSize))
}

// intern returns the signature for the types held by slots, logging the
// first construction of each tuple.
func intern[S any](set *Set[S], slots []erasure.Slot) *Signature {
	types := make([]erasure.TypeID, len(slots))
	for i := range slots {
		types[i] = slots[i].TypeID()
	}
	sig, created := signatures.Load().Intern(set.id, set.name, types)
	if created {
		logging.L().Debug("dispatch table instantiated",
			zap.String("set", set.name),
			zap.Stringer("setId", set.id),
			zap.Stringer("signature", sig),
			zap.Uint64("fingerprint", sig.Hash()),
		)
	}
	return sig
}
