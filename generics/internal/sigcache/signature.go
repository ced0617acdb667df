package sigcache

import (
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/on-the-ground/anyref/erasure"
)

// Signature describes one concrete-type tuple a dispatch table was built for.
// Signatures are interned, so two bundles of the same set built from the same
// types share one *Signature.
type Signature struct {
	SetID   uuid.UUID
	SetName string
	Types   []erasure.TypeID

	hash uint64
	text string
}

// fingerprint hashes the set id and the type path with xxhash.
func fingerprint(setID uuid.UUID, types []erasure.TypeID) uint64 {
	d := xxhash.New()
	_, _ = d.Write(setID[:])
	for _, id := range types {
		_, _ = d.WriteString(id.String())
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}

func newSignature(setID uuid.UUID, setName string, types []erasure.TypeID, hash uint64) *Signature {
	var b strings.Builder
	b.WriteString(setName)
	b.WriteByte('(')
	for i, id := range types {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(id.String())
	}
	b.WriteByte(')')

	return &Signature{
		SetID:   setID,
		SetName: setName,
		Types:   append([]erasure.TypeID(nil), types...),
		hash:    hash,
		text:    b.String(),
	}
}

func (s *Signature) matches(setID uuid.UUID, types []erasure.TypeID) bool {
	return s.SetID == setID && slices.Equal(s.Types, types)
}

// Hash returns the xxhash fingerprint of the set id and type path.
func (s *Signature) Hash() uint64 { return s.hash }

func (s *Signature) String() string { return s.text }

// Cache interns signatures per (set id, type path), keyed by their xxhash
// fingerprint.
type Cache struct {
	trie *Trie[*Signature]
}

// New returns a cache holding up to maxSize signatures per generation.
func New(maxSize uint32) *Cache {
	return &Cache{trie: NewTrie[*Signature](maxSize)}
}

// Intern returns the signature for the tuple, creating it on first sight.
// created reports whether this call created it.
func (c *Cache) Intern(setID uuid.UUID, setName string, types []erasure.TypeID) (sig *Signature, created bool) {
	return c.intern(setID, setName, types, fingerprint(setID, types))
}

// intern looks the tuple up under (set id, arity, hash, attempt). Tuples whose
// hashes collide take successive attempt numbers.
func (c *Cache) intern(setID uuid.UUID, setName string, types []erasure.TypeID, hash uint64) (*Signature, bool) {
	for attempt := 0; ; attempt++ {
		keys := []Key{setID, len(types), hash, attempt}
		sig, ok := c.trie.Load(keys)
		if !ok {
			var loaded bool
			sig, loaded = c.trie.LoadOrStore(keys, newSignature(setID, setName, types, hash))
			if !loaded {
				return sig, true
			}
		}
		if sig.matches(setID, types) {
			return sig, false
		}
	}
}

// Len returns the number of signatures in the current generation.
func (c *Cache) Len() int { return c.trie.Len() }
