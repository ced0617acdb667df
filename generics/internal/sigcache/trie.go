package sigcache

import (
	"sync"
	"sync/atomic"
)

// Key is one step of a trie path. Keys must be comparable.
type Key any

// Trie is a bounded path-keyed memo. It keeps two generations of sync.Map
// trees; once the head generation holds maxSize entries the older generation
// is dropped and becomes the new head.
type Trie[O any] struct {
	memos   [2]atomic.Pointer[sync.Map]
	headIdx atomic.Uint32
	size    atomic.Uint32
	maxSize uint32
	rotate  sync.Mutex
}

func NewTrie[O any](maxSize uint32) *Trie[O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	t := &Trie[O]{maxSize: maxSize}
	t.memos[0].Store(&sync.Map{})
	t.memos[1].Store(&sync.Map{})
	return t
}

// Load looks keys up in the head generation, then in the previous one.
func (t *Trie[O]) Load(keys []Key) (O, bool) {
	headIdx := t.headIdx.Load()
	for _, idx := range [2]uint32{headIdx, 1 - headIdx} {
		if v, ok := lookup(t.memos[idx].Load(), keys); ok {
			return v.(O), true
		}
	}
	var zero O
	return zero, false
}

// LoadOrStore returns the value stored under keys, storing value first if
// there was none. loaded is false when value was stored.
func (t *Trie[O]) LoadOrStore(keys []Key, value O) (actual O, loaded bool) {
	if v, ok := t.Load(keys); ok {
		return v, true
	}
	t.maybeRotate()
	m, k := traverse(t.memos[t.headIdx.Load()].Load(), keys)
	v, loaded := m.LoadOrStore(k, value)
	if !loaded {
		t.size.Add(1)
	}
	return v.(O), loaded
}

// Len returns the number of entries in the head generation.
func (t *Trie[O]) Len() int {
	return int(t.size.Load())
}

func (t *Trie[O]) maybeRotate() {
	if t.size.Load() < t.maxSize {
		return
	}
	t.rotate.Lock()
	defer t.rotate.Unlock()
	if t.size.Load() < t.maxSize {
		return
	}
	next := 1 - t.headIdx.Load()
	t.memos[next].Store(&sync.Map{})
	t.headIdx.Store(next)
	t.size.Store(0)
}

// leaf is the key under which a node stores the value of the path ending at
// it, so a path never collides with the interior nodes of a longer one.
type leaf struct{}

func lookup(m *sync.Map, keys []Key) (any, bool) {
	if len(keys) == 0 {
		panic("lookup: empty keys")
	}
	for _, k := range keys {
		v, ok := m.Load(k)
		if !ok {
			return nil, false
		}
		m = v.(*sync.Map)
	}
	return m.Load(leaf{})
}

func traverse(m *sync.Map, keys []Key) (*sync.Map, Key) {
	if len(keys) == 0 {
		panic("traverse: empty keys")
	}
	for _, k := range keys {
		v, _ := m.LoadOrStore(k, &sync.Map{})
		m = v.(*sync.Map)
	}
	return m, leaf{}
}
