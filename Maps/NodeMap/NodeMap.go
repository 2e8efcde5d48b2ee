package NodeMap

import (
	"github.com/cornelk/hashmap"
	"github.com/g-m-twostay/rbtree"
	"github.com/g-m-twostay/rbtree/Maps"
	"golang.org/x/exp/constraints"
)

// NodeMap associates values of type V to keys of type K. Entries can be addressed by anything Keyed by K, such as
// a *Trees.Node[K], or by the bare key; a node and its value name the same entry.
// It is safe for concurrent use.
type NodeMap[K constraints.Ordered, V any] struct {
	m *hashmap.Map[K, V]
}

var _ Maps.Map[int, string] = (*NodeMap[int, string])(nil)

// New NodeMap hashing keys with seed. size is the initial capacity hint, 0 means the default.
func New[K constraints.Ordered, V any](size uintptr, seed rbtree.Hasher) *NodeMap[K, V] {
	var m *hashmap.Map[K, V]
	if size == 0 {
		m = hashmap.New[K, V]()
	} else {
		m = hashmap.NewSized[K, V](size)
	}
	m.SetHasher(rbtree.Func[K](seed))
	return &NodeMap[K, V]{m}
}

// Store v under the key of k, replacing any previous value.
func (u *NodeMap[K, V]) Store(k Maps.Keyed[K], v V) {
	u.m.Set(Maps.KeyOf(k), v)
}

func (u *NodeMap[K, V]) StoreValue(k K, v V) {
	u.m.Set(k, v)
}

// Load the value stored under the key of k.
func (u *NodeMap[K, V]) Load(k Maps.Keyed[K]) (V, bool) {
	return u.m.Get(Maps.KeyOf(k))
}

func (u *NodeMap[K, V]) LoadValue(k K) (V, bool) {
	return u.m.Get(k)
}

// Delete the entry of k. Returns false if there wasn't one.
func (u *NodeMap[K, V]) Delete(k Maps.Keyed[K]) bool {
	return u.m.Del(Maps.KeyOf(k))
}

func (u *NodeMap[K, V]) DeleteValue(k K) bool {
	return u.m.Del(k)
}

// Range calls f on every entry until f returns false.
func (u *NodeMap[K, V]) Range(f func(K, V) bool) {
	u.m.Range(f)
}

func (u *NodeMap[K, V]) Size() uint {
	return uint(u.m.Len())
}
