package NodeSet

import (
	"github.com/alphadose/haxmap"
	"github.com/g-m-twostay/rbtree"
	"github.com/g-m-twostay/rbtree/Sets"
	"github.com/g-m-twostay/rbtree/Trees"
	"golang.org/x/exp/constraints"
)

// NodeSet is a hash set of tree nodes identified by their values: a node and a bare value equal to the node's
// value are the same element, so membership can be tested and elements looked up with either.
// It is safe for concurrent use. Put is atomic; two concurrent removals of the same element may both report true.
type NodeSet[T constraints.Ordered] struct {
	m *haxmap.Map[T, *Trees.Node[T]]
}

var _ Sets.Set[*Trees.Node[int]] = (*NodeSet[int])(nil)

// New NodeSet hashing values with seed. size is the initial capacity hint, 0 means the default.
func New[T constraints.Ordered](size uintptr, seed rbtree.Hasher) *NodeSet[T] {
	var m *haxmap.Map[T, *Trees.Node[T]]
	if size == 0 {
		m = haxmap.New[T, *Trees.Node[T]]()
	} else {
		m = haxmap.New[T, *Trees.Node[T]](size)
	}
	m.SetHasher(rbtree.Func[T](seed))
	return &NodeSet[T]{m}
}

// Put n into the set. Returns false if a node with an equal value is already in the set, which stays the element.
func (u *NodeSet[T]) Put(n *Trees.Node[T]) bool {
	_, loaded := u.m.GetOrSet(Trees.KeyOf(n), n)
	return !loaded
}

// Has an element equal to n.
func (u *NodeSet[T]) Has(n *Trees.Node[T]) bool {
	return u.HasValue(Trees.KeyOf(n))
}

// HasValue reports whether some node holding v is in the set.
func (u *NodeSet[T]) HasValue(v T) bool {
	_, ok := u.m.Get(v)
	return ok
}

// Get the element equal to v, nil if there isn't one.
func (u *NodeSet[T]) Get(v T) *Trees.Node[T] {
	if n, ok := u.m.Get(v); ok { //a deleted entry still yields its last node.
		return n
	}
	return nil
}

// Remove the element equal to n, which may be a different node holding the same value.
func (u *NodeSet[T]) Remove(n *Trees.Node[T]) bool {
	return u.RemoveValue(Trees.KeyOf(n))
}

func (u *NodeSet[T]) RemoveValue(v T) bool {
	if _, ok := u.m.Get(v); !ok {
		return false
	}
	u.m.Del(v)
	return true
}

func (u *NodeSet[T]) Size() uint {
	return uint(u.m.Len())
}

// Take an arbitrary element without removing it.
func (u *NodeSet[T]) Take() (n *Trees.Node[T], ok bool) {
	u.m.ForEach(func(_ T, e *Trees.Node[T]) bool {
		n, ok = e, true
		return false
	})
	return
}

// Range calls f on every element until f returns false.
func (u *NodeSet[T]) Range(f func(*Trees.Node[T]) bool) {
	u.m.ForEach(func(_ T, n *Trees.Node[T]) bool {
		return f(n)
	})
}
