package Trees

import (
	"github.com/g-m-twostay/rbtree/Queues"
	"golang.org/x/exp/constraints"
)

// BSTree is a binary search tree with no repeated values. It owns its nodes: every node is reachable from exactly
// one slot and a node removed from the tree is detached from it before Remove returns.
// The tree itself doesn't balance; after every Insert and Remove it hands a Mutation to its Rebalancer, which by
// default does nothing, so the height D is O(n) in the worst case and O(log n) for random insertion orders.
// The zero value isn't ready for use, create it with New or From.
// BSTree isn't safe for concurrent use, see SyncTree.
type BSTree[T constraints.Ordered] struct {
	root *Node[T]
	sz   uint
	rb   Rebalancer[T]
}

// New returns an empty tree balanced by rb. A nil rb means NoRebalance.
func New[T constraints.Ordered](rb Rebalancer[T]) *BSTree[T] {
	if rb == nil {
		rb = NoRebalance[T]{}
	}
	return &BSTree[T]{rb: rb}
}

// From builds a perfectly balanced tree holding the values of sli, which must be sorted in ascending order and
// mustn't contain duplicates. This is faster than repeatedly calling Insert.
// If safe==true, the conditions are checked and From panics with InvalidSliceError if they are broken. Otherwise,
// it is up to the caller to ensure the conditions are met, otherwise the tree will be corrupt.
// Time: O(n).
func From[T constraints.Ordered](sli []T, safe bool, rb Rebalancer[T]) *BSTree[T] {
	u := New(rb)
	ns := make([]*Node[T], len(sli))
	for i, v := range sli {
		if safe && i > 0 && !(sli[i-1] < v) {
			var r any
			if i+1 < len(sli) {
				r = sli[i+1]
			}
			panic(InvalidSliceError{sli[i-1], v, r})
		}
		ns[i] = NewNode(v)
	}
	u.root, u.sz = link(ns), uint(len(sli))
	return u
}

// Size returns the number of values in the tree.
// Time: O(1); Space: O(1)
func (u *BSTree[T]) Size() uint {
	return u.sz
}

// Root node of the tree, nil if the tree is empty. The returned node must not be modified.
func (u *BSTree[T]) Root() *Node[T] {
	return u.root
}

// insert v into the subtree at slot curPtr recursively. Returns whether a node was created and the depth of the
// slot the descent stopped at.
func (u *BSTree[T]) insert(curPtr **Node[T], v T, d uint) (bool, uint) {
	if cur := *curPtr; cur == nil {
		*curPtr = NewNode(v)
		return true, d
	} else if v == cur.v {
		return false, d
	} else {
		return u.insert(subtree(cur, v), v, d+1)
	}
}

// Insert v into the tree. Returns false, leaving the tree unchanged, if v is already in the tree. There is no other
// failure since every descent under a total order ends at an empty slot. Recursive.
// Time: O(D) plus the cost of the Rebalancer.
func (u *BSTree[T]) Insert(v T) bool {
	inserted, d := u.insert(&u.root, v, 1)
	if inserted {
		u.sz++
	}
	u.rb.Rebalance(u, Mutation{OpInsert, inserted, d})
	return inserted
}

// remove v from the subtree at slot curPtr recursively. Returns whether a node was removed and the depth of the
// slot the descent stopped at.
// A node with two children trades places with its in-order successor, which has no left child, and is then spliced
// out of the successor's old slot. Values never move between nodes, so outside references to nodes stay valid.
func (u *BSTree[T]) remove(curPtr **Node[T], v T, d uint) (bool, uint) {
	if cur := *curPtr; cur == nil {
		return false, d
	} else if v == cur.v {
		if cur.l != nil && cur.r != nil {
			curPtr = swap(curPtr, inorderSuccessor(curPtr))
		}
		splice(curPtr)
		return true, d
	} else {
		return u.remove(subtree(cur, v), v, d+1)
	}
}

// Remove v from the tree. Returns false, leaving the tree unchanged, if v isn't in the tree. Recursive.
// Time: O(D) plus the cost of the Rebalancer.
func (u *BSTree[T]) Remove(v T) bool {
	deleted, d := u.remove(&u.root, v, 1)
	if deleted {
		u.sz--
	}
	u.rb.Rebalance(u, Mutation{OpRemove, deleted, d})
	return deleted
}

// Get the node holding v, nil if there isn't one.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Get(v T) *Node[T] {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v == cur.v {
			return cur
		} else {
			cur = cur.r
		}
	}
	return nil
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Has(v T) bool {
	return u.Get(v) != nil
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Minimum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.l != nil {
		cur = cur.l
	}
	return cur.v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Maximum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v, true
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Predecessor(v T) (T, bool) {
	var p *Node[T]
	for cur := u.root; cur != nil; {
		if v <= cur.v {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Successor(v T) (T, bool) {
	var p *Node[T]
	for cur := u.root; cur != nil; {
		if v < cur.v {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Height of the tree; 0 for an empty tree. Recursive.
// Time: O(n)
func (u *BSTree[T]) Height() uint {
	return height(u.root)
}

// Ascend calls f on every node in ascending order until f returns false. The tree must not be modified by f.
// Time: O(n); Space: O(D)
func (u *BSTree[T]) Ascend(f func(*Node[T]) bool) {
	var st []*Node[T]
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(cur) {
			return
		}
		for cur = cur.r; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
	}
}

// InOrder [Tree.InOrder]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *BSTree[T]) InOrder() func() (T, bool) {
	var st []*Node[T]
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	return func() (r T, has bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		for c := cur.r; c != nil; c = c.l {
			st = append(st, c)
		}
		return cur.v, true
	}
}

// Values of the tree in ascending order.
func (u *BSTree[T]) Values() []T {
	vs := make([]T, 0, u.sz)
	u.Ascend(func(n *Node[T]) bool {
		vs = append(vs, n.v)
		return true
	})
	return vs
}

// LevelOrder calls f on every node together with its depth, the root being at depth 1, level by level from left to
// right until f returns false.
// Time: O(n); Space: O(width)
func (u *BSTree[T]) LevelOrder(f func(*Node[T], uint) bool) {
	type item struct {
		n *Node[T]
		d uint
	}
	if u.root == nil {
		return
	}
	q := Queues.MakeArrayQueue[item](u.sz/2 + 1)
	q.Push(item{u.root, 1})
	for !q.Empty() {
		it, _ := q.Pop()
		if !f(it.n, it.d) {
			return
		}
		if it.n.l != nil {
			q.Push(item{it.n.l, it.d + 1})
		}
		if it.n.r != nil {
			q.Push(item{it.n.r, it.d + 1})
		}
	}
}

// Rebuild relinks all nodes into a perfectly balanced shape, keeping every node and its value.
// Time: O(n); Space: O(n)
func (u *BSTree[T]) Rebuild() {
	ns := make([]*Node[T], 0, u.sz)
	u.Ascend(func(n *Node[T]) bool {
		ns = append(ns, n)
		return true
	})
	u.root = link(ns)
}

// Clear the tree. The removed nodes are left to the garbage collector intact, so references held outside keep
// their values.
func (u *BSTree[T]) Clear() {
	u.root, u.sz = nil, 0
}

// corrupt checks that every value in the subtree at c lies in the open interval (lo, hi), nil bounds being
// unbounded, and returns the number of nodes checked, or false if some value is out of bounds. Recursive.
func corrupt[T constraints.Ordered](c *Node[T], lo, hi *T) (uint, bool) {
	if c == nil {
		return 0, true
	}
	if (lo != nil && !(*lo < c.v)) || (hi != nil && !(c.v < *hi)) {
		return 0, false
	}
	ln, ok := corrupt(c.l, lo, &c.v)
	if !ok {
		return 0, false
	}
	rn, ok := corrupt(c.r, &c.v, hi)
	return ln + rn + 1, ok
}

// Corrupt [Tree.Corrupt]. Also reports true if Size doesn't match the number of nodes. Recursive.
// Time: O(n)
func (u *BSTree[T]) Corrupt() bool {
	n, ok := corrupt[T](u.root, nil, nil)
	return !ok || n != u.sz
}
