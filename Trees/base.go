package Trees

import "golang.org/x/exp/constraints"

// Structural primitives shared by BSTree's mutations. A slot (**Node) is the owning location of a subtree: either
// &u.root or &p.l/&p.r of some node p. Every primitive moves nodes between slots; none copies a value.

// subtree returns the child slot of cur that v descends into.
func subtree[T constraints.Ordered](cur *Node[T], v T) **Node[T] {
	if v < cur.v {
		return &cur.l
	}
	return &cur.r
}

// inorderSuccessor returns the slot of the leftmost node in the right subtree of *curPtr. If *curPtr has no right
// child, curPtr itself is returned and callers must handle that case.
func inorderSuccessor[T constraints.Ordered](curPtr **Node[T]) **Node[T] {
	if (*curPtr).r == nil {
		return curPtr
	}
	t := &(*curPtr).r
	for (*t).l != nil {
		t = &(*t).l
	}
	return t
}

// swap exchanges the positions of the nodes in slots a and b, children included; each value stays in its node.
// b must be a slot inside the right subtree of *a. Returns the slot that holds the node formerly in *a.
// Time: O(1); Space: O(1)
func swap[T constraints.Ordered](a, b **Node[T]) **Node[T] {
	x, y := *a, *b
	x.l, y.l = y.l, x.l
	if b == &x.r { //y is the right child of x, so x becomes the right child of y.
		x.r, y.r = y.r, x
		*a = y
		return &y.r
	}
	x.r, y.r = y.r, x.r
	*a, *b = y, x
	return b
}

// splice removes the node in slot curPtr, which must have at most one child, and moves that child into the slot.
func splice[T constraints.Ordered](curPtr **Node[T]) *Node[T] {
	cur := *curPtr
	if cur.l == nil {
		*curPtr = cur.r
	} else {
		*curPtr = cur.l
	}
	cur.l, cur.r = nil, nil
	return cur
}

// link the nodes in ns, which are in ascending order, into a perfectly balanced subtree and return its root.
func link[T constraints.Ordered](ns []*Node[T]) *Node[T] {
	if len(ns) == 0 {
		return nil
	}
	mid := len(ns) >> 1
	n := ns[mid]
	n.l, n.r = link(ns[:mid]), link(ns[mid+1:])
	return n
}

func height[T constraints.Ordered](c *Node[T]) uint {
	if c == nil {
		return 0
	}
	return max(height(c.l), height(c.r)) + 1
}
