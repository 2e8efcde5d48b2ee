package Trees

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Node is a cell of a BSTree. It holds one value and owns its two children exclusively: a node is reachable from
// exactly one slot, either the root of its tree or the l or r field of its parent.
// Comparisons between nodes, and between a node and a bare value, are delegated to the values; the children
// never take part in them.
type Node[T constraints.Ordered] struct {
	v    T
	l, r *Node[T]
}

// NewNode returns a detached node holding v.
func NewNode[T constraints.Ordered](v T) *Node[T] {
	return &Node[T]{v: v}
}

// Value stored in the node. It never changes during the node's lifetime.
func (n *Node[T]) Value() T {
	return n.v
}

// Key is the value; it's what hash based collections index the node by.
func (n *Node[T]) Key() T {
	return n.v
}

func (n *Node[T]) Left() *Node[T] {
	return n.l
}

func (n *Node[T]) Right() *Node[T] {
	return n.r
}

// Eq reports whether both nodes hold equal values.
func (n *Node[T]) Eq(o *Node[T]) bool {
	return n.v == o.v
}

// EqV reports whether n holds v.
func (n *Node[T]) EqV(v T) bool {
	return n.v == v
}

// Less is n<o.
func (n *Node[T]) Less(o *Node[T]) bool {
	return n.v < o.v
}

// LessV is n<v.
func (n *Node[T]) LessV(v T) bool {
	return n.v < v
}

// Greater is n>o.
func (n *Node[T]) Greater(o *Node[T]) bool {
	return n.v > o.v
}

// GreaterV is n>v, the same as v<n.
func (n *Node[T]) GreaterV(v T) bool {
	return n.v > v
}

// Compare the values as cmp.Compare does.
func (n *Node[T]) Compare(o *Node[T]) int {
	return cmp.Compare(n.v, o.v)
}

func (n *Node[T]) CompareV(v T) int {
	return cmp.Compare(n.v, v)
}

func (n *Node[T]) String() string {
	return fmt.Sprintf("[v: %v]", n.v)
}

// KeyOf n, to be used as the key of n in hash based collections. A node and its value are interchangeable as keys.
func KeyOf[T constraints.Ordered](n *Node[T]) T {
	return n.v
}
