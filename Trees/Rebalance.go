package Trees

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Op is the kind of mutation reported to a Rebalancer.
type Op byte

const (
	OpInsert Op = iota
	OpRemove
)

func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	}
	return "unknown"
}

// Mutation describes the last Insert or Remove performed on a tree.
type Mutation struct {
	Op Op
	// Ok is the return value of the operation.
	Ok bool
	// Depth of the slot the operation ended at, the root slot being 1. For a successful Insert it's the depth of the
	// new node; for a successful Remove it's the depth the removed node was found at. For failed operations it's the
	// depth of the empty slot (or the equal node for a rejected Insert) where the search stopped.
	Depth uint
}

// Rebalancer is the balancing policy of a BSTree. Rebalance is called after every Insert and Remove, whether the
// operation succeeded or not, so implementations must treat Mutation.Ok == false as a cheap no-op if they don't
// care about it. Implementations may restructure u in any way that keeps the ordering of its values, for example by
// calling u.Rebuild.
type Rebalancer[T constraints.Ordered] interface {
	Rebalance(u *BSTree[T], m Mutation)
}

// RebalanceFunc adapts a function to a Rebalancer.
type RebalanceFunc[T constraints.Ordered] func(*BSTree[T], Mutation)

func (f RebalanceFunc[T]) Rebalance(u *BSTree[T], m Mutation) {
	f(u, m)
}

// NoRebalance leaves the tree as it is. The height of the tree then depends only on the order of operations and
// is O(n) in the worst case.
type NoRebalance[T constraints.Ordered] struct{}

func (NoRebalance[T]) Rebalance(*BSTree[T], Mutation) {}

// Rebuild relinks the whole tree into a perfectly balanced shape once a successful Insert lands deeper than
// Factor*log2(n)+1. Node identities are preserved. Removals are ignored since they never increase the height.
// Factor must be at least 1; 2 keeps rebuilds rare while bounding the height at about twice the optimum.
// Time: O(1) per call except when a rebuild happens, which is O(n).
type Rebuild[T constraints.Ordered] struct {
	Factor uint
}

func (r Rebuild[T]) Rebalance(u *BSTree[T], m Mutation) {
	if m.Op == OpInsert && m.Ok && m.Depth > r.limit(u.Size()) {
		u.Rebuild()
	}
}

func (r Rebuild[T]) limit(n uint) uint {
	return r.Factor*uint(bits.Len(n)) + 1
}
