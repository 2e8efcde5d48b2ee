package Trees

import "golang.org/x/exp/constraints"

// A cell of an ArenaTree. Index 0 is the nil cell; a child index of 0 is an empty slot.
// For a cell on the free list, l is the index of the next free cell.
type info[S constraints.Unsigned] struct {
	l, r S
}

// ArenaTree is the BSTree algorithm over an arena: cells are addressed by indices of type S into two parallel
// slices, and cells of removed values go to a free list to be reused by later insertions. Ownership is the same as
// BSTree's with indices for pointers, so a subtree is moved between slots by copying one index.
// S bounds the capacity: at most ^S(0) values can be held, and Insert fails once the arena can't grow.
// ArenaTree doesn't rebalance. It isn't safe for concurrent use.
type ArenaTree[T constraints.Ordered, S constraints.Unsigned] struct {
	root, free, sz S
	ifs            []info[S] // ifs[0] is the nil cell.
	vs             []T       // vs[i] is the value of ifs[i].
}

// NewArena returns an empty tree with room for hint values before the arena grows.
func NewArena[T constraints.Ordered, S constraints.Unsigned](hint S) *ArenaTree[T, S] {
	return &ArenaTree[T, S]{ifs: make([]info[S], 1, int(hint)+1), vs: make([]T, 1, int(hint)+1)}
}

// addFree index once.
func (u *ArenaTree[T, S]) addFree(a S) {
	u.ifs[a] = info[S]{u.free, 0}
	u.vs[a] = *new(T)
	u.free = a
}

// alloc a cell holding v, reusing a free one if there is any. Returns 0 if the arena is full.
func (u *ArenaTree[T, S]) alloc(v T) S {
	if a := u.free; a != 0 {
		u.free = u.ifs[a].l
		u.ifs[a], u.vs[a] = info[S]{}, v
		return a
	}
	a := S(len(u.ifs))
	if a == 0 || int(a) != len(u.ifs) { //S overflowed.
		return 0
	}
	u.ifs, u.vs = append(u.ifs, info[S]{}), append(u.vs, v)
	return a
}

// Size [Tree.Size]
func (u *ArenaTree[T, S]) Size() uint {
	return uint(u.sz)
}

// Insert [Tree.Insert]. Returns false if v is already in the tree or if the arena is full.
// Time: O(D)
func (u *ArenaTree[T, S]) Insert(v T) bool {
	var p S //parent of the empty slot, 0 for the root slot.
	left := false
	for curI := u.root; curI != 0; {
		if v < u.vs[curI] {
			p, left, curI = curI, true, u.ifs[curI].l
		} else if v > u.vs[curI] {
			p, left, curI = curI, false, u.ifs[curI].r
		} else {
			return false
		}
	}
	a := u.alloc(v)
	if a == 0 {
		return false
	}
	if p == 0 {
		u.root = a
	} else if left {
		u.ifs[p].l = a
	} else {
		u.ifs[p].r = a
	}
	u.sz++
	return true
}

// Remove [Tree.Remove]. A cell with two children trades places with the cell of its in-order successor and is
// then spliced out, as in BSTree.
// Time: O(D)
func (u *ArenaTree[T, S]) Remove(v T) bool {
	curI := &u.root
	for *curI != 0 && v != u.vs[*curI] {
		if v < u.vs[*curI] {
			curI = &u.ifs[*curI].l
		} else {
			curI = &u.ifs[*curI].r
		}
	}
	if *curI == 0 {
		return false
	}
	if x := &u.ifs[*curI]; x.l != 0 && x.r != 0 {
		si := &x.r
		for u.ifs[*si].l != 0 {
			si = &u.ifs[*si].l
		}
		curI = u.swap(curI, si)
	}
	a := *curI
	if c := u.ifs[a]; c.l == 0 {
		*curI = c.r
	} else {
		*curI = c.l
	}
	u.addFree(a)
	u.sz--
	return true
}

// swap is swap over indices: it exchanges the cells in slots a and b, b being inside the right subtree of *a, and
// returns the slot that then holds the cell formerly in *a.
func (u *ArenaTree[T, S]) swap(a, b *S) *S {
	xi, yi := *a, *b
	x, y := &u.ifs[xi], &u.ifs[yi]
	x.l, y.l = y.l, x.l
	if b == &x.r {
		x.r, y.r = y.r, xi
		*a = yi
		return &y.r
	}
	x.r, y.r = y.r, x.r
	*a, *b = yi, xi
	return b
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *ArenaTree[T, S]) Has(v T) bool {
	for curI := u.root; curI != 0; {
		if v < u.vs[curI] {
			curI = u.ifs[curI].l
		} else if v > u.vs[curI] {
			curI = u.ifs[curI].r
		} else {
			return true
		}
	}
	return false
}

// Minimum [Tree.Minimum]
func (u *ArenaTree[T, S]) Minimum() (T, bool) {
	curI := u.root
	if curI == 0 {
		return *new(T), false
	}
	for u.ifs[curI].l != 0 {
		curI = u.ifs[curI].l
	}
	return u.vs[curI], true
}

// Maximum [Tree.Maximum]
func (u *ArenaTree[T, S]) Maximum() (T, bool) {
	curI := u.root
	if curI == 0 {
		return *new(T), false
	}
	for u.ifs[curI].r != 0 {
		curI = u.ifs[curI].r
	}
	return u.vs[curI], true
}

// Predecessor [Tree.Predecessor]
func (u *ArenaTree[T, S]) Predecessor(v T) (T, bool) {
	var p S
	for curI := u.root; curI != 0; {
		if v <= u.vs[curI] {
			curI = u.ifs[curI].l
		} else {
			p, curI = curI, u.ifs[curI].r
		}
	}
	return u.vs[p], p != 0
}

// Successor [Tree.Successor]
func (u *ArenaTree[T, S]) Successor(v T) (T, bool) {
	var p S
	for curI := u.root; curI != 0; {
		if v < u.vs[curI] {
			p, curI = curI, u.ifs[curI].l
		} else {
			curI = u.ifs[curI].r
		}
	}
	return u.vs[p], p != 0
}

// InOrder [Tree.InOrder]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *ArenaTree[T, S]) InOrder() func() (T, bool) {
	var st []S
	for curI := u.root; curI != 0; curI = u.ifs[curI].l {
		st = append(st, curI)
	}
	return func() (r T, has bool) {
		if len(st) == 0 {
			return
		}
		curI := st[len(st)-1]
		st = st[:len(st)-1]
		for c := u.ifs[curI].r; c != 0; c = u.ifs[c].l {
			st = append(st, c)
		}
		return u.vs[curI], true
	}
}

// Corrupt [Tree.Corrupt]. Also reports true if Size doesn't match the number of reachable cells.
func (u *ArenaTree[T, S]) Corrupt() bool {
	var n S
	next, prev, first := u.InOrder(), *new(T), true
	for v, ok := next(); ok; v, ok = next() {
		if !first && !(prev < v) {
			return true
		}
		prev, first = v, false
		n++
	}
	return n != u.sz
}
