package Trees

import (
	"slices"
	"testing"
)

func arenaValues[S uint8 | uint16 | uint32](u *ArenaTree[int, S]) []int {
	var vs []int
	next := u.InOrder()
	for v, ok := next(); ok; v, ok = next() {
		vs = append(vs, v)
	}
	return vs
}

func TestArenaTree_Scenarios(t *testing.T) {
	u := NewArena[int, uint16](8)
	for _, v := range []int{2, 1, 5, 4, 6, 3, 7} {
		if !u.Insert(v) {
			t.Errorf("failed to insert key %v", v)
		}
	}
	if vs := arenaValues(u); !slices.Equal(vs, []int{1, 2, 3, 4, 5, 6, 7}) {
		t.Errorf("in-order traversal is %v", vs)
	}
	if !u.Remove(2) || u.Has(2) || u.Size() != 6 || u.Corrupt() {
		t.Errorf("wrong removal of 2")
	}
	if u.Insert(5) {
		t.Errorf("inserted 5 a second time")
	}
	if u.Remove(2) {
		t.Errorf("can delete a second time key 2")
	}
	if v, ok := u.Minimum(); !ok || v != 1 {
		t.Errorf("minimum is %v", v)
	}
	if v, ok := u.Maximum(); !ok || v != 7 {
		t.Errorf("maximum is %v", v)
	}
	if v, ok := u.Successor(1); !ok || v != 3 {
		t.Errorf("successor of 1 is %v", v)
	}
	if v, ok := u.Predecessor(3); !ok || v != 1 {
		t.Errorf("predecessor of 3 is %v", v)
	}
	if _, ok := u.Successor(7); ok {
		t.Errorf("7 has a successor")
	}
}

func TestArenaTree_AddDel(t *testing.T) {
	u := NewArena[int, uint32](0)
	content := make(map[int]struct{})
	a := make([]int, tAddN)
	for i := range a {
		a[i] = rg.Intn(tAddValRange)
	}
	for _, b := range a {
		_, in := content[b]
		if c := u.Insert(b); c == in {
			t.Errorf("insert of key %v returned %v", b, c)
		}
		content[b] = struct{}{}
	}
	cells := len(u.ifs)
	for i := 0; i < len(a)/2; i++ {
		_, in := content[a[i]]
		if b := u.Remove(a[i]); b != in {
			t.Errorf("failed to delete key %v", a[i])
		}
		delete(content, a[i])
	}
	for i := 0; i < len(a)/2; i++ {
		u.Insert(a[i])
		content[a[i]] = struct{}{}
	}
	if len(u.ifs) != cells {
		t.Errorf("arena grew from %d to %d cells instead of reusing free ones", cells, len(u.ifs))
	}
	if u.Corrupt() || int(u.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", u.Size(), len(content))
	}
	for k := range content {
		if !u.Has(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
}

func TestArenaTree_Full(t *testing.T) {
	u := NewArena[int, uint8](0)
	for v := 0; v < 255; v++ {
		if !u.Insert(v) {
			t.Fatalf("failed to insert key %v", v)
		}
	}
	if u.Insert(255) {
		t.Errorf("inserted into a full arena")
	}
	if !u.Remove(0) || !u.Insert(255) {
		t.Errorf("freed cell wasn't reused")
	}
	if u.Size() != 255 || u.Corrupt() {
		t.Errorf("tree size is %d", u.Size())
	}
}
