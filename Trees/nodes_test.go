package Trees

import "testing"

func TestNode_Compare(t *testing.T) {
	a, b, c := NewNode(1), NewNode(1), NewNode(2)
	if a.Left() != nil || a.Right() != nil {
		t.Errorf("new node has children")
	}
	if !a.Eq(b) || !b.Eq(a) || a.Eq(c) {
		t.Errorf("wrong Eq")
	}
	if !a.EqV(1) || a.EqV(2) {
		t.Errorf("wrong EqV")
	}
	if !a.Less(c) || c.Less(a) || a.Less(b) {
		t.Errorf("wrong Less")
	}
	if !c.Greater(a) || a.Greater(c) || a.Greater(b) {
		t.Errorf("wrong Greater")
	}
	if !a.LessV(2) || a.LessV(1) || !c.GreaterV(1) || c.GreaterV(2) {
		t.Errorf("wrong comparison with values")
	}
	if a.Compare(c) != -1 || c.Compare(a) != 1 || a.Compare(b) != 0 || c.CompareV(2) != 0 {
		t.Errorf("wrong Compare")
	}
	if KeyOf(a) != 1 || a.Key() != a.Value() {
		t.Errorf("wrong key")
	}
	if s := c.String(); s != "[v: 2]" {
		t.Errorf("String is %q", s)
	}
}

func TestNode_EqualityIgnoresChildren(t *testing.T) {
	u := build(2, 1, 3)
	if n := NewNode(2); !u.Root().Eq(n) || !n.Eq(u.Root()) {
		t.Errorf("nodes with equal values differ")
	}
}
