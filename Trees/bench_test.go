package Trees

import (
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const bSize = 1 << 15

func BenchmarkBSTree_Insert(b *testing.B) {
	perm := rg.Perm(bSize)
	var u *BSTree[int]
	for i := 0; i < b.N; i++ {
		u = New[int](nil)
		for _, v := range perm {
			u.Insert(v)
		}
	}
	b.Log(u.Height())
}

func BenchmarkBSTree_InsertRebuild(b *testing.B) {
	var u *BSTree[int]
	for i := 0; i < b.N; i++ {
		u = New[int](Rebuild[int]{Factor: 2})
		for v := 0; v < bSize; v++ { //ascending order is the worst case without rebalancing.
			u.Insert(v)
		}
	}
	b.Log(u.Height())
}

func BenchmarkBSTree_Remove(b *testing.B) {
	perm := rg.Perm(bSize)
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		u := New[int](nil)
		for _, v := range perm {
			u.Insert(v)
		}
		b.StartTimer()
		for v := 0; v < bSize; v++ {
			u.Remove(v)
		}
	}
}

func BenchmarkBTree_Insert(b *testing.B) {
	perm := rg.Perm(bSize)
	for i := 0; i < b.N; i++ {
		t := btree.NewOrderedG[int](32)
		for _, v := range perm {
			t.ReplaceOrInsert(v)
		}
	}
}

func BenchmarkBTree_Remove(b *testing.B) {
	perm := rg.Perm(bSize)
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		t := btree.NewOrderedG[int](32)
		for _, v := range perm {
			t.ReplaceOrInsert(v)
		}
		b.StartTimer()
		for v := 0; v < bSize; v++ {
			t.Delete(v)
		}
	}
}

func BenchmarkLLRB_Insert(b *testing.B) {
	perm := rg.Perm(bSize)
	for i := 0; i < b.N; i++ {
		t := llrb.New()
		for _, v := range perm {
			t.ReplaceOrInsert(llrb.Int(v))
		}
	}
}

func BenchmarkLLRB_Remove(b *testing.B) {
	perm := rg.Perm(bSize)
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		t := llrb.New()
		for _, v := range perm {
			t.ReplaceOrInsert(llrb.Int(v))
		}
		b.StartTimer()
		for v := 0; v < bSize; v++ {
			t.Delete(llrb.Int(v))
		}
	}
}

func BenchmarkGodsRB_Insert(b *testing.B) {
	perm := rg.Perm(bSize)
	for i := 0; i < b.N; i++ {
		t := redblacktree.NewWithIntComparator()
		for _, v := range perm {
			t.Put(v, nil)
		}
	}
}
