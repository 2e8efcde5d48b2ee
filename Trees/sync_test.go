package Trees

import (
	"sync"
	"testing"
)

func TestSyncTree_Concurrent(t *testing.T) {
	const (
		workers = 8
		perW    = 500
	)
	u := NewSync[int](Rebuild[int]{Factor: 2})
	wg := sync.WaitGroup{}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(l, h int) {
			defer wg.Done()
			for j := l; j < h; j++ {
				if !u.Insert(j) {
					t.Errorf("failed to insert key %v", j)
				}
			}
			for j := l; j < h; j += 2 {
				if !u.Remove(j) {
					t.Errorf("failed to delete key %v", j)
				}
			}
			for j := l; j < h; j++ {
				if u.Has(j) != (j%2 == 1) {
					t.Errorf("wrong presence of key %v", j)
				}
			}
		}(w*perW, (w+1)*perW)
	}
	wg.Wait()
	if u.Size() != workers*perW/2 {
		t.Errorf("tree size is %d, want %d", u.Size(), workers*perW/2)
	}
	if u.Corrupt() {
		t.Errorf("tree is corrupt")
	}
	next, prev := u.InOrder(), -1
	for v, ok := next(); ok; v, ok = next() {
		if v <= prev {
			t.Errorf("InOrder gave %v after %v", v, prev)
		}
		prev = v
	}
	if v, ok := u.Minimum(); !ok || v != 1 {
		t.Errorf("minimum is %v", v)
	}
	if v, ok := u.Maximum(); !ok || v != workers*perW-1 {
		t.Errorf("maximum is %v", v)
	}
	if v, ok := u.Successor(1); !ok || v != 3 {
		t.Errorf("successor of 1 is %v", v)
	}
	if v, ok := u.Predecessor(3); !ok || v != 1 {
		t.Errorf("predecessor of 3 is %v", v)
	}
	u.Do(func(b *BSTree[int]) {
		if b.Has(0) {
			t.Errorf("0 wasn't removed")
		}
		b.Insert(0)
	})
	if !u.Has(0) {
		t.Errorf("insert in Do was lost")
	}
	u.Clear()
	if u.Size() != 0 {
		t.Errorf("size after Clear is %d", u.Size())
	}
}
