package Trees

import (
	"sync"

	"golang.org/x/exp/constraints"
)

// SyncTree guards a BSTree with a single RWMutex: Insert, Remove and Clear hold the write lock for their whole
// duration, including the Rebalancer call, and the queries hold the read lock.
type SyncTree[T constraints.Ordered] struct {
	mu sync.RWMutex
	t  *BSTree[T]
}

// NewSync returns an empty SyncTree balanced by rb.
func NewSync[T constraints.Ordered](rb Rebalancer[T]) *SyncTree[T] {
	return &SyncTree[T]{t: New(rb)}
}

func (u *SyncTree[T]) Insert(v T) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Insert(v)
}

func (u *SyncTree[T]) Remove(v T) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Remove(v)
}

func (u *SyncTree[T]) Clear() {
	u.mu.Lock()
	u.t.Clear()
	u.mu.Unlock()
}

func (u *SyncTree[T]) Has(v T) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Has(v)
}

func (u *SyncTree[T]) Size() uint {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Size()
}

func (u *SyncTree[T]) Minimum() (T, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Minimum()
}

func (u *SyncTree[T]) Maximum() (T, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Maximum()
}

func (u *SyncTree[T]) Predecessor(v T) (T, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Predecessor(v)
}

func (u *SyncTree[T]) Successor(v T) (T, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Successor(v)
}

// InOrder iterates over a snapshot of the values taken under the read lock, so the tree may be modified while the
// returned function is in use.
func (u *SyncTree[T]) InOrder() func() (T, bool) {
	u.mu.RLock()
	vs := u.t.Values()
	u.mu.RUnlock()
	i := 0
	return func() (r T, has bool) {
		if i < len(vs) {
			r, has = vs[i], true
			i++
		}
		return
	}
}

func (u *SyncTree[T]) Corrupt() bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Corrupt()
}

// Do runs f with exclusive access to the underlying tree, for compound operations that must be atomic.
func (u *SyncTree[T]) Do(f func(*BSTree[T])) {
	u.mu.Lock()
	defer u.mu.Unlock()
	f(u.t)
}
