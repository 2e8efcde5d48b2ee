package Queues

import "testing"

func TestArrayQueue(t *testing.T) {
	for _, c := range []uint{0, 1, 3} {
		q := MakeArrayQueue[int](c)
		if _, e := q.Pop(); e == nil {
			t.Errorf("pop from empty queue didn't fail")
		}
		next := 0
		for i := 0; i < 100; i++ {
			q.Push(i)
			if i%3 == 0 {
				if v, e := q.Pop(); e != nil || v != next {
					t.Errorf("popped %v, %v, want %v", v, e, next)
				}
				next++
			}
		}
		if q.Size() != uint(100-next) {
			t.Errorf("size is %d, want %d", q.Size(), 100-next)
		}
		q.Shrink()
		if q.Peek() != next {
			t.Errorf("peek is %v, want %v", q.Peek(), next)
		}
		for ; !q.Empty(); next++ {
			if v, _ := q.Pop(); v != next {
				t.Errorf("popped %v, want %v", v, next)
			}
		}
		if next != 100 {
			t.Errorf("popped %d items", next)
		}
		q.Push(1)
		q.Clear()
		if !q.Empty() || q.Peek() != 0 {
			t.Errorf("queue isn't empty after Clear")
		}
	}
}
