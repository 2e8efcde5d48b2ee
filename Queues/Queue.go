package Queues

// Queue is a FIFO queue.
type Queue[T any] interface {
	Push(item T)
	// Pop the oldest item, EmptyQueueError if there is none.
	Pop() (T, error)
	// Peek the oldest item, the zero value if there is none.
	Peek() T
	Empty() bool
}

type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	Size() uint
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
