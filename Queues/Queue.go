package Queues

// Queue is a FIFO of T.
type Queue[T any] interface {
	Push(item T)
	//Pop the oldest item. Returns *EmptyQueueError when the queue has nothing.
	Pop() (T, error)
	//Peek at the oldest item without removing it. The zero value for empty queues.
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue backed by a circular slice that grows on demand.
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
