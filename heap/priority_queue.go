package heap

import (
	"golang.org/x/exp/constraints"

	"github.com/webbmaffian/go-smallvec/smallvec"
)

// PriorityQueue hands out its elements in the order given by less. Up to N
// elements (the length of A) are kept without a heap allocation.
type PriorityQueue[T any, A smallvec.Buffer[T]] struct {
	items smallvec.Vector[T, A]
	less  func(a, b T) bool
}

// NewMin returns a queue that pops the smallest element first.
func NewMin[T constraints.Ordered, A smallvec.Buffer[T]](opts ...smallvec.Option) *PriorityQueue[T, A] {
	return NewFunc[T, A](func(a, b T) bool { return a < b }, opts...)
}

// NewMax returns a queue that pops the largest element first.
func NewMax[T constraints.Ordered, A smallvec.Buffer[T]](opts ...smallvec.Option) *PriorityQueue[T, A] {
	return NewFunc[T, A](func(a, b T) bool { return a > b }, opts...)
}

// NewFunc returns a queue that pops first the element for which less holds
// against every other.
func NewFunc[T any, A smallvec.Buffer[T]](less func(a, b T) bool, opts ...smallvec.Option) *PriorityQueue[T, A] {
	pq := &PriorityQueue[T, A]{
		less: less,
	}

	// Only the allocator is taken from the options; the vector itself lives
	// inside the queue.
	pq.items.MoveFrom(smallvec.New[T, A](opts...))
	return pq
}

func (pq *PriorityQueue[T, A]) Push(val T) (err error) {
	if err = pq.items.PushBack(val); err != nil {
		return
	}

	Push(pq.items.Data(), pq.less)
	return
}

func (pq *PriorityQueue[T, A]) Pop() (val T, err error) {
	if pq.items.Empty() {
		err = ErrEmpty
		return
	}

	Pop(pq.items.Data(), pq.less)
	return pq.items.PopBack()
}

// Top returns the element Pop would return, without removing it.
func (pq *PriorityQueue[T, A]) Top() (val T, err error) {
	if pq.items.Empty() {
		err = ErrEmpty
		return
	}

	return pq.items.Index(0), nil
}

func (pq *PriorityQueue[T, A]) Len() int {
	return pq.items.Len()
}

func (pq *PriorityQueue[T, A]) Empty() bool {
	return pq.items.Empty()
}

// Reset removes every element and keeps the storage for reuse.
func (pq *PriorityQueue[T, A]) Reset() {
	pq.items.Clear()
}

// Free removes every element and releases the storage.
func (pq *PriorityQueue[T, A]) Free() {
	pq.items.Free()
}
