// Package ring implements a fixed-capacity FIFO ring buffer on top of a
// smallvec.Vector, so small rings need no heap allocation.
package ring

import (
	"iter"

	"github.com/webbmaffian/go-smallvec/smallvec"
)

// Buffer is a FIFO of at most Cap items. It is not safe for concurrent use.
type Buffer[T any, A smallvec.Buffer[T]] struct {
	items        smallvec.Vector[T, A]
	startIdx     int
	length       int
	capacity     int
	undoable     int
	itemsWritten uint64
	itemsRead    uint64
}

// New returns an empty buffer holding up to capacity items. The slots are
// allocated up front.
func New[T any, A smallvec.Buffer[T]](capacity int, opts ...smallvec.Option) (b *Buffer[T, A], err error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	b = &Buffer[T, A]{
		capacity: capacity,
	}

	b.items.MoveFrom(smallvec.New[T, A](opts...))

	if err = b.items.Resize(capacity); err != nil {
		return nil, err
	}

	return
}

// WriteOrFail appends val, or fails with ErrFull.
func (b *Buffer[T, A]) WriteOrFail(val T) error {
	if b.Full() {
		return ErrFull
	}

	b.write(val)
	return nil
}

// WriteOrReplace appends val, overwriting the oldest item when the buffer is
// full. It reports whether an item was overwritten.
func (b *Buffer[T, A]) WriteOrReplace(val T) (replaced bool) {
	replaced = b.Full()
	b.write(val)
	return
}

func (b *Buffer[T, A]) write(val T) {
	b.items.SetUnchecked(b.index(b.length), val)

	if b.length < b.capacity {
		b.length++
	} else {
		b.startIdx = b.index(1)
	}

	b.undoable = min(b.undoable, b.capacity-b.length)
	b.itemsWritten++
}

// Read removes and returns the oldest item.
func (b *Buffer[T, A]) Read() (val T, err error) {
	if b.Empty() {
		err = ErrEmpty
		return
	}

	val = b.items.Index(b.startIdx)
	b.startIdx = b.index(1)
	b.length--
	b.undoable++
	b.itemsRead++
	return
}

// UndoRead puts the most recently read item back at the front. Reads can be
// undone as long as no write has reused their slots.
func (b *Buffer[T, A]) UndoRead() error {
	if b.undoable == 0 {
		return ErrNothingToUndo
	}

	b.startIdx = b.index(-1)
	b.length++
	b.undoable--
	b.itemsRead--
	return nil
}

// Peek returns the oldest item without removing it.
func (b *Buffer[T, A]) Peek() (val T, err error) {
	if b.Empty() {
		err = ErrEmpty
		return
	}

	return b.items.Index(b.startIdx), nil
}

// At returns the i-th oldest item.
func (b *Buffer[T, A]) At(i int) (val T, err error) {
	if i < 0 || i >= b.length {
		err = &smallvec.IndexError{Index: i, Size: b.length}
		return
	}

	return b.items.Index(b.index(i)), nil
}

// All yields the items from oldest to newest.
func (b *Buffer[T, A]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < b.length; i++ {
			if !yield(i, b.items.Index(b.index(i))) {
				return
			}
		}
	}
}

// CopyTo writes every item, oldest first, into dst, replacing dst's oldest
// items when it runs out of room.
func (b *Buffer[T, A]) CopyTo(dst *Buffer[T, A]) {
	for _, val := range b.All() {
		dst.WriteOrReplace(val)
	}
}

func (b *Buffer[T, A]) Len() int {
	return b.length
}

func (b *Buffer[T, A]) Cap() int {
	return b.capacity
}

func (b *Buffer[T, A]) Empty() bool {
	return b.length <= 0
}

func (b *Buffer[T, A]) Full() bool {
	return b.length >= b.capacity
}

// Reset drops every item. The counters keep running.
func (b *Buffer[T, A]) Reset() {
	clear(b.items.Data())
	b.startIdx = 0
	b.length = 0
	b.undoable = 0
}

func (b *Buffer[T, A]) ItemsWritten() uint64 {
	return b.itemsWritten
}

func (b *Buffer[T, A]) ItemsRead() uint64 {
	return b.itemsRead
}

// Free releases the storage. The buffer must not be used afterwards.
func (b *Buffer[T, A]) Free() {
	b.items.Free()
	b.startIdx, b.length, b.capacity, b.undoable = 0, 0, 0, 0
}

func (b *Buffer[T, A]) index(i int) int {
	return b.wrap(b.startIdx + i)
}

func (b *Buffer[T, A]) wrap(i int) int {
	return (i + b.capacity) % b.capacity
}
