// Package smallvec implements Vector, a growable sequence that stores up to N
// elements inline, inside the Vector value itself, and moves them to a heap
// block taken from an alloc.Allocator once more room is needed.
//
//	var v smallvec.Vector[int, [5]int] // up to 5 ints without touching the heap
//
// A Vector is owned by one goroutine at a time and must not be copied by value;
// use Clone and Move instead.
package smallvec

import (
	"fmt"
	"iter"

	"github.com/webbmaffian/go-smallvec/alloc"
	"github.com/webbmaffian/go-smallvec/internal/unsafex"
)

// Vector is a sequence of T with inline storage of shape A ([N]T). The zero
// value is an empty inline vector ready to use.
type Vector[T any, A Buffer[T]] struct {
	noCopy noCopy

	inline A
	heap   []T // len(heap) is the capacity; nil unless mode == Heap
	size   int
	mode   Mode
	alloc  alloc.Allocator
}

func New[T any, A Buffer[T]](opts ...Option) *Vector[T, A] {
	o := applyOptions(opts)

	return &Vector[T, A]{
		alloc: o.allocator,
	}
}

// NewFilled returns a vector holding count copies of value.
func NewFilled[T any, A Buffer[T]](count int, value T, opts ...Option) (v *Vector[T, A], err error) {
	v = New[T, A](opts...)

	if err = v.Assign(count, value); err != nil {
		return nil, err
	}

	return
}

// FromSlice returns a vector holding a copy of values.
func FromSlice[T any, A Buffer[T]](values []T, opts ...Option) (v *Vector[T, A], err error) {
	v = New[T, A](opts...)

	if err = v.AssignSlice(values); err != nil {
		return nil, err
	}

	return
}

// FromSeq returns a vector holding the values of seq in order.
func FromSeq[T any, A Buffer[T]](seq iter.Seq[T], opts ...Option) (v *Vector[T, A], err error) {
	v = New[T, A](opts...)

	for val := range seq {
		if err = v.PushBack(val); err != nil {
			v.Free()
			return nil, err
		}
	}

	return
}

// FromRange returns a vector holding the elements in [first, last).
func FromRange[T any, A Buffer[T], B Buffer[T]](first, last ConstIterator[T, B], opts ...Option) (v *Vector[T, A], err error) {
	values, err := rangeOf(first, last)

	if err != nil {
		return nil, err
	}

	return FromSlice[T, A](values, opts...)
}

// Clone returns a deep copy. A heap-mode source keeps its capacity in the copy.
func (v *Vector[T, A]) Clone() (*Vector[T, A], error) {
	w := &Vector[T, A]{
		alloc: v.alloc,
	}

	if v.mode == Heap {
		block, err := w.allocate(len(v.heap))

		if err != nil {
			return nil, err
		}

		copy(block, v.heap[:v.size])
		w.heap = block
		w.mode = Heap
	} else {
		w.inline = v.inline
	}

	w.size = v.size
	return w, nil
}

// Move transfers v's contents to a new vector and leaves v empty and inline.
// A heap block changes owner without touching the elements.
func (v *Vector[T, A]) Move() *Vector[T, A] {
	w := &Vector[T, A]{
		alloc: v.alloc,
	}

	w.take(v)
	return w
}

// CopyFrom replaces v's contents with a copy of src's. v keeps its allocator
// and reuses its block when large enough.
func (v *Vector[T, A]) CopyFrom(src *Vector[T, A]) error {
	if src == v {
		return nil
	}

	return v.AssignSlice(src.Data())
}

// MoveFrom destroys v's contents and takes over src's, including the allocator
// that owns src's heap block. src is left empty and inline.
func (v *Vector[T, A]) MoveFrom(src *Vector[T, A]) {
	if src == v {
		return
	}

	v.Free()
	v.alloc = src.alloc
	v.take(src)
}

func (v *Vector[T, A]) take(src *Vector[T, A]) {
	if src.mode == Heap {
		v.heap, v.mode = src.heap, Heap
		src.heap, src.mode = nil, Inline
	} else {
		v.inline = src.inline
		clear(src.inlineSlots())
	}

	v.size, src.size = src.size, 0
}

// Len returns the number of live elements.
func (v *Vector[T, A]) Len() int {
	return v.size
}

// Cap returns the number of slots available without reallocating.
func (v *Vector[T, A]) Cap() int {
	if v.mode == Heap {
		return len(v.heap)
	}

	return len(v.inline)
}

// InlineCap returns N, the inline capacity.
func (v *Vector[T, A]) InlineCap() int {
	return len(v.inline)
}

// MaxSize returns the largest length a vector of T can reach.
func (v *Vector[T, A]) MaxSize() int {
	return maxSize[T]()
}

func (v *Vector[T, A]) Empty() bool {
	return v.size == 0
}

func (v *Vector[T, A]) Mode() Mode {
	return v.mode
}

func (v *Vector[T, A]) IsInline() bool {
	return v.mode == Inline
}

// Allocator returns the allocator heap blocks come from, or nil if none has
// been bound yet.
func (v *Vector[T, A]) Allocator() alloc.Allocator {
	return v.alloc
}

// At returns the element at index i.
func (v *Vector[T, A]) At(i int) (val T, err error) {
	if err = v.checkIndex(i); err != nil {
		return
	}

	return v.slots()[i], nil
}

// Index returns the element at index i without checking i against Len.
func (v *Vector[T, A]) Index(i int) T {
	return v.slots()[i]
}

// Ptr returns a pointer to the slot at index i without checking i against Len.
// The pointer is invalidated by any reallocating operation.
func (v *Vector[T, A]) Ptr(i int) *T {
	return &v.slots()[i]
}

// Set replaces the element at index i.
func (v *Vector[T, A]) Set(i int, val T) (err error) {
	if err = v.checkIndex(i); err != nil {
		return
	}

	v.slots()[i] = val
	return
}

// SetUnchecked replaces the element at index i without checking i against Len.
func (v *Vector[T, A]) SetUnchecked(i int, val T) {
	v.slots()[i] = val
}

func (v *Vector[T, A]) Front() (T, error) {
	return v.At(0)
}

func (v *Vector[T, A]) Back() (T, error) {
	return v.At(v.size - 1)
}

// Data returns the live elements. The slice aliases the vector's storage and is
// invalidated by any reallocating operation.
func (v *Vector[T, A]) Data() []T {
	return v.slots()[:v.size]
}

// All yields index and element pairs in order.
func (v *Vector[T, A]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.slots()[i]) {
				return
			}
		}
	}
}

// Values yields the elements in order.
func (v *Vector[T, A]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.slots()[i]) {
				return
			}
		}
	}
}

// Backward yields index and element pairs from the back.
func (v *Vector[T, A]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.slots()[i]) {
				return
			}
		}
	}
}

// Format implements fmt.Formatter by formatting the live elements as a slice.
func (v *Vector[T, A]) Format(state fmt.State, verb rune) {
	fmt.Fprintf(state, fmt.FormatString(state, verb), v.Data())
}

// Reserve makes room for at least minCapacity elements.
func (v *Vector[T, A]) Reserve(minCapacity int) (err error) {
	if minCapacity <= v.Cap() {
		return
	}

	if err = v.checkCapacity(minCapacity); err != nil {
		return
	}

	return v.reallocate(minCapacity)
}

// ShrinkToFit releases unused capacity. A heap vector whose elements fit
// inline moves back to the inline block.
func (v *Vector[T, A]) ShrinkToFit() error {
	if v.mode == Inline || v.size == len(v.heap) {
		return nil
	}

	return v.reallocate(v.size)
}

// Free destroys every element and returns the heap block to its allocator. The
// vector is left empty and inline, and may be reused.
func (v *Vector[T, A]) Free() {
	v.destroy()
	v.size = 0
}

// slots returns every slot of the active block, live or not.
func (v *Vector[T, A]) slots() []T {
	if v.mode == Heap {
		return v.heap
	}

	return v.inlineSlots()
}

func (v *Vector[T, A]) inlineSlots() []T {
	return unsafex.ArrayToSlice[T](&v.inline, len(v.inline))
}

func (v *Vector[T, A]) checkIndex(i int) error {
	if i < 0 || i >= v.size {
		return &IndexError{Index: i, Size: v.size}
	}

	return nil
}

func (v *Vector[T, A]) checkCapacity(n int) error {
	if max := maxSize[T](); n < 0 || n > max {
		return &CapacityError{Requested: n, Max: max}
	}

	return nil
}

// grow makes room for minCapacity elements following the growth policy.
func (v *Vector[T, A]) grow(minCapacity int) (err error) {
	if err = v.checkCapacity(minCapacity); err != nil {
		return
	}

	return v.reallocate(recalcCapacity(v.Cap(), minCapacity, maxSize[T]()))
}

// allocate takes a block of n slots from the vector's allocator, binding the
// default allocator on first use.
func (v *Vector[T, A]) allocate(n int) ([]T, error) {
	if v.alloc == nil {
		v.alloc = alloc.Default
	}

	block, err := alloc.Make[T](v.alloc, n)

	if err != nil {
		return nil, &AllocationError{Requested: n, Cause: err}
	}

	return block, nil
}

// reallocate moves the live elements to a block of exactly capacity slots, or
// to the inline block when capacity fits there. The new block is acquired
// before anything else is touched.
func (v *Vector[T, A]) reallocate(capacity int) error {
	if capacity <= len(v.inline) {
		if v.mode == Heap {
			v.adopt(nil)
		}

		return nil
	}

	block, err := v.allocate(capacity)

	if err != nil {
		return err
	}

	v.adopt(block)
	return nil
}

// adopt relocates the live elements into block (nil meaning the inline block),
// destroys them in the old block, releases the old heap block and makes block
// active.
func (v *Vector[T, A]) adopt(block []T) {
	old := v.slots()

	if block == nil {
		copy(v.inlineSlots(), old[:v.size])
	} else {
		copy(block, old[:v.size])
	}

	clear(old[:v.size])

	if v.mode == Heap {
		alloc.Release(v.alloc, v.heap)
	}

	if block == nil {
		v.heap, v.mode = nil, Inline
	} else {
		v.heap, v.mode = block, Heap
	}
}

// destroy clears the live elements and drops the heap block, leaving the
// vector inline. size is left to the caller.
func (v *Vector[T, A]) destroy() {
	clear(v.slots()[:v.size])

	if v.mode == Heap {
		alloc.Release(v.alloc, v.heap)
		v.heap, v.mode = nil, Inline
	}
}
