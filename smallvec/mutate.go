package smallvec

import (
	"iter"
	"slices"

	"github.com/webbmaffian/go-smallvec/alloc"
)

// PushBack appends val, growing the storage first when it is full.
func (v *Vector[T, A]) PushBack(val T) (err error) {
	if v.size == v.Cap() {
		if err = v.grow(v.size + 1); err != nil {
			return
		}
	}

	v.slots()[v.size] = val
	v.size++
	return
}

// PushBackFunc appends an element constructed in place by fn. If fn fails the
// vector is left exactly as it was before the call: same elements, capacity and
// mode. When the storage is full the element is constructed in the new block
// before any existing element is relocated.
func (v *Vector[T, A]) PushBackFunc(fn func(slot *T) error) (err error) {
	if v.size < v.Cap() {
		slot := &v.slots()[v.size]

		if err = fn(slot); err != nil {
			var zero T
			*slot = zero
			return
		}

		v.size++
		return
	}

	if err = v.checkCapacity(v.size + 1); err != nil {
		return
	}

	block, err := v.allocate(recalcCapacity(v.Cap(), v.size+1, maxSize[T]()))

	if err != nil {
		return
	}

	if err = fn(&block[v.size]); err != nil {
		alloc.Release(v.alloc, block)
		return
	}

	v.adopt(block)
	v.size++
	return
}

// PopBack removes and returns the last element. Mode and capacity are kept.
func (v *Vector[T, A]) PopBack() (val T, err error) {
	if err = v.checkIndex(v.size - 1); err != nil {
		return
	}

	v.size--
	slot := &v.slots()[v.size]
	val = *slot

	var zero T
	*slot = zero
	return
}

// Insert inserts val before position i, where 0 <= i <= Len.
func (v *Vector[T, A]) Insert(i int, val T) (err error) {
	if i < 0 || i > v.size {
		return &IndexError{Index: i, Size: v.size}
	}

	if v.size == v.Cap() {
		if err = v.grow(v.size + 1); err != nil {
			return
		}
	}

	s := v.slots()
	copy(s[i+1:v.size+1], s[i:v.size])
	s[i] = val
	v.size++
	return
}

// InsertAt inserts val before it and returns an iterator to the new element.
func (v *Vector[T, A]) InsertAt(it Iterator[T, A], val T) (Iterator[T, A], error) {
	if it.vec != v {
		return Iterator[T, A]{}, ErrForeignIterator
	}

	if err := v.Insert(it.idx, val); err != nil {
		return Iterator[T, A]{}, err
	}

	return it, nil
}

// Assign replaces the contents with count copies of val. A large enough block
// is reused as is, so capacity never shrinks.
func (v *Vector[T, A]) Assign(count int, val T) error {
	s, fresh, err := v.assignBlock(count)

	if err != nil {
		return err
	}

	for i := range s[:count] {
		s[i] = val
	}

	v.finishAssign(s, fresh, count)
	return nil
}

// AssignSlice replaces the contents with a copy of values. values may alias
// the vector's own storage.
func (v *Vector[T, A]) AssignSlice(values []T) error {
	s, fresh, err := v.assignBlock(len(values))

	if err != nil {
		return err
	}

	copy(s, values)
	v.finishAssign(s, fresh, len(values))
	return nil
}

// AssignSeq replaces the contents with the values of seq.
func (v *Vector[T, A]) AssignSeq(seq iter.Seq[T]) error {
	return v.AssignSlice(slices.Collect(seq))
}

// AssignRange replaces the contents with the elements in [first, last), which
// may belong to v itself.
func AssignRange[T any, A Buffer[T], B Buffer[T]](v *Vector[T, A], first, last ConstIterator[T, B]) error {
	values, err := rangeOf(first, last)

	if err != nil {
		return err
	}

	return v.AssignSlice(values)
}

func rangeOf[T any, B Buffer[T]](first, last ConstIterator[T, B]) ([]T, error) {
	if first.vec != last.vec || first.vec == nil {
		return nil, ErrIncomparable
	}

	if first.idx < 0 || first.idx > last.idx || last.idx > first.vec.size {
		return nil, &IndexError{Index: last.idx, Size: first.vec.size}
	}

	return first.vec.Data()[first.idx:last.idx], nil
}

// assignBlock returns the block count elements are to be written into: the
// current one when it is large enough, or a new heap block of exactly count
// slots. Nothing is destroyed here.
func (v *Vector[T, A]) assignBlock(count int) (block []T, fresh bool, err error) {
	if err = v.checkCapacity(count); err != nil {
		return
	}

	if count <= v.Cap() {
		return v.slots(), false, nil
	}

	block, err = v.allocate(count)
	return block, err == nil, err
}

// finishAssign makes block active with count live elements, destroying
// whatever is left of the old contents.
func (v *Vector[T, A]) finishAssign(block []T, fresh bool, count int) {
	if fresh {
		v.destroy()
		v.heap, v.mode = block, Heap
	} else if count < v.size {
		clear(block[count:v.size])
	}

	v.size = count
}

// Erase removes the element at index i, shifting the following elements down.
// Mode and capacity are kept.
func (v *Vector[T, A]) Erase(i int) (err error) {
	if err = v.checkIndex(i); err != nil {
		return
	}

	v.eraseRange(i, i+1)
	return
}

// EraseAt removes the element it points at and returns an iterator to the
// element that followed it.
func (v *Vector[T, A]) EraseAt(it Iterator[T, A]) (Iterator[T, A], error) {
	if it.vec != v {
		return Iterator[T, A]{}, ErrForeignIterator
	}

	if err := v.Erase(it.idx); err != nil {
		return Iterator[T, A]{}, err
	}

	return it, nil
}

// EraseRange removes the elements in [first, last) and returns an iterator to
// the element that followed them.
func (v *Vector[T, A]) EraseRange(first, last Iterator[T, A]) (Iterator[T, A], error) {
	if first.vec != v || last.vec != v {
		return Iterator[T, A]{}, ErrForeignIterator
	}

	if first.idx < 0 || first.idx > last.idx || last.idx > v.size {
		return Iterator[T, A]{}, &IndexError{Index: last.idx, Size: v.size}
	}

	v.eraseRange(first.idx, last.idx)
	return first, nil
}

func (v *Vector[T, A]) eraseRange(from, to int) {
	s := v.slots()
	n := copy(s[from:v.size], s[to:v.size])
	clear(s[from+n : v.size])
	v.size = from + n
}

// Resize changes the length to n, appending zero values or dropping the tail.
func (v *Vector[T, A]) Resize(n int) error {
	var zero T
	return v.ResizeWith(n, zero)
}

// ResizeWith changes the length to n, appending copies of val or dropping the
// tail.
func (v *Vector[T, A]) ResizeWith(n int, val T) (err error) {
	if err = v.checkCapacity(n); err != nil {
		return
	}

	if n <= v.size {
		clear(v.slots()[n:v.size])
		v.size = n
		return
	}

	if n > v.Cap() {
		if err = v.grow(n); err != nil {
			return
		}
	}

	s := v.slots()

	for i := v.size; i < n; i++ {
		s[i] = val
	}

	v.size = n
	return
}

// Clear destroys every element. Mode and capacity are kept.
func (v *Vector[T, A]) Clear() {
	clear(v.Data())
	v.size = 0
}

// Swap exchanges the contents of v and other. Heap blocks change owner along
// with the allocator they came from.
func (v *Vector[T, A]) Swap(other *Vector[T, A]) {
	if other == v {
		return
	}

	v.inline, other.inline = other.inline, v.inline
	v.heap, other.heap = other.heap, v.heap
	v.size, other.size = other.size, v.size
	v.mode, other.mode = other.mode, v.mode
	v.alloc, other.alloc = other.alloc, v.alloc
}
