package smallvec

import "cmp"

// Iterator is a random-access cursor over a Vector, made of the vector's
// identity and a logical index. It stays comparable across reallocations, but
// dereferencing a position outside [0, Len) is a caller error.
//
// The zero Iterator belongs to no vector. It equals only another zero
// Iterator.
type Iterator[T any, A Buffer[T]] struct {
	vec *Vector[T, A]
	idx int
}

// Begin returns an iterator to the first element.
func (v *Vector[T, A]) Begin() Iterator[T, A] {
	return Iterator[T, A]{vec: v}
}

// End returns an iterator one past the last element.
func (v *Vector[T, A]) End() Iterator[T, A] {
	return Iterator[T, A]{vec: v, idx: v.size}
}

// Get returns the element the iterator points at.
func (it Iterator[T, A]) Get() T {
	return it.vec.slots()[it.idx]
}

// Set replaces the element the iterator points at.
func (it Iterator[T, A]) Set(val T) {
	it.vec.slots()[it.idx] = val
}

func (it Iterator[T, A]) Ptr() *T {
	return &it.vec.slots()[it.idx]
}

// At returns the element n positions away.
func (it Iterator[T, A]) At(n int) T {
	return it.vec.slots()[it.idx+n]
}

func (it *Iterator[T, A]) Next() *Iterator[T, A] {
	it.idx++
	return it
}

func (it *Iterator[T, A]) Prev() *Iterator[T, A] {
	it.idx--
	return it
}

// PostNext advances the iterator and returns its old position.
func (it *Iterator[T, A]) PostNext() (old Iterator[T, A]) {
	old = *it
	it.idx++
	return
}

// PostPrev moves the iterator back and returns its old position.
func (it *Iterator[T, A]) PostPrev() (old Iterator[T, A]) {
	old = *it
	it.idx--
	return
}

func (it Iterator[T, A]) Add(n int) Iterator[T, A] {
	it.idx += n
	return it
}

func (it Iterator[T, A]) Sub(n int) Iterator[T, A] {
	it.idx -= n
	return it
}

func (it *Iterator[T, A]) AddAssign(n int) *Iterator[T, A] {
	it.idx += n
	return it
}

func (it *Iterator[T, A]) SubAssign(n int) *Iterator[T, A] {
	it.idx -= n
	return it
}

// Distance returns the signed offset from o to it.
func (it Iterator[T, A]) Distance(o Iterator[T, A]) (int, error) {
	if it.vec != o.vec {
		return 0, ErrIncomparable
	}

	return it.idx - o.idx, nil
}

func (it Iterator[T, A]) Equal(o Iterator[T, A]) bool {
	if it.vec == nil || o.vec == nil {
		return it.vec == o.vec
	}

	return it.vec == o.vec && it.idx == o.idx
}

func (it Iterator[T, A]) NotEqual(o Iterator[T, A]) bool {
	return !it.Equal(o)
}

// Compare orders two iterators of the same vector by position.
func (it Iterator[T, A]) Compare(o Iterator[T, A]) (int, error) {
	if it.vec != o.vec {
		return 0, ErrIncomparable
	}

	return cmp.Compare(it.idx, o.idx), nil
}

// Less reports whether it comes before o. Iterators of different vectors are
// unordered, so every ordering comparison between them is false.
func (it Iterator[T, A]) Less(o Iterator[T, A]) bool {
	return it.vec == o.vec && it.idx < o.idx
}

func (it Iterator[T, A]) LessOrEqual(o Iterator[T, A]) bool {
	return it.vec == o.vec && it.idx <= o.idx
}

func (it Iterator[T, A]) Greater(o Iterator[T, A]) bool {
	return it.vec == o.vec && it.idx > o.idx
}

func (it Iterator[T, A]) GreaterOrEqual(o Iterator[T, A]) bool {
	return it.vec == o.vec && it.idx >= o.idx
}

// Swap exchanges the positions of two iterators.
func (it *Iterator[T, A]) Swap(o *Iterator[T, A]) {
	*it, *o = *o, *it
}

// IterSwap exchanges the elements a and b point at.
func IterSwap[T any, A Buffer[T]](a, b Iterator[T, A]) {
	pa, pb := a.Ptr(), b.Ptr()
	*pa, *pb = *pb, *pa
}

func (it Iterator[T, A]) Index() int {
	return it.idx
}

// Valid reports whether the iterator points at a live element.
func (it Iterator[T, A]) Valid() bool {
	return it.vec != nil && it.idx >= 0 && it.idx < it.vec.size
}

// Const returns a read-only iterator at the same position.
func (it Iterator[T, A]) Const() ConstIterator[T, A] {
	return ConstIterator[T, A]{vec: it.vec, idx: it.idx}
}
