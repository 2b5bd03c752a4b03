package smallvec

import "cmp"

// ConstIterator is the read-only counterpart of Iterator.
type ConstIterator[T any, A Buffer[T]] struct {
	vec *Vector[T, A]
	idx int
}

func (v *Vector[T, A]) CBegin() ConstIterator[T, A] {
	return ConstIterator[T, A]{vec: v}
}

func (v *Vector[T, A]) CEnd() ConstIterator[T, A] {
	return ConstIterator[T, A]{vec: v, idx: v.size}
}

func (it ConstIterator[T, A]) Value() T {
	return it.vec.slots()[it.idx]
}

func (it ConstIterator[T, A]) At(n int) T {
	return it.vec.slots()[it.idx+n]
}

func (it *ConstIterator[T, A]) Next() *ConstIterator[T, A] {
	it.idx++
	return it
}

func (it *ConstIterator[T, A]) Prev() *ConstIterator[T, A] {
	it.idx--
	return it
}

func (it *ConstIterator[T, A]) PostNext() (old ConstIterator[T, A]) {
	old = *it
	it.idx++
	return
}

func (it *ConstIterator[T, A]) PostPrev() (old ConstIterator[T, A]) {
	old = *it
	it.idx--
	return
}

func (it ConstIterator[T, A]) Add(n int) ConstIterator[T, A] {
	it.idx += n
	return it
}

func (it ConstIterator[T, A]) Sub(n int) ConstIterator[T, A] {
	it.idx -= n
	return it
}

func (it *ConstIterator[T, A]) AddAssign(n int) *ConstIterator[T, A] {
	it.idx += n
	return it
}

func (it *ConstIterator[T, A]) SubAssign(n int) *ConstIterator[T, A] {
	it.idx -= n
	return it
}

func (it ConstIterator[T, A]) Distance(o ConstIterator[T, A]) (int, error) {
	if it.vec != o.vec {
		return 0, ErrIncomparable
	}

	return it.idx - o.idx, nil
}

func (it ConstIterator[T, A]) Equal(o ConstIterator[T, A]) bool {
	if it.vec == nil || o.vec == nil {
		return it.vec == o.vec
	}

	return it.vec == o.vec && it.idx == o.idx
}

func (it ConstIterator[T, A]) NotEqual(o ConstIterator[T, A]) bool {
	return !it.Equal(o)
}

func (it ConstIterator[T, A]) Compare(o ConstIterator[T, A]) (int, error) {
	if it.vec != o.vec {
		return 0, ErrIncomparable
	}

	return cmp.Compare(it.idx, o.idx), nil
}

func (it ConstIterator[T, A]) Less(o ConstIterator[T, A]) bool {
	return it.vec == o.vec && it.idx < o.idx
}

func (it ConstIterator[T, A]) LessOrEqual(o ConstIterator[T, A]) bool {
	return it.vec == o.vec && it.idx <= o.idx
}

func (it ConstIterator[T, A]) Greater(o ConstIterator[T, A]) bool {
	return it.vec == o.vec && it.idx > o.idx
}

func (it ConstIterator[T, A]) GreaterOrEqual(o ConstIterator[T, A]) bool {
	return it.vec == o.vec && it.idx >= o.idx
}

func (it *ConstIterator[T, A]) Swap(o *ConstIterator[T, A]) {
	*it, *o = *o, *it
}

func (it ConstIterator[T, A]) Index() int {
	return it.idx
}

func (it ConstIterator[T, A]) Valid() bool {
	return it.vec != nil && it.idx >= 0 && it.idx < it.vec.size
}
