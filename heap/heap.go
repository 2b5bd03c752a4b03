// Package heap implements binary heap operations over slices ordered by a less
// function, and a priority queue that keeps its elements in a smallvec.Vector.
//
// The element at index 0 is the one for which less holds against every other
// element: the minimum for a < b, the maximum for a > b.
package heap

// Init establishes the heap ordering over data.
func Init[T any](data []T, less func(a, b T) bool) {
	n := len(data)

	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, i, n, less)
	}
}

// Push restores the heap ordering after a value has been appended to data,
// i.e. data[:len(data)-1] is a heap and data[len(data)-1] is the new value.
func Push[T any](data []T, less func(a, b T) bool) {
	siftUp(data, len(data)-1, less)
}

// Pop moves the top of the heap to the last index and restores the heap
// ordering of data[:len(data)-1]. The caller removes the last element.
func Pop[T any](data []T, less func(a, b T) bool) {
	n := len(data) - 1

	if n <= 0 {
		return
	}

	data[0], data[n] = data[n], data[0]
	siftDown(data, 0, n, less)
}

// Fix restores the heap ordering after the value at index i has changed.
func Fix[T any](data []T, i int, less func(a, b T) bool) {
	if !siftDown(data, i, len(data), less) {
		siftUp(data, i, less)
	}
}

// IsHeap reports whether data satisfies the heap ordering.
func IsHeap[T any](data []T, less func(a, b T) bool) bool {
	for i := 1; i < len(data); i++ {
		if less(data[i], data[(i-1)/2]) {
			return false
		}
	}

	return true
}

// Sort sorts data in ascending order according to less.
func Sort[T any](data []T, less func(a, b T) bool) {
	greater := func(a, b T) bool {
		return less(b, a)
	}

	Init(data, greater)

	for n := len(data) - 1; n > 0; n-- {
		data[0], data[n] = data[n], data[0]
		siftDown(data, 0, n, greater)
	}
}

func siftUp[T any](data []T, i int, less func(a, b T) bool) {
	for i > 0 {
		p := (i - 1) / 2

		if !less(data[i], data[p]) {
			return
		}

		data[i], data[p] = data[p], data[i]
		i = p
	}
}

// siftDown moves data[i] down within data[:n] and reports whether it moved.
func siftDown[T any](data []T, i, n int, less func(a, b T) bool) bool {
	start := i

	for {
		l := 2*i + 1

		if l >= n || l < 0 {
			break
		}

		best := l

		if r := l + 1; r < n && less(data[r], data[l]) {
			best = r
		}

		if !less(data[best], data[i]) {
			break
		}

		data[i], data[best] = data[best], data[i]
		i = best
	}

	return i > start
}
