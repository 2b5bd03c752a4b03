package smallvec

import (
	"math"
	"unsafe"
)

// maxSize is the largest element count whose byte size is representable.
func maxSize[T any]() int {
	var zero T

	if size := unsafe.Sizeof(zero); size > 0 {
		return int(uintptr(math.MaxInt) / size)
	}

	return math.MaxInt
}

// recalcCapacity returns the capacity to grow to when at least minCapacity
// slots are needed: double the current capacity, or minCapacity if that is
// larger, never above maxCapacity. Callers guarantee minCapacity <= maxCapacity.
func recalcCapacity(current, minCapacity, maxCapacity int) int {
	if current > maxCapacity/2 {
		return maxCapacity
	}

	grown := max(2*current, minCapacity)

	return min(grown, maxCapacity)
}
