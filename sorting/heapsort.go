package sorting

import (
	"golang.org/x/exp/constraints"

	"github.com/webbmaffian/go-smallvec/heap"
)

func Heap[T constraints.Ordered](s []T) {
	HeapFunc(s, compare[T])
}

func HeapFunc[T any](s []T, cmp func(a, b T) int) {
	heap.Sort(s, func(a, b T) bool {
		return cmp(a, b) < 0
	})
}
