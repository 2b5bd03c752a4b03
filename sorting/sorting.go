// Package sorting implements the classical comparison sorts. Every algorithm
// comes in two forms: one for ordered element types and a Func variant taking
// a comparison that returns a negative number, zero or a positive number.
package sorting

import "golang.org/x/exp/constraints"

// Below this length Quick hands over to insertion sort.
const insertionCutoff = 12

func compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

func IsSorted[T constraints.Ordered](s []T) bool {
	return IsSortedFunc(s, compare[T])
}

func IsSortedFunc[T any](s []T, cmp func(a, b T) int) bool {
	for i := 1; i < len(s); i++ {
		if cmp(s[i], s[i-1]) < 0 {
			return false
		}
	}

	return true
}

func Bubble[T constraints.Ordered](s []T) {
	BubbleFunc(s, compare[T])
}

// BubbleFunc stops as soon as a pass makes no swap.
func BubbleFunc[T any](s []T, cmp func(a, b T) int) {
	for n := len(s); n > 1; n-- {
		swapped := false

		for i := 1; i < n; i++ {
			if cmp(s[i], s[i-1]) < 0 {
				s[i], s[i-1] = s[i-1], s[i]
				swapped = true
			}
		}

		if !swapped {
			return
		}
	}
}

func Selection[T constraints.Ordered](s []T) {
	SelectionFunc(s, compare[T])
}

func SelectionFunc[T any](s []T, cmp func(a, b T) int) {
	for i := 0; i < len(s)-1; i++ {
		least := i

		for j := i + 1; j < len(s); j++ {
			if cmp(s[j], s[least]) < 0 {
				least = j
			}
		}

		s[i], s[least] = s[least], s[i]
	}
}

func Insertion[T constraints.Ordered](s []T) {
	InsertionFunc(s, compare[T])
}

func InsertionFunc[T any](s []T, cmp func(a, b T) int) {
	for i := 1; i < len(s); i++ {
		val := s[i]
		j := i

		for ; j > 0 && cmp(val, s[j-1]) < 0; j-- {
			s[j] = s[j-1]
		}

		s[j] = val
	}
}

func Shell[T constraints.Ordered](s []T) {
	ShellFunc(s, compare[T])
}

// ShellFunc uses Knuth's gap sequence 1, 4, 13, 40, ...
func ShellFunc[T any](s []T, cmp func(a, b T) int) {
	gap := 1

	for gap < len(s)/3 {
		gap = 3*gap + 1
	}

	for ; gap > 0; gap /= 3 {
		for i := gap; i < len(s); i++ {
			val := s[i]
			j := i

			for ; j >= gap && cmp(val, s[j-gap]) < 0; j -= gap {
				s[j] = s[j-gap]
			}

			s[j] = val
		}
	}
}

func Quick[T constraints.Ordered](s []T) {
	QuickFunc(s, compare[T])
}

// QuickFunc partitions around a median of three and recurses into the smaller
// side only, so the stack depth stays logarithmic.
func QuickFunc[T any](s []T, cmp func(a, b T) int) {
	for len(s) > insertionCutoff {
		p := partition(s, cmp)

		if p < len(s)-p {
			QuickFunc(s[:p], cmp)
			s = s[p:]
		} else {
			QuickFunc(s[p:], cmp)
			s = s[:p]
		}
	}

	InsertionFunc(s, cmp)
}

// partition splits s into s[:p] and s[p:] with every element of the first
// part less than or equal to every element of the second. 0 < p < len(s).
func partition[T any](s []T, cmp func(a, b T) int) int {
	lo, mid, hi := 0, len(s)/2, len(s)-1

	if cmp(s[mid], s[lo]) < 0 {
		s[mid], s[lo] = s[lo], s[mid]
	}

	if cmp(s[hi], s[lo]) < 0 {
		s[hi], s[lo] = s[lo], s[hi]
	}

	if cmp(s[hi], s[mid]) < 0 {
		s[hi], s[mid] = s[mid], s[hi]
	}

	pivot := s[mid]
	i, j := lo-1, hi+1

	for {
		for i++; cmp(s[i], pivot) < 0; i++ {
		}

		for j--; cmp(s[j], pivot) > 0; j-- {
		}

		if i >= j {
			return j + 1
		}

		s[i], s[j] = s[j], s[i]
	}
}
