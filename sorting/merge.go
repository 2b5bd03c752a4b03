package sorting

import (
	"golang.org/x/exp/constraints"

	"github.com/webbmaffian/go-smallvec/smallvec"
)

// Merge sorts s with a stable bottom-up merge sort. Its scratch space holds up
// to 32 elements inline; larger inputs allocate it from the default allocator,
// which is the only way Merge can fail.
func Merge[T constraints.Ordered](s []T) error {
	return MergeFunc(s, compare[T])
}

func MergeFunc[T any](s []T, cmp func(a, b T) int) (err error) {
	if len(s) < 2 {
		return
	}

	var scratch smallvec.Vector[T, [32]T]
	defer scratch.Free()

	if err = scratch.Resize(len(s)); err != nil {
		return
	}

	src, dst := s, scratch.Data()

	for width := 1; width < len(s); width *= 2 {
		for lo := 0; lo < len(s); lo += 2 * width {
			mid := min(lo+width, len(s))
			hi := min(lo+2*width, len(s))
			merge(dst[lo:hi], src[lo:mid], src[mid:hi], cmp)
		}

		src, dst = dst, src
	}

	if &src[0] != &s[0] {
		copy(s, src)
	}

	return
}

func merge[T any](dst, a, b []T, cmp func(a, b T) int) {
	i, j, k := 0, 0, 0

	for i < len(a) && j < len(b) {
		// Taking from a on ties keeps the sort stable.
		if cmp(b[j], a[i]) < 0 {
			dst[k] = b[j]
			j++
		} else {
			dst[k] = a[i]
			i++
		}

		k++
	}

	k += copy(dst[k:], a[i:])
	copy(dst[k:], b[j:])
}
