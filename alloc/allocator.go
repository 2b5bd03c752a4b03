// Package alloc provides the heap-block allocators that back container storage.
//
// Blocks are typed: an allocator is told the element type and the number of
// elements, so it can honor the type's size and alignment and, for the Go
// heap, keep the block visible to the garbage collector.
package alloc

import (
	"fmt"
	"math/bits"
	"reflect"
	"unsafe"

	"github.com/webbmaffian/go-smallvec/internal/unsafex"
)

// Allocator hands out and takes back blocks of n elements of type typ.
// Allocate returns zeroed memory aligned for typ. Free must be called with the
// same typ and n that produced the block.
type Allocator interface {
	Allocate(typ reflect.Type, n int) (unsafe.Pointer, error)
	Free(p unsafe.Pointer, typ reflect.Type, n int)
}

// Default is used by containers that were not given an allocator.
var Default Allocator = GoHeap{}

// Largest block, in bytes, any allocator in this package will attempt.
const maxAlloc = 1 << (31 + 16*(bits.UintSize/64))

// zeroBase is handed out for zero-byte blocks.
var zeroBase uintptr

// Make allocates a block of n zeroed values of T from a.
func Make[T any](a Allocator, n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrTooLarge, n)
	}

	if n == 0 {
		return nil, nil
	}

	if a == nil {
		a = Default
	}

	typ := reflect.TypeFor[T]()

	// Fast path: plain Go allocation needs no type-erased round trip.
	if _, ok := a.(GoHeap); ok {
		if err := checkSize(typ, n); err != nil {
			return nil, err
		}

		return make([]T, n), nil
	}

	p, err := a.Allocate(typ, n)

	if err != nil {
		return nil, err
	}

	return unsafex.Slice[T](p, n), nil
}

// Release zeroes block and gives it back to a.
func Release[T any](a Allocator, block []T) {
	if len(block) == 0 {
		return
	}

	if a == nil {
		a = Default
	}

	clear(block)
	a.Free(unsafe.Pointer(unsafe.SliceData(block)), reflect.TypeFor[T](), len(block))
}

// Aligned rounds size up to a multiple of align, which must be a power of two.
func Aligned(size, align uintptr) uintptr {
	return (size + align - 1) &^ (align - 1)
}

func checkSize(typ reflect.Type, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative length %d", ErrTooLarge, n)
	}

	if size := typ.Size(); size > 0 && uintptr(n) > maxAlloc/size {
		return fmt.Errorf("%w: %d x %s", ErrTooLarge, n, typ)
	}

	return nil
}

func blockSize(typ reflect.Type, n int) uintptr {
	return typ.Size() * uintptr(n)
}

// GoHeap allocates blocks on the garbage-collected Go heap. Free is a no-op;
// the block is reclaimed once nothing references it.
//
// GoHeap refuses requests above the addressable limit, but a request the
// runtime cannot satisfy still aborts the process. Wrap it in a Budget to get
// a recoverable ceiling.
type GoHeap struct{}

func (GoHeap) Allocate(typ reflect.Type, n int) (p unsafe.Pointer, err error) {
	if err = checkSize(typ, n); err != nil {
		return
	}

	if n == 0 {
		return unsafe.Pointer(&zeroBase), nil
	}

	defer func() {
		if r := recover(); r != nil {
			p, err = nil, fmt.Errorf("%w: %v", ErrTooLarge, r)
		}
	}()

	// MakeSlice keeps the block typed, so pointers inside it stay visible to the GC.
	return reflect.MakeSlice(reflect.SliceOf(typ), n, n).UnsafePointer(), nil
}

func (GoHeap) Free(unsafe.Pointer, reflect.Type, int) {}
