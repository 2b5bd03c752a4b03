package alloc

import (
	"fmt"
	"os"
	"reflect"
	"sync"
	"unsafe"

	"github.com/edsrzf/mmap-go"
	"github.com/webbmaffian/go-smallvec/internal/unsafex"
)

// Mmap allocates blocks off the Go heap, one anonymous mapping per block.
// The provided element types MUST NOT contain any pointer nor slice; such
// requests fail with ErrPointerType.
type Mmap struct {
	mu       sync.Mutex
	mappings map[uintptr]mmap.MMap
	pageSize uintptr
	bytes    int64
	closed   bool
}

// MmapStats is a snapshot of the live mappings of an Mmap allocator.
type MmapStats struct {
	Mappings int
	Bytes    int64
}

func NewMmap() *Mmap {
	return &Mmap{
		mappings: make(map[uintptr]mmap.MMap),
		pageSize: uintptr(os.Getpagesize()),
	}
}

func (m *Mmap) Allocate(typ reflect.Type, n int) (p unsafe.Pointer, err error) {
	if !unsafex.PointerFree(typ) {
		return nil, fmt.Errorf("%w: %s", ErrPointerType, typ)
	}

	if uintptr(typ.Align()) > m.pageSize {
		return nil, fmt.Errorf("%w: %s needs %d bytes", ErrUnaligned, typ, typ.Align())
	}

	if err = checkSize(typ, n); err != nil {
		return
	}

	size := blockSize(typ, n)

	if size == 0 {
		return unsafe.Pointer(&zeroBase), nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrClosed
	}

	// Mappings are page aligned, which covers any alignment checked above.
	region, err := mmap.MapRegion(nil, int(Aligned(size, m.pageSize)), mmap.RDWR, mmap.ANON, 0)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTooLarge, err)
	}

	p = unsafe.Pointer(unsafex.BytesToPointer[byte](region))
	m.mappings[uintptr(p)] = region
	m.bytes += int64(len(region))
	return
}

// Free unmaps the block at p. Freeing a block this allocator did not hand out
// is a programming error and panics.
func (m *Mmap) Free(p unsafe.Pointer, typ reflect.Type, n int) {
	if blockSize(typ, n) == 0 {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	region, ok := m.mappings[uintptr(p)]

	if !ok {
		panic(fmt.Sprintf("alloc: free of unknown block %p", p))
	}

	delete(m.mappings, uintptr(p))
	m.bytes -= int64(len(region))

	if err := region.Unmap(); err != nil {
		panic(fmt.Sprintf("alloc: unmap %p: %v", p, err))
	}
}

func (m *Mmap) Stats() MmapStats {
	m.mu.Lock()
	defer m.mu.Unlock()

	return MmapStats{
		Mappings: len(m.mappings),
		Bytes:    m.bytes,
	}
}

// Close unmaps every block still live. Containers using those blocks must not
// be touched afterwards.
func (m *Mmap) Close() (err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true

	for addr, region := range m.mappings {
		if e := region.Unmap(); e != nil && err == nil {
			err = e
		}

		delete(m.mappings, addr)
	}

	m.bytes = 0
	return
}
