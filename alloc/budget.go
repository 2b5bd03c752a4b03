package alloc

import (
	"fmt"
	"reflect"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sync/semaphore"
	"golang.org/x/sys/cpu"
)

// CacheLineSize is the granularity Budget charges in.
const CacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})

// Budget caps the bytes an upstream allocator may have outstanding.
// Requests that would exceed the limit fail with ErrBudgetExceeded instead of
// reaching the upstream allocator. Budget is safe for concurrent use.
type Budget struct {
	upstream Allocator
	sem      *semaphore.Weighted
	limit    int64
	used     atomic.Int64
}

func NewBudget(upstream Allocator, limit int64) *Budget {
	if upstream == nil {
		upstream = GoHeap{}
	}

	if limit < 0 {
		limit = 0
	}

	return &Budget{
		upstream: upstream,
		sem:      semaphore.NewWeighted(limit),
		limit:    limit,
	}
}

func (b *Budget) Allocate(typ reflect.Type, n int) (p unsafe.Pointer, err error) {
	if err = checkSize(typ, n); err != nil {
		return
	}

	charge := b.charge(typ, n)

	if !b.sem.TryAcquire(charge) {
		return nil, fmt.Errorf("%w: %d bytes requested, %d of %d in use", ErrBudgetExceeded, charge, b.used.Load(), b.limit)
	}

	if p, err = b.upstream.Allocate(typ, n); err != nil {
		b.sem.Release(charge)
		return nil, err
	}

	b.used.Add(charge)
	return
}

func (b *Budget) Free(p unsafe.Pointer, typ reflect.Type, n int) {
	b.upstream.Free(p, typ, n)

	charge := b.charge(typ, n)
	b.used.Add(-charge)
	b.sem.Release(charge)
}

// Used returns the bytes currently charged.
func (b *Budget) Used() int64 {
	return b.used.Load()
}

func (b *Budget) Limit() int64 {
	return b.limit
}

func (b *Budget) charge(typ reflect.Type, n int) int64 {
	return int64(Aligned(blockSize(typ, n), CacheLineSize))
}
