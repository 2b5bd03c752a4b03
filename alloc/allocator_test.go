package alloc

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type point struct {
	X, Y float64
}

type node struct {
	Next *node
	Val  int
}

func TestMakeGoHeap(t *testing.T) {
	block, err := Make[point](GoHeap{}, 10)
	require.NoError(t, err)
	assert.Len(t, block, 10)

	for _, p := range block {
		assert.Equal(t, point{}, p)
	}

	empty, err := Make[point](GoHeap{}, 0)
	require.NoError(t, err)
	assert.Nil(t, empty)

	_, err = Make[point](GoHeap{}, -1)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestMakeNilAllocatorUsesDefault(t *testing.T) {
	block, err := Make[int](nil, 3)
	require.NoError(t, err)
	assert.Len(t, block, 3)

	Release(nil, block)
}

func TestGoHeapAllocateTyped(t *testing.T) {
	var a GoHeap

	p, err := a.Allocate(reflect.TypeFor[node](), 4)
	require.NoError(t, err)

	nodes := unsafe.Slice((*node)(p), 4)
	nodes[0].Next = &nodes[1]
	nodes[1].Val = 7

	assert.Equal(t, 7, nodes[0].Next.Val)
	assert.Equal(t, uintptr(0), uintptr(p)%unsafe.Alignof(node{}))
}

func TestGoHeapRejectsHugeRequests(t *testing.T) {
	var a GoHeap

	_, err := a.Allocate(reflect.TypeFor[[1 << 20]byte](), 1<<40)
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = Make[[1 << 20]byte](a, 1<<40)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestAligned(t *testing.T) {
	cases := []struct{ size, align, want uintptr }{
		{0, 64, 0},
		{1, 64, 64},
		{64, 64, 64},
		{65, 64, 128},
		{4097, 4096, 8192},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, Aligned(c.size, c.align), "Aligned(%d, %d)", c.size, c.align)
	}
}

func TestBudget(t *testing.T) {
	b := NewBudget(GoHeap{}, 256)

	first, err := Make[int64](b, 16) // 128 bytes
	require.NoError(t, err)
	assert.Equal(t, int64(Aligned(128, CacheLineSize)), b.Used())

	_, err = Make[int64](b, 64) // 512 bytes
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBudgetExceeded)
	assert.Equal(t, int64(Aligned(128, CacheLineSize)), b.Used(), "failed request must not be charged")

	Release(b, first)
	assert.Equal(t, int64(0), b.Used())

	again, err := Make[int64](b, 32)
	require.NoError(t, err)
	assert.Len(t, again, 32)
	assert.Equal(t, int64(256), b.Limit())
}

func TestBudgetReleasesChargeOnUpstreamFailure(t *testing.T) {
	b := NewBudget(NewMmap(), 1<<20)

	_, err := Make[node](b, 4)
	assert.ErrorIs(t, err, ErrPointerType)
	assert.Equal(t, int64(0), b.Used())
}

func TestMmap(t *testing.T) {
	m := NewMmap()

	t.Cleanup(func() {
		assert.NoError(t, m.Close())
	})

	block, err := Make[point](m, 1000)
	require.NoError(t, err)
	require.Len(t, block, 1000)

	for i := range block {
		assert.Equal(t, point{}, block[i])
		block[i] = point{float64(i), float64(-i)}
	}

	assert.Equal(t, point{999, -999}, block[999])

	stats := m.Stats()
	assert.Equal(t, 1, stats.Mappings)
	assert.GreaterOrEqual(t, stats.Bytes, int64(unsafe.Sizeof(point{})*1000))

	Release(m, block)
	assert.Equal(t, MmapStats{}, m.Stats())
}

func TestMmapRejectsPointerTypes(t *testing.T) {
	m := NewMmap()
	defer m.Close()

	_, err := Make[node](m, 2)
	assert.ErrorIs(t, err, ErrPointerType)

	_, err = Make[string](m, 2)
	assert.ErrorIs(t, err, ErrPointerType)
}

func TestMmapClose(t *testing.T) {
	m := NewMmap()

	_, err := Make[int32](m, 10)
	require.NoError(t, err)
	_, err = Make[int32](m, 5000)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Stats().Mappings)

	require.NoError(t, m.Close())
	assert.Equal(t, MmapStats{}, m.Stats())

	_, err = Make[int32](m, 10)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestMmapFreeUnknownPanics(t *testing.T) {
	m := NewMmap()
	defer m.Close()

	var x int64
	assert.Panics(t, func() {
		m.Free(unsafe.Pointer(&x), reflect.TypeFor[int64](), 1)
	})
}

func TestLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewLogged(NewBudget(GoHeap{}, 1024), zap.New(core))

	block, err := Make[int64](l, 4)
	require.NoError(t, err)

	_, err = Make[int64](l, 1000)
	require.Error(t, err)

	Release(l, block)

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, "allocate", entries[0].Message)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "alloc", entries[0].LoggerName)

	assert.Equal(t, "allocate failed", entries[1].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.True(t, errors.Is(err, ErrBudgetExceeded))

	assert.Equal(t, "free", entries[2].Message)
	assert.Equal(t, int64(4), entries[2].ContextMap()["n"])
}

func BenchmarkMake(b *testing.B) {
	allocators := map[string]Allocator{
		"goheap": GoHeap{},
		"budget": NewBudget(GoHeap{}, 1<<30),
		"mmap":   NewMmap(),
	}

	for name, a := range allocators {
		for _, n := range []int{16, 1024} {
			b.Run(fmt.Sprintf("%s/n=%d", name, n), func(b *testing.B) {
				b.ReportAllocs()

				for i := 0; i < b.N; i++ {
					block, err := Make[int64](a, n)

					if err != nil {
						b.Fatal(err)
					}

					Release(a, block)
				}
			})
		}
	}
}
