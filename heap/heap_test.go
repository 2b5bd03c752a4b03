package heap

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func lessInt(a, b int) bool { return a < b }

func randomInts(seed uint64, n int) []int {
	r := rand.New(rand.NewSource(seed))
	data := make([]int, n)

	for i := range data {
		data[i] = r.Intn(1000) - 500
	}

	return data
}

func TestInit(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 10, 257} {
		data := randomInts(uint64(n), n)
		Init(data, lessInt)

		assert.True(t, IsHeap(data, lessInt), "n=%d", n)

		if n > 0 {
			assert.Equal(t, slices.Min(data), data[0])
		}
	}
}

func TestIsHeap(t *testing.T) {
	assert.True(t, IsHeap([]int{1, 2, 3, 4, 5}, lessInt))
	assert.True(t, IsHeap([]int{1, 5, 2, 6, 7, 3}, lessInt))
	assert.False(t, IsHeap([]int{1, 5, 2, 4}, lessInt), "4 is a child of 5")
	assert.False(t, IsHeap([]int{2, 1}, lessInt))
	assert.True(t, IsHeap([]int{}, lessInt))
}

func TestPushPop(t *testing.T) {
	input := randomInts(7, 200)
	var data []int

	for _, v := range input {
		data = append(data, v)
		Push(data, lessInt)
		require.True(t, IsHeap(data, lessInt))
	}

	var out []int

	for len(data) > 0 {
		Pop(data, lessInt)
		out = append(out, data[len(data)-1])
		data = data[:len(data)-1]
		require.True(t, IsHeap(data, lessInt))
	}

	assert.Equal(t, slices.Sorted(slices.Values(input)), out)
}

func TestFix(t *testing.T) {
	data := randomInts(3, 50)
	Init(data, lessInt)

	data[10] = -10000
	Fix(data, 10, lessInt)
	assert.True(t, IsHeap(data, lessInt))
	assert.Equal(t, -10000, data[0])

	data[0] = 10000
	Fix(data, 0, lessInt)
	assert.True(t, IsHeap(data, lessInt))
	assert.NotEqual(t, 10000, data[0])
}

func TestSort(t *testing.T) {
	for _, n := range []int{0, 1, 2, 17, 500} {
		data := randomInts(uint64(n)+100, n)
		want := slices.Sorted(slices.Values(data))

		Sort(data, lessInt)
		assert.Equal(t, want, data)
	}

	words := []string{"pear", "fig", "apple", "kiwi"}
	Sort(words, func(a, b string) bool { return len(a) > len(b) })
	assert.Equal(t, 5, len(words[0]))
	assert.Equal(t, 3, len(words[3]))
}
