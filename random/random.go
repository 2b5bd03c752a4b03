// Package random produces pseudo-random numbers in ranges, fills, shuffles
// and samples. A Source is deterministic for a given seed and is not safe for
// concurrent use; the package-level functions are.
package random

import (
	"golang.org/x/exp/rand"
)

type Source struct {
	r *rand.Rand
}

func New(seed uint64) *Source {
	return &Source{
		r: rand.New(rand.NewSource(seed)),
	}
}

// Seed resets the source to the sequence of seed.
func (s *Source) Seed(seed uint64) {
	s.r.Seed(seed)
}

// Intn returns an int in [min, max). It panics if max <= min.
func (s *Source) Intn(min, max int) int {
	return intn(s.r.Intn, min, max)
}

// Float64 returns a float64 in [min, max).
func (s *Source) Float64(min, max float64) float64 {
	return min + s.r.Float64()*(max-min)
}

// Fill sets every element of dst to an int in [min, max).
func (s *Source) Fill(dst []int, min, max int) {
	fill(s.r.Intn, dst, min, max)
}

// Ints returns n ints in [min, max).
func (s *Source) Ints(n, min, max int) []int {
	dst := make([]int, n)
	s.Fill(dst, min, max)
	return dst
}

// Shuffle permutes data in place.
func Shuffle[T any](s *Source, data []T) {
	s.r.Shuffle(len(data), func(i, j int) {
		data[i], data[j] = data[j], data[i]
	})
}

// Sample returns k elements of data picked without replacement, in random
// order. data is left untouched. k is capped at len(data).
func Sample[T any](s *Source, data []T, k int) []T {
	return sample(s.r.Intn, data, k)
}

func Intn(min, max int) int {
	return intn(rand.Intn, min, max)
}

func Float64(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

func Fill(dst []int, min, max int) {
	fill(rand.Intn, dst, min, max)
}

func Ints(n, min, max int) []int {
	dst := make([]int, n)
	Fill(dst, min, max)
	return dst
}

func intn(next func(int) int, min, max int) int {
	if max <= min {
		panic("random: empty range")
	}

	return min + next(max-min)
}

func fill(next func(int) int, dst []int, min, max int) {
	for i := range dst {
		dst[i] = intn(next, min, max)
	}
}

// sample runs the first k steps of a Fisher-Yates shuffle on a copy of data.
func sample[T any](next func(int) int, data []T, k int) []T {
	k = max(0, min(k, len(data)))
	pool := append([]T(nil), data...)

	for i := 0; i < k; i++ {
		j := i + next(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:k:k]
}
