package matrix

import "math"

// handshakes returns the number of unordered pairs of n distinct items.
func handshakes(n int) int {
	return n * (n - 1) / 2
}

// countFromHandshakes is the inverse of handshakes, rounding up.
func countFromHandshakes(n int) int {
	return int(math.Ceil(math.Sqrt(float64(n) * 2)))
}

// packedLen is the number of elements in the upper triangle of an n x n
// matrix, diagonal included.
func packedLen(n int) int {
	return handshakes(n + 1)
}
