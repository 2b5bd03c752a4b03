package matrix

import "math/bits"

// Square blocks at or below these sizes are multiplied with the naive loop.
var (
	recursiveLeaf = 16
	strassenLeaf  = 32
)

// Mul returns a x b using the naive triple loop.
func Mul[T Number](a, b *Dense[T]) (c *Dense[T], err error) {
	if a.cols != b.rows {
		return nil, ErrShape
	}

	if c, err = NewDense[T](a.rows, b.cols); err != nil {
		return
	}

	mulAdd(c.view(), a.view(), b.view(), a.rows, a.cols, b.cols)
	return
}

// MulRecursive returns a x b by splitting both operands, padded with zeros to
// a power-of-two square, into quadrants and multiplying those recursively.
func MulRecursive[T Number](a, b *Dense[T]) (*Dense[T], error) {
	return mulPadded(a, b, func(c, a, b view[T], n int) error {
		mulRecursive(c, a, b, n)
		return nil
	})
}

// MulStrassen returns a x b using Strassen's seven-product scheme on the
// operands padded to a power-of-two square.
func MulStrassen[T Number](a, b *Dense[T]) (*Dense[T], error) {
	return mulPadded(a, b, strassen[T])
}

func mulPadded[T Number](a, b *Dense[T], mul func(c, a, b view[T], n int) error) (c *Dense[T], err error) {
	if a.cols != b.rows {
		return nil, ErrShape
	}

	n := nextPow2(max(a.rows, a.cols, b.cols))

	pa, err := a.padded(n)

	if err != nil {
		return
	}

	defer pa.Free()

	pb, err := b.padded(n)

	if err != nil {
		return
	}

	defer pb.Free()

	pc, err := NewDense[T](n, n)

	if err != nil {
		return
	}

	defer pc.Free()

	if err = mul(pc.view(), pa.view(), pb.view(), n); err != nil {
		return
	}

	return pc.cropped(a.rows, b.cols)
}

// mulRecursive adds a x b to c, all n x n with n a power of two.
func mulRecursive[T Number](c, a, b view[T], n int) {
	if n <= recursiveLeaf {
		mulAdd(c, a, b, n, n, n)
		return
	}

	h := n / 2

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				mulRecursive(c.quad(i, j, h), a.quad(i, k, h), b.quad(k, j, h), h)
			}
		}
	}
}

// strassen stores a x b in c, all n x n with n a power of two.
func strassen[T Number](c, a, b view[T], n int) (err error) {
	if n <= strassenLeaf {
		c.zero(n)
		mulAdd(c, a, b, n, n, n)
		return
	}

	h := n / 2

	// Two operand scratch blocks and the seven products, side by side.
	work, err := NewDense[T](h, 9*h)

	if err != nil {
		return
	}

	defer work.Free()

	w := work.view()
	x, y := w.sub(0, 0), w.sub(0, h)

	var m [7]view[T]

	for i := range m {
		m[i] = w.sub(0, (i+2)*h)
	}

	a11, a12, a21, a22 := a.quad(0, 0, h), a.quad(0, 1, h), a.quad(1, 0, h), a.quad(1, 1, h)
	b11, b12, b21, b22 := b.quad(0, 0, h), b.quad(0, 1, h), b.quad(1, 0, h), b.quad(1, 1, h)

	if err = strassen(m[0], sum(x, a11, a22, h), sum(y, b11, b22, h), h); err != nil {
		return
	}

	if err = strassen(m[1], sum(x, a21, a22, h), b11, h); err != nil {
		return
	}

	if err = strassen(m[2], a11, diff(y, b12, b22, h), h); err != nil {
		return
	}

	if err = strassen(m[3], a22, diff(y, b21, b11, h), h); err != nil {
		return
	}

	if err = strassen(m[4], sum(x, a11, a12, h), b22, h); err != nil {
		return
	}

	if err = strassen(m[5], diff(x, a21, a11, h), sum(y, b11, b12, h), h); err != nil {
		return
	}

	if err = strassen(m[6], diff(x, a12, a22, h), sum(y, b21, b22, h), h); err != nil {
		return
	}

	c11, c12, c21, c22 := c.quad(0, 0, h), c.quad(0, 1, h), c.quad(1, 0, h), c.quad(1, 1, h)

	for i := 0; i < h; i++ {
		for j := 0; j < h; j++ {
			m1, m2, m3, m4 := m[0].at(i, j), m[1].at(i, j), m[2].at(i, j), m[3].at(i, j)
			m5, m6, m7 := m[4].at(i, j), m[5].at(i, j), m[6].at(i, j)

			c11.set(i, j, m1+m4-m5+m7)
			c12.set(i, j, m3+m5)
			c21.set(i, j, m2+m4)
			c22.set(i, j, m1-m2+m3+m6)
		}
	}

	return
}

func sum[T Number](dst, a, b view[T], n int) view[T] {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dst.set(i, j, a.at(i, j)+b.at(i, j))
		}
	}

	return dst
}

func diff[T Number](dst, a, b view[T], n int) view[T] {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dst.set(i, j, a.at(i, j)-b.at(i, j))
		}
	}

	return dst
}

// mulAdd adds a (r x k) times b (k x c) to c.
func mulAdd[T Number](c, a, b view[T], r, k, cols int) {
	for i := 0; i < r; i++ {
		for p := 0; p < k; p++ {
			aip := a.at(i, p)

			for j := 0; j < cols; j++ {
				c.set(i, j, c.at(i, j)+aip*b.at(p, j))
			}
		}
	}
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(n-1))
}

// padded returns a copy of m in the top-left corner of an n x n matrix of
// zeros.
func (m *Dense[T]) padded(n int) (p *Dense[T], err error) {
	if p, err = NewDense[T](n, n); err != nil {
		return
	}

	for i := 0; i < m.rows; i++ {
		copy(p.RawRow(i), m.RawRow(i))
	}

	return
}

// cropped returns a copy of the top-left r x c corner of m.
func (m *Dense[T]) cropped(r, c int) (p *Dense[T], err error) {
	if p, err = NewDense[T](r, c); err != nil {
		return
	}

	for i := 0; i < r; i++ {
		copy(p.RawRow(i), m.RawRow(i)[:c])
	}

	return
}

// view addresses a rectangular block of a row-major backing slice.
type view[T Number] struct {
	data   []T
	stride int
	row    int
	col    int
}

func (m *Dense[T]) view() view[T] {
	return view[T]{data: m.data.Data(), stride: m.cols}
}

func (v view[T]) at(i, j int) T {
	return v.data[(v.row+i)*v.stride+v.col+j]
}

func (v view[T]) set(i, j int, val T) {
	v.data[(v.row+i)*v.stride+v.col+j] = val
}

// sub returns the block starting at row i, column j of v.
func (v view[T]) sub(i, j int) view[T] {
	v.row += i
	v.col += j
	return v
}

// quad returns quadrant (qi, qj) of a block whose quadrants are h x h.
func (v view[T]) quad(qi, qj, h int) view[T] {
	return v.sub(qi*h, qj*h)
}

func (v view[T]) zero(n int) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v.set(i, j, 0)
		}
	}
}
