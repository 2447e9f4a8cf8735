package analyze

// Mask is a per-row selection over columns of equal length.
type Mask []bool

// EqInt32 writes xs[i] == target into dst and returns it. dst may be nil or
// any previously returned Mask; it is grown only when too small.
func EqInt32(dst Mask, xs []int32, target int32) Mask {
	dst = resizeMask(dst, len(xs))
	for i, x := range xs {
		dst[i] = x == target
	}
	return dst
}

// AndEqInt32 intersects m in place with the mask xs[i] == target. m and xs
// must have the same length.
func AndEqInt32(m Mask, xs []int32, target int32) Mask {
	for i, x := range xs {
		m[i] = m[i] && x == target
	}
	return m
}

// And writes a[i] && b[i] into dst and returns it. All three may alias.
func And(dst, a, b Mask) Mask {
	dst = resizeMask(dst, len(a))
	for i := range a {
		dst[i] = a[i] && b[i]
	}
	return dst
}

// Count returns the number of set rows.
func (m Mask) Count() int {
	n := 0
	for _, ok := range m {
		if ok {
			n++
		}
	}
	return n
}

// MaskedSum sums xs restricted to the set rows of m, accumulating
// sequentially in row order.
func MaskedSum(xs []float64, m Mask) float64 {
	sum := 0.0
	for i, x := range xs {
		if m[i] {
			sum += x
		}
	}
	return sum
}

func resizeMask(m Mask, n int) Mask {
	if cap(m) >= n {
		return m[:n]
	}
	return make(Mask, n)
}
