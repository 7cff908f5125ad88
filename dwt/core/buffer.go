// Package core provides numeric and buffer helpers shared by the wavelet
// transform packages: power-of-two length math and allocation-reusing
// buffer management for batched signals.
package core

// EnsureLen returns a slice with the requested length, reusing buf capacity
// if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// EnsureMatrix returns a rows×cols batch, reusing m and the capacity of its
// existing rows where possible. Row contents are not cleared.
func EnsureMatrix(m [][]float64, rows, cols int) [][]float64 {
	if rows <= 0 {
		return m[:0]
	}

	if cap(m) >= rows {
		m = m[:rows]
	} else {
		grown := make([][]float64, rows)
		copy(grown, m[:cap(m)])
		m = grown
	}

	for i := range m {
		m[i] = EnsureLen(m[i], cols)
	}

	return m
}

// CopyInto copies src into dst and returns the number of copied elements.
func CopyInto(dst, src []float64) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	copy(dst[:n], src[:n])
	return n
}
