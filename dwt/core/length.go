package core

import "math/bits"

// FloorPowerOfTwo returns the largest power of two that does not exceed n.
// It returns 0 for n < 1.
func FloorPowerOfTwo(n int) int {
	if n < 1 {
		return 0
	}
	return 1 << (bits.Len(uint(n)) - 1)
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Stages returns the number of butterfly stages in the Haar pyramid for a
// power-of-two length n, i.e. log2(n). It returns 0 for n < 2.
func Stages(n int) int {
	if n < 2 {
		return 0
	}
	return bits.Len(uint(n)) - 1
}
