// Package haar implements the forward 1-D Haar discrete wavelet transform
// for batches of real-valued signals.
//
// Each signal row is truncated to its largest power-of-two prefix and
// replaced by its pyramidal Haar decomposition: index 0 holds the coarsest
// approximation coefficient, followed by detail bands of doubling width with
// the finest band last. Two normalizations are provided: ModeOrthonormal
// scales every butterfly by 1/sqrt(2), making the transform an orthonormal
// change of basis that preserves the signal's sum of squares, while
// ModeClassic keeps plain sums and differences, which are exactly
// representable for integer-valued inputs.
//
// Besides the loop kernel the package provides the equivalent explicit
// transform matrix (see Matrix and MatrixTransformer) and per-band energy
// helpers for feature extraction. Rows are independent, so large batches can
// be spread across goroutines with WithWorkers.
package haar
