package haar

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-wavelet/dwt/core"
)

// squaresBuf holds pooled scratch memory for elementwise squaring.
type squaresBuf struct {
	data []float64
}

var squaresPool = sync.Pool{
	New: func() any { return &squaresBuf{} },
}

// Energy returns the sum of squares of coeffs.
//
// Applied to a ModeOrthonormal coefficient row this equals the energy of the
// truncated input signal. Squaring uses SIMD-optimized implementations when
// available; scratch buffers are pooled, so in steady state this does not
// allocate.
func Energy(coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}

	buf := squaresPool.Get().(*squaresBuf)
	buf.data = core.EnsureLen(buf.data, len(coeffs))

	vecmath.MulBlock(buf.data, coeffs, coeffs)

	total := 0.0
	for _, v := range buf.data {
		total += v
	}

	squaresPool.Put(buf)

	return total
}

// BandEnergies returns the energy of each band of a coefficient row: index 0
// is the squared approximation coefficient, index b >= 1 the summed squares
// of the detail band of width 2^(b-1). len(coeffs) must be a power of two;
// the result has core.Stages(len(coeffs))+1 entries. An empty row returns nil.
func BandEnergies(coeffs []float64) []float64 {
	if len(coeffs) == 0 {
		return nil
	}

	out := make([]float64, core.Stages(len(coeffs))+1)
	out[0] = coeffs[0] * coeffs[0]

	start := 1
	for b := 1; b < len(out); b++ {
		width := 1 << (b - 1)
		out[b] = Energy(coeffs[start : start+width])
		start += width
	}

	return out
}
