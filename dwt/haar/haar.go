package haar

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-wavelet/dwt/core"
)

// Errors returned by transform entry points.
var (
	ErrInvalidLength = errors.New("haar: signal length must be >= 1")
	ErrRaggedBatch   = errors.New("haar: all rows must have equal length")
	ErrShortSignal   = errors.New("haar: signal shorter than transform size")
)

// Mode selects the butterfly normalization.
type Mode int

const (
	// ModeOrthonormal scales each butterfly by 1/sqrt(2), preserving the
	// input's sum of squares across the transform.
	ModeOrthonormal Mode = iota
	// ModeClassic keeps plain sums and differences. Exact for integer-valued
	// inputs, but not norm-preserving.
	ModeClassic
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeOrthonormal:
		return "orthonormal"
	case ModeClassic:
		return "classic"
	default:
		return "unknown"
	}
}

func (m Mode) norm() float64 {
	if m == ModeOrthonormal {
		return 1 / math.Sqrt2
	}
	return 1
}

// Transform computes the forward Haar transform of every row in signals.
//
// Rows are truncated to their largest power-of-two prefix; the returned batch
// has len(signals) rows and core.FloorPowerOfTwo(columns) columns and is
// independent of the input, which is never mutated. Each output row is laid
// out as [approximation, detail level 1, detail level 2 (2 values), ...],
// finest detail band last.
//
// A row whose truncation collapses to a single sample passes through
// unchanged: zero butterfly stages run in that case.
//
// NaN and Inf values propagate arithmetically with no special handling.
func Transform(signals [][]float64, mode Mode, opts ...Option) ([][]float64, error) {
	return TransformInto(nil, signals, mode, opts...)
}

// TransformInto is the allocation-reusing variant of Transform. The row and
// column capacity of dst is reused where possible and the re-sliced batch is
// returned; in steady state only the per-call scratch buffer allocates.
func TransformInto(dst, signals [][]float64, mode Mode, opts ...Option) ([][]float64, error) {
	cfg := applyOptions(opts...)

	if len(signals) == 0 {
		return core.EnsureMatrix(dst, 0, 0), nil
	}

	length := len(signals[0])
	if length < 1 {
		return nil, ErrInvalidLength
	}

	for _, row := range signals[1:] {
		if len(row) != length {
			return nil, ErrRaggedBatch
		}
	}

	trunc := core.FloorPowerOfTwo(length)
	dst = core.EnsureMatrix(dst, len(signals), trunc)

	if trunc == 1 {
		// Degenerate pyramid: the half-length state would start at zero, so
		// no stage runs and the single sample passes through in both modes.
		for i, row := range signals {
			dst[i][0] = row[0]
		}
		return dst, nil
	}

	norm := mode.norm()

	if cfg.workers > 1 && len(signals) > 1 {
		transformRowsParallel(dst, signals, norm, cfg.workers)
		return dst, nil
	}

	work := make([]float64, trunc)
	for i, row := range signals {
		copy(work, row[:trunc])
		transformRow(dst[i], work, norm)
	}

	return dst, nil
}

// transformRow runs the butterfly pyramid for one row. work holds the
// truncated input and is consumed as scratch; out receives the coefficients.
// Both slices must have the same power-of-two length >= 2. The loop body is
// branch-free; all validation happens in the callers.
func transformRow(out, work []float64, norm float64) {
	for l := len(work) / 2; ; l /= 2 {
		for j := 0; j < l; j++ {
			a, b := work[2*j], work[2*j+1]
			out[j] = (a + b) * norm
			out[l+j] = (a - b) * norm
		}

		if l == 1 {
			return
		}

		// Positions [2l, n) hold detail bands frozen by earlier stages; only
		// the fresh prefix feeds the next stage.
		copy(work[:2*l], out[:2*l])
	}
}
