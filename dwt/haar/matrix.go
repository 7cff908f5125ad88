package haar

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-wavelet/dwt/core"
)

// ErrMatrixSize is returned when a transform matrix of size < 2 is requested.
var ErrMatrixSize = errors.New("haar: matrix size must be >= 2")

// Matrix returns the n×n Haar transform matrix for the given mode. Its rows
// are the analysis vectors: for a signal x of length n the coefficient vector
// is H·x, identical (up to floating rounding) to what Transform computes.
//
// An n that is not a power of two is truncated to core.FloorPowerOfTwo(n),
// matching the kernel's length truncation. n < 2 returns ErrMatrixSize.
//
// Construction follows the recursive Kronecker form
//
//	H(1) = [ 1  1 ]
//	       [ 1 -1 ]
//
//	H(k) = [ H(k-1) ⊗ [1  1]         ]
//	       [ 2^((k-1)/2) · I ⊗ [1 -1] ]
//
// where the 2^((k-1)/2) factor and a final column normalization apply only in
// the orthonormal mode.
func Matrix(n int, mode Mode) (*mat.Dense, error) {
	if n < 2 {
		return nil, ErrMatrixSize
	}
	n = core.FloorPowerOfTwo(n)

	sumPair := mat.NewDense(1, 2, []float64{1, 1})
	diffPair := mat.NewDense(1, 2, []float64{1, -1})

	h := mat.NewDense(2, 2, []float64{1, 1, 1, -1})

	for size := 2; size < n; size *= 2 {
		top := &mat.Dense{}
		top.Kronecker(h, sumPair)

		bottom := &mat.Dense{}
		bottom.Kronecker(identity(size), diffPair)
		if mode == ModeOrthonormal {
			bottom.Scale(math.Sqrt(float64(size)), bottom)
		}

		next := &mat.Dense{}
		next.Stack(top, bottom)
		h = next
	}

	if mode == ModeOrthonormal {
		normalizeColumns(h)
	}

	return h, nil
}

func identity(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// normalizeColumns divides every column by its Euclidean norm, turning the
// scaled Kronecker construction into an orthonormal basis.
func normalizeColumns(h *mat.Dense) {
	rows, cols := h.Dims()

	col := make([]float64, rows)
	scaled := make([]float64, rows)

	for j := 0; j < cols; j++ {
		mat.Col(col, j, h)
		vecmath.ScaleBlock(scaled, col, 1/floats.Norm(col, 2))
		h.SetCol(j, scaled)
	}
}

// MatrixTransformer applies the Haar transform through a cached transform
// matrix. For repeated batches of equal length this amortizes the matrix
// construction; results agree with Transform up to floating rounding.
type MatrixTransformer struct {
	h    *mat.Dense
	mode Mode
	n    int
}

// NewMatrixTransformer builds a transformer for signals of the given length,
// truncated to its largest power-of-two prefix. length < 2 returns
// ErrMatrixSize.
func NewMatrixTransformer(length int, mode Mode) (*MatrixTransformer, error) {
	h, err := Matrix(length, mode)
	if err != nil {
		return nil, err
	}

	n, _ := h.Dims()

	return &MatrixTransformer{h: h, mode: mode, n: n}, nil
}

// Size returns the transform length (a power of two).
func (t *MatrixTransformer) Size() int { return t.n }

// Mode returns the configured normalization mode.
func (t *MatrixTransformer) Mode() Mode { return t.mode }

// Transform computes Y = X·Hᵀ for the batch X formed from the Size()-sample
// prefix of each row. Rows shorter than Size() return ErrShortSignal. The
// input is never mutated.
func (t *MatrixTransformer) Transform(signals [][]float64) ([][]float64, error) {
	if len(signals) == 0 {
		return nil, nil
	}

	x := mat.NewDense(len(signals), t.n, nil)
	for i, row := range signals {
		if len(row) < t.n {
			return nil, ErrShortSignal
		}
		x.SetRow(i, row[:t.n])
	}

	var y mat.Dense
	y.Mul(x, t.h.T())

	out := make([][]float64, len(signals))
	for i := range out {
		out[i] = mat.Row(nil, i, &y)
	}

	return out, nil
}
